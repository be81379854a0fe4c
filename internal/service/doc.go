// Package service implements the fund graph operations.
//
// GraphBuilder validates submitted funds, appends them to the node collection
// and records their links in the link cache. ViewSelector holds the active
// connecting attribute and resolves it to a cache bucket. Session composes the
// two and serializes access for the HTTP layer.
//
// # Form reset
//
// Both a successful submission and a view change invoke the ResetFunc passed
// to their constructors. The reset is an independent effect; no core state
// depends on it.
//
// # Event System
//
// Operations publish events via EventBus for real-time updates to connected
// renderers via Server-Sent Events (SSE).
package service
