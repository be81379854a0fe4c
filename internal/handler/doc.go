// Package handler implements the HTTP API consumed by the fundgraph web UI.
//
// # Handlers
//
// FundHandler accepts fund form submissions, switches the connecting
// attribute, and serves the graph snapshot and exports.
//
// Middleware provides panic recovery, CORS support and request logging.
//
// # Response Format
//
// Success responses return JSON data with appropriate status codes (200, 201).
// Rejected submissions return 422 with {error, fields:[{field, message}]}.
// Other errors return JSON with {error, details} structure.
//
// # Server-Sent Events
//
// The /events endpoint (served by the hub package) pushes fund_added,
// view_changed and form_reset events to connected browsers.
package handler
