// Package domain defines the core domain types for the fundgraph similarity graph.
//
// This package contains the fund record model, the attributes funds are compared
// on, the links derived from matching attributes, and the snapshot handed to a
// graph renderer.
//
// # Core Types
//
// Fund is an immutable, validated investment fund record. It is the node of
// the graph and carries a display position used only for rendering.
//
// Candidate is a raw form submission. It becomes a Fund only after passing
// validation, see NewFund.
//
// Attribute is one of the four comparable fund fields (manager, year, type,
// status). Two funds agreeing on an attribute are connected by a Link.
//
// GraphSnapshot is the (nodes, active links) pair consumed by rendering.
//
// # Validation
//
// Validator checks a Candidate against the declared field schema and reports
// every violated constraint at once through a *ValidationError, so a form can
// highlight each offending input.
//
// # Generators
//
// IDGenerator and PositionGenerator are injectable so tests can assert exact
// identifiers and coordinates. CounterIDs is the default ID source.
//
// # Design Principles
//
// - Immutable value objects
// - No storage or transport concerns; those live in archive, codec and handler
// - Pure formatting (Describe) separated from link discovery
package domain
