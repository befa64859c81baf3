// Package order provides domain entities and business logic for freight order
// management. It implements the Order aggregate root with lifecycle management
// and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - OperationType: Loading vs. Unloading classification for consolidation rules
//
// Key business rules:
//   - Orders must have a valid identifier, requester, source, destination and time window
//   - Freight weight must not be negative
//   - Status follows a defined workflow: Created -> Scheduled -> Undergoing -> Completed,
//     with cancellation possible until the transport departs
//   - Resource assignment is all-or-nothing: vehicle, container, route, departure
//     time and ETA are committed together when an order becomes Scheduled
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
