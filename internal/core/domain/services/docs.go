// Package services provides domain services that orchestrate business
// decisions across multiple aggregates in the freight scheduling system.
//
// The package includes:
//   - SlotFinder: feasibility of serving an order against a resource's bookings
//   - ConsolidationPolicy: whether two orders may share a vehicle, container
//     and route
//
// Domain services hold logic that does not naturally belong to a single
// aggregate root, following Domain-Driven Design principles. They are pure:
// repositories fetch the bookings and candidate orders, the services only
// decide.
package services
