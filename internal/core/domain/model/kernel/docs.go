// Package kernel provides core domain primitives and utilities for the freight
// scheduling system. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Location: A value object representing a geographic longitude/latitude pair
//   - TimeWindow: A value object for an order's [start, end] scheduling interval
//   - TimeSlot / QuantizeSlots: transient 30-minute slot arithmetic for callers
//   - ConstructorGuard: A defensive programming pattern to ensure proper object construction
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
