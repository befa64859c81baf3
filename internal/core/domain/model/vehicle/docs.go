// Package vehicle provides the Vehicle aggregate root for fleet management.
//
// A Vehicle tracks identity, operational status and last known position.
// Time-based availability is not stored here: it is derived from the active
// order bookings referencing the vehicle, so the aggregate only distinguishes
// Available, InUse and OutOfOrder.
package vehicle
