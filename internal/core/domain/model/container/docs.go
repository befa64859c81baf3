// Package container provides the Container aggregate root for the freight
// container pool.
//
// A Container tracks identity, weight capacity and operational status. Its
// time-based availability is derived from the active order bookings referencing
// it, so the aggregate only distinguishes Available, InUse and Broken.
package container
