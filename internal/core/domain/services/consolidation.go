package services

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
)

// MaxSharedWeight is the combined freight weight ceiling for a shared shipment,
// in mass units. The limit is exclusive: two orders consolidate only while
// their combined weight stays strictly below it.
const MaxSharedWeight = 2500.0

// ConsolidationPolicy is a domain service that decides whether a new order can
// share a vehicle, container and route with an already scheduled order.
//
// Consolidation requires all of:
//   - both orders opted in (preferredShared)
//   - the candidate is not already shared
//   - equal operation types (loading with loading, unloading with unloading)
//   - combined freight weight strictly below MaxSharedWeight
//   - the candidate's time window partially overlapping the new order's window
//   - the candidate's vehicle having a feasible slot ending at the new
//     order's deadline
type ConsolidationPolicy struct {
	slotFinder SlotFinder
}

// NewConsolidationPolicy creates a new ConsolidationPolicy instance.
func NewConsolidationPolicy() ConsolidationPolicy {
	return ConsolidationPolicy{slotFinder: NewSlotFinder()}
}

// OverlapsForConsolidation reports whether an existing scheduled window and a
// new order's window overlap in the partial sense that qualifies for
// consolidation.
//
// The rule is deliberately asymmetric: the existing window either starts
// before the new one and ends strictly inside it, or lies strictly inside the
// new one. Identical windows and a new window contained in the existing one do
// NOT qualify.
func (p ConsolidationPolicy) OverlapsForConsolidation(existing, newWindow kernel.TimeWindow) bool {
	existingInside := newWindow.Start().Before(existing.Start()) &&
		existing.End().After(newWindow.Start()) &&
		newWindow.End().After(existing.End())

	partialLeft := existing.Start().Before(newWindow.Start()) &&
		existing.End().After(newWindow.Start()) &&
		existing.End().Before(newWindow.End())

	return existingInside || partialLeft
}

// CanConsolidate reports whether newOrder can be merged onto candidate's
// vehicle, container and route. candidateVehicleBookings are the active
// bookings of the candidate's vehicle; the vehicle must still have a feasible
// slot ending at newOrder's deadline, probed from newOrder's window start.
//
// Returns an error only for invalid aggregates; an incompatible pairing is a
// plain false.
func (p ConsolidationPolicy) CanConsolidate(
	newOrder *order.Order,
	candidate *order.Order,
	candidateVehicleBookings []kernel.TimeWindow,
) (bool, error) {
	if err := errors.Join(newOrder.Validate(), candidate.Validate()); err != nil {
		return false, err
	}

	if !newOrder.PreferredShared() || !candidate.PreferredShared() {
		return false, nil
	}
	if candidate.IsShared() {
		return false, nil
	}
	if newOrder.OperationType() != candidate.OperationType() {
		return false, nil
	}
	if newOrder.FreightWeight()+candidate.FreightWeight() >= MaxSharedWeight {
		return false, nil
	}
	if !p.OverlapsForConsolidation(candidate.Window(), newOrder.Window()) {
		return false, nil
	}

	return p.slotFinder.HasFeasibleSlot(
		newOrder.Window().Start(),
		newOrder.Window().End(),
		candidateVehicleBookings,
	)
}
