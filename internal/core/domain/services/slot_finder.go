package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// ErrNoFeasibleSlot is returned when a resource has no free interval ending at
// the requested deadline. This is an expected outcome during scheduling, not a
// failure: callers typically move on to the next resource.
var ErrNoFeasibleSlot = errors.New("no feasible slot")

// SlotFinder is a domain service that decides whether a resource can serve an
// order against its existing bookings. A booking is the time window of an
// active order already referencing the resource.
//
// The deadline is fixed: an order must be served in a single interval ending
// exactly at its window's end. The finder sweeps the bookings and pushes the
// start forward past every conflicting booking; if the start reaches the
// deadline, the resource is not feasible.
type SlotFinder struct{}

// NewSlotFinder creates a new SlotFinder instance.
func NewSlotFinder() SlotFinder {
	return SlotFinder{}
}

// LatestFeasibleStart returns the adjusted start of the single free interval
// ending exactly at fixedEnd, probing from desiredStart.
//
// Bookings are swept in ascending order of their end time. A booking conflicts
// when it starts before fixedEnd and ends after the current candidate start;
// each conflict pushes the candidate start to the booking's end. When the
// candidate start reaches or passes fixedEnd the resource has no room and
// ErrNoFeasibleSlot is returned.
//
// desiredStart must be strictly before fixedEnd; anything else is a caller bug
// and yields a validation error.
func (f SlotFinder) LatestFeasibleStart(
	desiredStart time.Time,
	fixedEnd time.Time,
	bookings []kernel.TimeWindow,
) (time.Time, error) {
	if !desiredStart.Before(fixedEnd) {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("desiredStart",
			fmt.Errorf("desired start %s is not before fixed end %s", desiredStart, fixedEnd))
	}

	sorted := make([]kernel.TimeWindow, len(bookings))
	copy(sorted, bookings)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].End().Before(sorted[j].End())
	})

	earliestFree := desiredStart
	for _, booking := range sorted {
		if booking.Conflicts(earliestFree, fixedEnd) {
			if booking.End().After(earliestFree) {
				earliestFree = booking.End()
			}
		}
	}

	if !earliestFree.Before(fixedEnd) {
		return time.Time{}, ErrNoFeasibleSlot
	}

	return earliestFree, nil
}

// HasFeasibleSlot reports whether the resource has any free room in
// [desiredStart, fixedEnd). It is the boolean form of LatestFeasibleStart used
// for containers, where the adjusted start is already decided by the vehicle.
func (f SlotFinder) HasFeasibleSlot(
	desiredStart time.Time,
	fixedEnd time.Time,
	bookings []kernel.TimeWindow,
) (bool, error) {
	_, err := f.LatestFeasibleStart(desiredStart, fixedEnd, bookings)
	if errors.Is(err, ErrNoFeasibleSlot) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
