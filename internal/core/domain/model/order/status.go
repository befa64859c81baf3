package order

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status represents the lifecycle state of a freight order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Created ──> Scheduled ──> Undergoing ──> Completed
//	   │            │
//	   └────────────┴──> Canceled
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first created.
	// Orders in this status are waiting for resource assignment.
	Created

	// Scheduled indicates the order has been bound to a vehicle, container
	// and route, with a departure time and ETA committed.
	Scheduled

	// Undergoing indicates the order's transport has departed and is in progress.
	Undergoing

	// Completed indicates the order has been delivered.
	// This is a final state with no further transitions allowed.
	Completed

	// Canceled indicates the order was withdrawn before completion.
	// This is a final state with no further transitions allowed.
	Canceled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Created:    "Created",
		Scheduled:  "Scheduled",
		Undergoing: "Undergoing",
		Completed:  "Completed",
		Canceled:   "Canceled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:    "Created",
		Scheduled:  "Scheduled",
		Undergoing: "Undergoing",
		Completed:  "Completed",
		Canceled:   "Canceled",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe to call on any Status
// value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsActive reports whether the order still occupies resource bookings.
// Created and Scheduled orders count as active bookings for availability checks.
func (s Status) IsActive() bool {
	return s == Created || s == Scheduled
}

// IsFinal reports whether no further transitions are possible.
func (s Status) IsFinal() bool {
	return s == Completed || s == Canceled
}

// ValidateSchedule checks if the status allows resource assignment without
// performing the transition. Only Created orders can be scheduled; assignment
// is all-or-nothing, so a Scheduled order must not be scheduled again.
func (s Status) ValidateSchedule() error {
	if s != Created {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to schedule", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveAssignment validates the consistency between order status and
// resource assignment. A non-Created order carries its vehicle, container,
// route, departure time and ETA together or not at all.
//
// Rules:
//   - Created orders must not have resources assigned
//   - Scheduled, Undergoing and Completed orders must have resources assigned
//   - Canceled orders may have either (cancellation can happen before or after
//     assignment)
func (s Status) ValidateCanHaveAssignment(assigned bool) error {
	if s == Canceled {
		return nil
	}

	if assigned && s == Created {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have an assignment", s.String()),
		)
	}

	if !assigned && (s == Scheduled || s == Undergoing || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no assignment", s.String()),
		)
	}

	return nil
}

// Schedule transitions the status to Scheduled.
// Valid only from Created.
func (s Status) Schedule() (Status, error) {
	if err := s.ValidateSchedule(); err != nil {
		return 0, err
	}

	return Scheduled, nil
}

// Start transitions the status to Undergoing.
// Valid only from Scheduled.
func (s Status) Start() (Status, error) {
	if s != Scheduled {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start", s.String()),
		)
	}

	return Undergoing, nil
}

// Finish transitions the status to Completed.
// Valid only from Undergoing.
func (s Status) Finish() (Status, error) {
	if s != Undergoing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to finish", s.String()),
		)
	}

	return Completed, nil
}

// Cancel transitions the status to Canceled.
// Valid from Created and Scheduled; an order already underway cannot be canceled.
func (s Status) Cancel() (Status, error) {
	if s != Created && s != Scheduled {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Canceled, nil
}
