package kernel

import (
	"fmt"
	"time"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrTimeWindowIsNotConstructed is returned when attempting to use an improperly
// initialized TimeWindow. Windows must be created via NewTimeWindow.
var ErrTimeWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"time window must be created via NewTimeWindow constructor")

// TimeWindow represents the interval within which an order's pickup or delivery
// must occur. The end of the window is the binding deadline: scheduling always
// works backward from it. TimeWindow is an immutable value object; Start is
// strictly before End and both are required.
//
// Example:
//
//	w, err := kernel.NewTimeWindow(departAfter, deliverBy)
//	if err != nil {
//	    // start >= end or a zero timestamp
//	}
type TimeWindow struct { //nolint:recvcheck //using for validation
	start time.Time
	end   time.Time
	guard guard.ConstructorGuard
}

// NewTimeWindow creates a validated TimeWindow.
// Both timestamps are required and start must be strictly before end.
func NewTimeWindow(start time.Time, end time.Time) (TimeWindow, error) {
	if start.IsZero() {
		return TimeWindow{}, errs.NewValueIsRequiredError("start")
	}
	if end.IsZero() {
		return TimeWindow{}, errs.NewValueIsRequiredError("end")
	}
	if !start.Before(end) {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause("time window",
			fmt.Errorf("start %s is not before end %s", start, end))
	}

	return TimeWindow{
		start: start,
		end:   end,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the TimeWindow was properly constructed using the constructor.
func (w TimeWindow) Validate() error {
	return w.guard.Validate(ErrTimeWindowIsNotConstructed)
}

// Start returns the earliest admissible start of the window.
func (w TimeWindow) Start() time.Time {
	return w.start
}

// End returns the binding deadline of the window.
func (w TimeWindow) End() time.Time {
	return w.end
}

// Duration returns the length of the window.
func (w TimeWindow) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// Conflicts reports whether a booking occupying this window collides with the
// open interval [from, until). A booking conflicts when it starts before the
// interval ends and ends after the interval begins.
func (w TimeWindow) Conflicts(from time.Time, until time.Time) bool {
	return w.start.Before(until) && w.end.After(from)
}

// IsEqual compares two windows by their bounds.
func (w TimeWindow) IsEqual(other TimeWindow) bool {
	return w.start.Equal(other.start) && w.end.Equal(other.end)
}

// String implements fmt.Stringer.
func (w TimeWindow) String() string {
	return fmt.Sprintf("TimeWindow[%s, %s]",
		w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}
