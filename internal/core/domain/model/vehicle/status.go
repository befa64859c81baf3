package vehicle

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status represents the operational state of a vehicle in the fleet.
//
// State transitions:
//
//	Available <──> InUse
//	    │
//	    └──> OutOfOrder (maintenance, manual recovery)
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Available means the vehicle can be booked for an order.
	Available

	// InUse means the vehicle is currently bound to one or more orders.
	InUse

	// OutOfOrder means the vehicle is withdrawn from scheduling.
	OutOfOrder
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Available:     "Available",
		InUse:         "InUse",
		OutOfOrder:    "OutOfOrder",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available:  "Available",
		InUse:      "InUse",
		OutOfOrder: "OutOfOrder",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
