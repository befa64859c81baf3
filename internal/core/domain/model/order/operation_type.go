package order

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// OperationType distinguishes whether an order loads freight onto a vessel at
// the port or unloads freight from one. Orders can only be consolidated onto a
// shared vehicle when their operation types match.
type OperationType int

const (
	// UnknownOperation represents an invalid or undefined operation type.
	UnknownOperation OperationType = iota

	// Loading moves freight from a company to the port.
	Loading

	// Unloading moves freight from the port to a company.
	Unloading
)

// getOperationTypeStrings returns a map of OperationType values to their string representations.
func getOperationTypeStrings() map[OperationType]string {
	return map[OperationType]string{
		UnknownOperation: "Unknown",
		Loading:          "Loading",
		Unloading:        "Unloading",
	}
}

// Validate checks if the OperationType value is valid.
func (o OperationType) Validate() error {
	if o != Loading && o != Unloading {
		return errs.NewValueIsInvalidErrorWithCause(
			"operation type is invalid",
			fmt.Errorf("%d is not a valid operation type", o),
		)
	}
	return nil
}

// String returns the human-readable name of the operation type.
func (o OperationType) String() string {
	if str, ok := getOperationTypeStrings()[o]; ok {
		return str
	}
	return "Unknown"
}
