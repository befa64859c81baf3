package vehicle

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// Domain errors for vehicle operations.
var (
	// ErrNameIsRequired is returned when attempting to create a vehicle without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
)

// Vehicle represents a transport vehicle in the fleet. It is an aggregate root
// that manages vehicle identity, operational status and last known position.
//
// A vehicle does not know about order time windows: availability over time is
// derived from the bookings of the orders referencing it. Status tracks whether
// the vehicle is currently committed to at least one scheduled order.
//
// Business rules:
//   - Vehicle must have a valid UUID, non-empty name and a valid position
//   - Battery level is a percentage in [0, 100]
//   - Mileage must not be negative
//   - Only Available vehicles can be booked; OutOfOrder vehicles never schedule
type Vehicle struct {
	// id uniquely identifies the vehicle
	id kernel.UUID
	// name is the human-readable fleet designation (plate or call sign)
	name string
	// status is the current operational state
	status Status
	// position is the last known geographic position
	position kernel.Location
	// batteryLevel is the charge percentage, informational for dispatch
	batteryLevel float64
	// mileage is the odometer reading in kilometers
	mileage float64
	// guard ensures the vehicle was properly constructed
	guard guard.ConstructorGuard
}

// NewVehicle creates a new Available vehicle positioned at the given location.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: fleet designation (must be non-empty)
//   - position: initial geographic position
//   - batteryLevel: charge percentage in [0, 100]
//   - mileage: odometer reading, must not be negative
func NewVehicle(
	id kernel.UUID,
	name string,
	position kernel.Location,
	batteryLevel float64,
	mileage float64,
) (*Vehicle, error) {
	vehicle := &Vehicle{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		vehicle.setID(id),
		vehicle.setName(name),
		vehicle.setPosition(position),
		vehicle.setBatteryLevel(batteryLevel),
		vehicle.setMileage(mileage),
	); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// RestoreVehicle reconstructs a Vehicle aggregate from persistent storage,
// including its persisted status.
func RestoreVehicle(
	id kernel.UUID,
	name string,
	status Status,
	position kernel.Location,
	batteryLevel float64,
	mileage float64,
) (*Vehicle, error) {
	vehicle := &Vehicle{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		vehicle.setID(id),
		vehicle.setName(name),
		vehicle.setPosition(position),
		vehicle.setBatteryLevel(batteryLevel),
		vehicle.setMileage(mileage),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	vehicle.status = status

	return vehicle, nil
}

// Validate checks if the Vehicle was properly constructed.
// The zero value of Vehicle is invalid and will fail this validation.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// IsEqual compares two vehicles by their unique identifiers.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	if other == nil {
		return false
	}
	return v.id.IsEqual(other.id)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// Name returns the vehicle's fleet designation.
func (v *Vehicle) Name() string {
	return v.name
}

// Status returns the vehicle's current operational state.
func (v *Vehicle) Status() Status {
	return v.status
}

// Position returns the vehicle's last known geographic position.
func (v *Vehicle) Position() kernel.Location {
	return v.position
}

// BatteryLevel returns the vehicle's charge percentage.
func (v *Vehicle) BatteryLevel() float64 {
	return v.batteryLevel
}

// Mileage returns the vehicle's odometer reading in kilometers.
func (v *Vehicle) Mileage() float64 {
	return v.mileage
}

// IsSchedulable reports whether the vehicle may be considered for new bookings.
// InUse vehicles remain schedulable because availability over time is decided
// by the feasible-slot check, not by status alone.
func (v *Vehicle) IsSchedulable() bool {
	return v.status == Available || v.status == InUse
}

// Book marks the vehicle as committed to a scheduled order.
// An OutOfOrder vehicle cannot be booked.
func (v *Vehicle) Book() error {
	if v.status == OutOfOrder {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to book", v.status.String()),
		)
	}

	v.status = InUse
	return nil
}

// Release frees the vehicle and records where it ended up.
// Releasing an Available vehicle is a no-op apart from the position update,
// which keeps resource release idempotent for the lifecycle driver.
func (v *Vehicle) Release(position kernel.Location) error {
	if err := v.setPosition(position); err != nil {
		return err
	}

	if v.status == InUse {
		v.status = Available
	}
	return nil
}

// MarkOutOfOrder withdraws the vehicle from scheduling.
func (v *Vehicle) MarkOutOfOrder() {
	v.status = OutOfOrder
}

// setID sets the vehicle's unique identifier with validation.
func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	v.id = id
	return nil
}

// setName sets the vehicle's name with validation.
func (v *Vehicle) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	v.name = name
	return nil
}

// setPosition sets the vehicle's position with validation.
func (v *Vehicle) setPosition(position kernel.Location) error {
	if err := position.Validate(); err != nil {
		return err
	}

	v.position = position
	return nil
}

// setBatteryLevel sets the charge percentage with range validation.
func (v *Vehicle) setBatteryLevel(batteryLevel float64) error {
	if batteryLevel < 0 || batteryLevel > 100 {
		return errs.NewValueIsOutOfRangeError("batteryLevel", batteryLevel, 0, 100)
	}

	v.batteryLevel = batteryLevel
	return nil
}

// setMileage sets the odometer reading with validation.
func (v *Vehicle) setMileage(mileage float64) error {
	if mileage < 0 {
		return errs.NewValueIsInvalidErrorWithCause("mileage",
			fmt.Errorf("%v is negative", mileage))
	}

	v.mileage = mileage
	return nil
}
