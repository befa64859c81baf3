package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrCreateVehicleCommandIsNotConstructed = errors.New(
	"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
)

// CreateVehicleCommand represents a request to register a new vehicle in the
// fleet at the given position.
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID    kernel.UUID
	name         string
	position     kernel.Location
	batteryLevel float64
	mileage      float64

	guard guard.ConstructorGuard
}

// NewCreateVehicleCommand creates a command to register a new vehicle.
// Validates the identifier, name and position; battery and mileage ranges are
// enforced by the Vehicle aggregate on creation.
func NewCreateVehicleCommand(
	vehicleID kernel.UUID,
	name string,
	position kernel.Location,
	batteryLevel float64,
	mileage float64,
) (CreateVehicleCommand, error) {
	command := CreateVehicleCommand{
		batteryLevel: batteryLevel,
		mileage:      mileage,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVehicleID(vehicleID),
		command.setName(name),
		command.setPosition(position),
	); err != nil {
		return CreateVehicleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateVehicleCommandIsNotConstructed if validation fails.
func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

// VehicleID returns the unique identifier for the vehicle.
func (c CreateVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Name returns the vehicle's fleet designation.
func (c CreateVehicleCommand) Name() string {
	return c.name
}

// Position returns the vehicle's initial position.
func (c CreateVehicleCommand) Position() kernel.Location {
	return c.position
}

// BatteryLevel returns the vehicle's charge percentage.
func (c CreateVehicleCommand) BatteryLevel() float64 {
	return c.batteryLevel
}

// Mileage returns the vehicle's odometer reading.
func (c CreateVehicleCommand) Mileage() float64 {
	return c.mileage
}

func (c *CreateVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *CreateVehicleCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateVehicleCommand) setPosition(position kernel.Location) error {
	if err := position.Validate(); err != nil {
		return err
	}

	c.position = position
	return nil
}
