package commands

import (
	"context"

	"freight/internal/core/domain/model/vehicle"
)

// CreateVehicleCommandHandler handles the business logic for fleet registration.
// New vehicles enter the fleet in Available status.
type CreateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewCreateVehicleCommandHandler creates a handler for vehicle registration.
func NewCreateVehicleCommandHandler(uowFactory VehicleUoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle registration command.
// Uses a transaction to ensure the vehicle is properly persisted or rolled back.
func (h *CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newVehicle, err := vehicle.NewVehicle(
		cmd.VehicleID(), cmd.Name(), cmd.Position(), cmd.BatteryLevel(), cmd.Mileage())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.VehicleRepository().Add(ctx, newVehicle); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
