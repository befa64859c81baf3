package commands

import (
	"context"

	"freight/internal/core/domain/model/order"
	"freight/internal/core/ports"
)

// CancelOrderCommandHandler withdraws an order and releases any resources it
// had booked. A Created order just flips to Canceled; a Scheduled order also
// frees its vehicle and container so other orders can book them.
//
// Example:
//
//	handler := NewCancelOrderCommandHandler(uowFactory, notifier)
//	cmd, _ := NewCancelOrderCommand(orderID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("cancellation failed: %w", err)
//	}
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the cancellation command.
// Cancels the order and, if resources were bound, releases both the vehicle
// (keeping its current position) and the container in the same transaction.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	hadResources := aggregate.Status() == order.Scheduled

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if hadResources {
		if err = h.releaseResources(ctx, uow, aggregate); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Publish(ctx, ports.Event{
		Type:    ports.EventOrderUpdated,
		OrderID: aggregate.ID(),
		Status:  aggregate.Status().String(),
	})

	return nil
}

func (h CancelOrderCommandHandler) releaseResources(ctx context.Context, uow UoW, aggregate *order.Order) error {
	vehicleRepo := uow.VehicleRepository()

	boundVehicle, err := vehicleRepo.Get(ctx, *aggregate.Vehicle())
	if err != nil {
		return err
	}
	if err = boundVehicle.Release(boundVehicle.Position()); err != nil {
		return err
	}
	if err = vehicleRepo.Update(ctx, boundVehicle); err != nil {
		return err
	}

	containerRepo := uow.ContainerRepository()

	boundContainer, err := containerRepo.Get(ctx, *aggregate.Container())
	if err != nil {
		return err
	}
	boundContainer.Release()

	return containerRepo.Update(ctx, boundContainer)
}
