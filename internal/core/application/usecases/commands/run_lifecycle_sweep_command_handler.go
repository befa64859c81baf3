package commands

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/model/vehicle"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// OrderAssigner triggers an assignment attempt for a created order.
// Satisfied by AssignOrderCommandHandler; abstracted so the sweep can be
// tested without the full assignment machinery.
type OrderAssigner interface {
	Handle(ctx context.Context, command AssignOrderCommand) (AssignmentResult, error)
}

// SweepResult summarizes one lifecycle pass.
type SweepResult struct {
	// Started counts orders whose transport departed (Scheduled -> Undergoing).
	Started int
	// Completed counts orders delivered (Undergoing -> Completed).
	Completed int
	// Released counts canceled in-flight orders whose vehicle was freed.
	Released int
	// Assigned counts created orders that got resources this pass.
	Assigned int
}

// RunLifecycleSweepCommandHandler advances every order through its lifecycle
// based on the wall clock and retries assignment for orders still in Created
// status.
//
// One pass applies, per order:
//   - Scheduled past its departure time: the transport departs.
//   - Undergoing past its ETA: the order completes; its vehicle is released at
//     the destination company's location (or the port when the destination is
//     not a registered company) and its container is released.
//   - Canceled between departure and ETA: the vehicle is released where it
//     stands. The container stays booked until the shipment's ETA passes.
//   - Created: an assignment attempt runs after the pass commits; fleet or
//     pool exhaustion leaves the order Created for the next pass.
type RunLifecycleSweepCommandHandler struct {
	uowFactory UoWFactory
	companies  ports.CompanyDirectory
	assigner   OrderAssigner
	notifier   ports.Notifier
}

// NewRunLifecycleSweepCommandHandler creates a handler for lifecycle sweeps.
func NewRunLifecycleSweepCommandHandler(
	uowFactory UoWFactory,
	companies ports.CompanyDirectory,
	assigner OrderAssigner,
	notifier ports.Notifier,
) RunLifecycleSweepCommandHandler {
	return RunLifecycleSweepCommandHandler{
		uowFactory: uowFactory,
		companies:  companies,
		assigner:   assigner,
		notifier:   notifier,
	}
}

// Handle processes one sweep pass.
// Lifecycle transitions and resource releases are committed in a single
// transaction; assignment attempts for created orders run afterwards, each in
// its own transaction. Any persistence failure aborts the pass.
func (h RunLifecycleSweepCommandHandler) Handle(
	ctx context.Context,
	command RunLifecycleSweepCommand,
) (SweepResult, error) {
	if err := command.Validate(); err != nil {
		return SweepResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SweepResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAll(ctx)
	if err != nil {
		return SweepResult{}, err
	}

	var result SweepResult
	var pending []kernel.UUID

	for _, aggregate := range orders {
		switch aggregate.Status() {
		case order.Scheduled:
			if command.Now().After(aggregate.DepartureTime()) {
				if err = h.startOrder(ctx, uow, aggregate); err != nil {
					return SweepResult{}, err
				}
				result.Started++
			}
		case order.Undergoing:
			if command.Now().After(aggregate.ETA()) {
				if err = h.finishOrder(ctx, uow, aggregate); err != nil {
					return SweepResult{}, err
				}
				result.Completed++
			}
		case order.Canceled:
			released, err := h.releaseCanceled(ctx, uow, aggregate, command)
			if err != nil {
				return SweepResult{}, err
			}
			if released {
				result.Released++
			}
		case order.Created:
			pending = append(pending, aggregate.ID())
		case order.Unknown, order.Completed:
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return SweepResult{}, err
	}

	for _, orderID := range pending {
		assignCommand, err := NewAssignOrderCommand(orderID)
		if err != nil {
			return result, err
		}

		assignment, err := h.assigner.Handle(ctx, assignCommand)
		if err != nil {
			return result, err
		}
		if assignment.Assigned {
			result.Assigned++
		}
	}

	return result, nil
}

func (h RunLifecycleSweepCommandHandler) startOrder(ctx context.Context, uow UoW, aggregate *order.Order) error {
	if err := aggregate.Start(); err != nil {
		return err
	}
	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	h.notifyUpdated(ctx, aggregate)
	return nil
}

func (h RunLifecycleSweepCommandHandler) finishOrder(ctx context.Context, uow UoW, aggregate *order.Order) error {
	if err := aggregate.Finish(); err != nil {
		return err
	}

	position, err := h.destinationLocation(ctx, aggregate)
	if err != nil {
		return err
	}

	vehicleRepo := uow.VehicleRepository()
	boundVehicle, err := vehicleRepo.Get(ctx, *aggregate.Vehicle())
	if err != nil {
		return err
	}
	if err = boundVehicle.Release(position); err != nil {
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
	if err = containerRepo.Update(ctx, boundContainer); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	h.notifyUpdated(ctx, aggregate)
	return nil
}

// releaseCanceled frees the vehicle of an order canceled after its transport
// departed but before arrival. Only the vehicle is released; the container
// follows the shipment until the ETA passes.
func (h RunLifecycleSweepCommandHandler) releaseCanceled(
	ctx context.Context,
	uow UoW,
	aggregate *order.Order,
	command RunLifecycleSweepCommand,
) (bool, error) {
	if aggregate.Vehicle() == nil {
		return false, nil
	}
	if !command.Now().After(aggregate.DepartureTime()) || !command.Now().Before(aggregate.ETA()) {
		return false, nil
	}

	vehicleRepo := uow.VehicleRepository()

	boundVehicle, err := vehicleRepo.Get(ctx, *aggregate.Vehicle())
	if err != nil {
		return false, err
	}
	if boundVehicle.Status() != vehicle.InUse {
		return false, nil
	}
	if err = boundVehicle.Release(boundVehicle.Position()); err != nil {
		return false, err
	}

	if err = vehicleRepo.Update(ctx, boundVehicle); err != nil {
		return false, err
	}

	return true, nil
}

// destinationLocation resolves where the vehicle should be placed after
// delivery. Unknown destinations fall back to the port.
func (h RunLifecycleSweepCommandHandler) destinationLocation(
	ctx context.Context,
	aggregate *order.Order,
) (kernel.Location, error) {
	position, err := h.companies.GetLocation(ctx, aggregate.Destination())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.PortLocation(), nil
	}
	if err != nil {
		return kernel.Location{}, err
	}
	return position, nil
}

func (h RunLifecycleSweepCommandHandler) notifyUpdated(ctx context.Context, aggregate *order.Order) {
	h.notifier.Publish(ctx, ports.Event{
		Type:    ports.EventOrderUpdated,
		OrderID: aggregate.ID(),
		Status:  aggregate.Status().String(),
	})
}
