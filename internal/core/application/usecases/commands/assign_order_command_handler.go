package commands

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/model/vehicle"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
	"freight/internal/pkg/keylock"
)

var (
	// ErrNoVehicleAvailable signals that no vehicle had a feasible slot for the
	// order's window. Expected during scheduling; reported via AssignmentResult.
	ErrNoVehicleAvailable = errors.New("no vehicle available")
	// ErrNoContainerAvailable signals that a vehicle was found but no container
	// had room. Expected during scheduling; reported via AssignmentResult.
	ErrNoContainerAvailable = errors.New("no container available")
)

// AssignmentResult is the outcome of an assignment attempt. Exhaustion of the
// fleet or the container pool is a normal outcome, not a handler error: the
// order stays Created and the next sweep retries. Reason carries the
// exhaustion sentinel when Assigned is false after a genuine attempt.
type AssignmentResult struct {
	Assigned bool
	Reason   error
}

// AssignOrderCommandHandler orchestrates resource assignment for a created
// order. It first tries to consolidate the order onto a compatible scheduled
// shipment; failing that, it books the first vehicle and container with
// feasible slots ending at the order's deadline.
//
// All reads and writes for one attempt happen in a single unit of work, and a
// per-resource lock is held from the moment a resource's bookings are read
// until the transaction commits, so two concurrent attempts cannot book the
// same resource into overlapping slots.
//
// Example:
//
//	handler := NewAssignOrderCommandHandler(uowFactory, locks, notifier)
//	cmd, _ := NewAssignOrderCommand(orderID)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("assignment failed: %v", err)
//	} else if !result.Assigned {
//	    log.Printf("order not assigned: %v", result.Reason)
//	}
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
	locks      *keylock.KeyedMutex
	notifier   ports.Notifier
	slotFinder services.SlotFinder
	policy     services.ConsolidationPolicy
}

// NewAssignOrderCommandHandler creates a handler for assignment operations.
// The KeyedMutex must be shared by every handler that books resources.
func NewAssignOrderCommandHandler(
	uowFactory UoWFactory,
	locks *keylock.KeyedMutex,
	notifier ports.Notifier,
) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		notifier:   notifier,
		slotFinder: services.NewSlotFinder(),
		policy:     services.NewConsolidationPolicy(),
	}
}

// Handle processes the assignment command.
//
// The attempt is idempotent: an order that is no longer in Created status
// yields {Assigned: false} with no writes and no error. Otherwise the handler
// tries consolidation candidates in repository order, then the fresh
// vehicle-plus-container path. Exhaustion leaves the order Created and is
// reported through AssignmentResult.Reason.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, command AssignOrderCommand) (AssignmentResult, error) {
	if err := command.Validate(); err != nil {
		return AssignmentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignmentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return AssignmentResult{}, err
	}
	if aggregate.Status() != order.Created {
		return AssignmentResult{}, nil
	}

	candidates, err := orderRepo.GetScheduledOverlapping(ctx, aggregate.Window())
	if err != nil {
		return AssignmentResult{}, err
	}

	for _, candidate := range candidates {
		consolidated, err := h.tryConsolidate(ctx, uow, aggregate, candidate)
		if err != nil {
			return AssignmentResult{}, err
		}
		if consolidated {
			h.notifyUpdated(ctx, aggregate)
			return AssignmentResult{Assigned: true}, nil
		}
	}

	// A route row is allocated up front for every fresh attempt, even when the
	// order never ends up shared.
	routeID, err := uow.RouteRepository().Allocate(ctx)
	if err != nil {
		return AssignmentResult{}, err
	}

	result, err := h.assignFresh(ctx, uow, aggregate, routeID)
	if err != nil {
		return AssignmentResult{}, err
	}
	if result.Assigned {
		h.notifyUpdated(ctx, aggregate)
	}

	return result, nil
}

// tryConsolidate attempts to merge the order onto the candidate's shipment.
// On success both orders are marked shared and persisted, and the transaction
// is committed while the candidate's vehicle lock is still held.
func (h AssignOrderCommandHandler) tryConsolidate(
	ctx context.Context,
	uow UoW,
	aggregate *order.Order,
	candidate *order.Order,
) (bool, error) {
	vehicleID := candidate.Vehicle()
	containerID := candidate.Container()
	routeID := candidate.Route()
	if vehicleID == nil || containerID == nil || routeID == nil {
		return false, nil
	}

	key := vehicleID.String()
	h.locks.Lock(key)
	defer h.locks.Unlock(key)

	orderRepo := uow.OrderRepository()

	bookings, err := orderRepo.GetActiveBookings(ctx, ports.ResourceVehicle, *vehicleID)
	if err != nil {
		return false, err
	}

	ok, err := h.policy.CanConsolidate(aggregate, candidate, bookings)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	// The merged order departs when the candidate's window closes and inherits
	// the candidate's resources.
	departure := candidate.Window().End()
	eta := aggregate.Window().End()
	if err = aggregate.AssignResources(*vehicleID, *containerID, *routeID, departure, eta); err != nil {
		return false, err
	}
	if err = errors.Join(aggregate.MarkShared(), candidate.MarkShared()); err != nil {
		return false, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return false, err
	}
	if err = orderRepo.Update(ctx, candidate); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}

// assignFresh books the first vehicle with a feasible slot, then the first
// container with room in the adjusted interval, on a fresh route.
func (h AssignOrderCommandHandler) assignFresh(
	ctx context.Context,
	uow UoW,
	aggregate *order.Order,
	routeID kernel.UUID,
) (AssignmentResult, error) {
	vehicles, err := uow.VehicleRepository().GetAll(ctx)
	if err != nil {
		return AssignmentResult{}, err
	}

	orderRepo := uow.OrderRepository()

	for _, candidate := range vehicles {
		if !candidate.IsSchedulable() {
			continue
		}

		key := candidate.ID().String()
		h.locks.Lock(key)

		bookings, err := orderRepo.GetActiveBookings(ctx, ports.ResourceVehicle, candidate.ID())
		if err != nil {
			h.locks.Unlock(key)
			return AssignmentResult{}, err
		}

		adjustedStart, err := h.slotFinder.LatestFeasibleStart(
			aggregate.Window().Start(), aggregate.Window().End(), bookings)
		if errors.Is(err, services.ErrNoFeasibleSlot) {
			h.locks.Unlock(key)
			continue
		}
		if err != nil {
			h.locks.Unlock(key)
			return AssignmentResult{}, err
		}

		result, err := h.bindWithContainer(ctx, uow, aggregate, candidate, routeID, adjustedStart)
		h.locks.Unlock(key)
		return result, err
	}

	return AssignmentResult{Reason: ErrNoVehicleAvailable}, nil
}

// bindWithContainer finds a container with room in [adjustedStart, deadline)
// and commits the full binding. Called with the vehicle's lock held.
func (h AssignOrderCommandHandler) bindWithContainer(
	ctx context.Context,
	uow UoW,
	aggregate *order.Order,
	bookedVehicle *vehicle.Vehicle,
	routeID kernel.UUID,
	adjustedStart time.Time,
) (AssignmentResult, error) {
	containers, err := uow.ContainerRepository().GetAll(ctx)
	if err != nil {
		return AssignmentResult{}, err
	}

	orderRepo := uow.OrderRepository()
	deadline := aggregate.Window().End()

	for _, candidate := range containers {
		if !candidate.IsSchedulable() {
			continue
		}

		key := candidate.ID().String()
		h.locks.Lock(key)

		bookings, err := orderRepo.GetActiveBookings(ctx, ports.ResourceContainer, candidate.ID())
		if err != nil {
			h.locks.Unlock(key)
			return AssignmentResult{}, err
		}

		hasSlot, err := h.slotFinder.HasFeasibleSlot(adjustedStart, deadline, bookings)
		if err != nil {
			h.locks.Unlock(key)
			return AssignmentResult{}, err
		}
		if !hasSlot {
			h.locks.Unlock(key)
			continue
		}

		err = h.commitBinding(ctx, uow, aggregate, bookedVehicle, candidate, routeID, adjustedStart)
		h.locks.Unlock(key)
		if err != nil {
			return AssignmentResult{}, err
		}
		return AssignmentResult{Assigned: true}, nil
	}

	return AssignmentResult{Reason: ErrNoContainerAvailable}, nil
}

func (h AssignOrderCommandHandler) commitBinding(
	ctx context.Context,
	uow UoW,
	aggregate *order.Order,
	bookedVehicle *vehicle.Vehicle,
	bookedContainer *container.Container,
	routeID kernel.UUID,
	adjustedStart time.Time,
) error {
	if err := aggregate.AssignResources(
		bookedVehicle.ID(), bookedContainer.ID(), routeID, adjustedStart, aggregate.Window().End(),
	); err != nil {
		return err
	}
	if err := errors.Join(bookedVehicle.Book(), bookedContainer.Book()); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}
	if err := uow.VehicleRepository().Update(ctx, bookedVehicle); err != nil {
		return err
	}
	if err := uow.ContainerRepository().Update(ctx, bookedContainer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h AssignOrderCommandHandler) notifyUpdated(ctx context.Context, aggregate *order.Order) {
	h.notifier.Publish(ctx, ports.Event{
		Type:    ports.EventOrderUpdated,
		OrderID: aggregate.ID(),
		Status:  aggregate.Status().String(),
	})
}
