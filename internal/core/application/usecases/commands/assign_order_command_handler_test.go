package commands_test

import (
	"errors"
	"testing"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/model/vehicle"
	"freight/internal/core/ports"
	"freight/internal/pkg/keylock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var assignBase = time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

func assignAt(hours float64) time.Time {
	return assignBase.Add(time.Duration(hours * float64(time.Hour)))
}

func assignWindow(t *testing.T, fromHours, toHours float64) kernel.TimeWindow {
	t.Helper()
	w, err := kernel.NewTimeWindow(assignAt(fromHours), assignAt(toHours))
	require.NoError(t, err)
	return w
}

func createdOrder(t *testing.T, w kernel.TimeWindow, preferredShared bool, weight float64) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "acme", "acme", "port", w, order.Loading, preferredShared, weight)
	require.NoError(t, err)
	return o
}

func scheduledOrder(t *testing.T, w kernel.TimeWindow, preferredShared bool, weight float64) *order.Order {
	t.Helper()
	vehicleID := kernel.NewUUID()
	containerID := kernel.NewUUID()
	routeID := kernel.NewUUID()
	o, err := order.RestoreOrder(kernel.NewUUID(), "globex", "globex", "port", w,
		order.Scheduled, order.Loading, preferredShared, false, weight,
		&vehicleID, &containerID, &routeID, w.Start(), w.End())
	require.NoError(t, err)
	return o
}

func fleetVehicle(t *testing.T) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "TRK-042", kernel.PortLocation(), 90, 10000)
	require.NoError(t, err)
	return v
}

func poolContainer(t *testing.T) *container.Container {
	t.Helper()
	c, err := container.NewContainer(kernel.NewUUID(), "CNT-17", 5000)
	require.NoError(t, err)
	return c
}

func newAssignHandler(factory *MockUoWFactory, notifier *MockNotifier) commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(factory, keylock.NewKeyedMutex(), notifier)
}

func TestAssignOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AssignOrderCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := newAssignHandler(factory, new(MockNotifier))

	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAssignOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAssignOrderCommandHandler_Handle_IdempotentOnNonCreatedOrder(t *testing.T) {
	ctx := t.Context()
	scheduled := scheduledOrder(t, assignWindow(t, 0, 4), true, 800)
	cmd, err := commands.NewAssignOrderCommand(scheduled.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("Get", ctx, scheduled.ID()).Return(scheduled, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	handler := newAssignHandler(factory, notifier)

	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, result.Assigned)
	require.NoError(t, result.Reason)
	uow.AssertNotCalled(t, "Commit")
	notifier.AssertNotCalled(t, "Publish")
}

func TestAssignOrderCommandHandler_Handle_Consolidation(t *testing.T) {
	ctx := t.Context()
	newOrder := createdOrder(t, assignWindow(t, 3, 6), true, 800)
	candidate := scheduledOrder(t, assignWindow(t, 0, 4), true, 1000)
	cmd, err := commands.NewAssignOrderCommand(newOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("Get", ctx, newOrder.ID()).Return(newOrder, nil).Once()
	orderRepo.On("GetScheduledOverlapping", ctx, newOrder.Window()).
		Return([]*order.Order{candidate}, nil).Once()
	orderRepo.On("GetActiveBookings", ctx, ports.ResourceVehicle, *candidate.Vehicle()).
		Return([]kernel.TimeWindow{candidate.Window()}, nil).Once()
	orderRepo.On("Update", ctx, newOrder).Return(nil).Once()
	orderRepo.On("Update", ctx, candidate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("Publish", ctx, mock.AnythingOfType("ports.Event")).Once()

	handler := newAssignHandler(factory, notifier)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.Assigned)

	assert.Equal(t, order.Scheduled, newOrder.Status())
	assert.True(t, newOrder.Vehicle().IsEqual(*candidate.Vehicle()))
	assert.True(t, newOrder.Container().IsEqual(*candidate.Container()))
	assert.True(t, newOrder.Route().IsEqual(*candidate.Route()))
	assert.True(t, newOrder.DepartureTime().Equal(candidate.Window().End()))
	assert.True(t, newOrder.ETA().Equal(newOrder.Window().End()))
	assert.True(t, newOrder.IsShared())
	assert.True(t, candidate.IsShared())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestAssignOrderCommandHandler_Handle_IncompatibleCandidateFallsThrough(t *testing.T) {
	ctx := t.Context()
	newOrder := createdOrder(t, assignWindow(t, 3, 6), true, 800)
	// Combined weight reaches the ceiling, so consolidation must not happen.
	candidate := scheduledOrder(t, assignWindow(t, 0, 4), true, 1700)
	cmd, err := commands.NewAssignOrderCommand(newOrder.ID())
	require.NoError(t, err)

	routeID := kernel.NewUUID()
	freeVehicle := fleetVehicle(t)
	freeContainer := poolContainer(t)

	orderRepo := new(MockOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	containerRepo := new(MockContainerRepository)
	routeRepo := new(MockRouteRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("VehicleRepository").Return(vehicleRepo)
	uow.On("ContainerRepository").Return(containerRepo)
	uow.On("RouteRepository").Return(routeRepo)
	orderRepo.On("Get", ctx, newOrder.ID()).Return(newOrder, nil).Once()
	orderRepo.On("GetScheduledOverlapping", ctx, newOrder.Window()).
		Return([]*order.Order{candidate}, nil).Once()
	orderRepo.On("GetActiveBookings", ctx, ports.ResourceVehicle, *candidate.Vehicle()).
		Return([]kernel.TimeWindow{candidate.Window()}, nil).Once()
	routeRepo.On("Allocate", ctx).Return(routeID, nil).Once()
	vehicleRepo.On("GetAll", ctx).Return([]*vehicle.Vehicle{freeVehicle}, nil).Once()
	orderRepo.On("GetActiveBookings", ctx, ports.ResourceVehicle, freeVehicle.ID()).
		Return([]kernel.TimeWindow{}, nil).Once()
	containerRepo.On("GetAll", ctx).Return([]*container.Container{freeContainer}, nil).Once()
	orderRepo.On("GetActiveBookings", ctx, ports.ResourceContainer, freeContainer.ID()).
		Return([]kernel.TimeWindow{}, nil).Once()
	orderRepo.On("Update", ctx, newOrder).Return(nil).Once()
	vehicleRepo.On("Update", ctx, freeVehicle).Return(nil).Once()
	containerRepo.On("Update", ctx, freeContainer).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("Publish", ctx, mock.AnythingOfType("ports.Event")).Once()

	handler := newAssignHandler(factory, notifier)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.Assigned)
	assert.False(t, newOrder.IsShared())
	assert.True(t, newOrder.Route().IsEqual(routeID))
}

func TestAssignOrderCommandHandler_Handle_FreshAssignment(t *testing.T) {
	ctx := t.Context()
	newOrder := createdOrder(t, assignWindow(t, 0, 4), false, 800)
	cmd, err := commands.NewAssignOrderCommand(newOrder.ID())
	require.NoError(t, err)

	routeID := kernel.NewUUID()
	busyVehicle := fleetVehicle(t)
	freeVehicle := fleetVehicle(t)
	freeContainer := poolContainer(t)

	orderRepo := new(MockOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	containerRepo := new(MockContainerRepository)
	routeRepo := new(MockRouteRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("VehicleRepository").Return(vehicleRepo)
	uow.On("ContainerRepository").Return(containerRepo)
	uow.On("RouteRepository").Return(routeRepo)
	orderRepo.On("Get", ctx, newOrder.ID()).Return(newOrder, nil).Once()
	orderRepo.On("GetScheduledOverlapping", ctx, newOrder.Window()).
		Return([]*order.Order{}, nil).Once()
	routeRepo.On("Allocate", ctx).Return(routeID, nil).Once()
	vehicleRepo.On("GetAll", ctx).Return([]*vehicle.Vehicle{busyVehicle, freeVehicle}, nil).Once()
	// The first vehicle is fully booked over the whole window.
	orderRepo.On("GetActiveBookings", ctx, ports.ResourceVehicle, busyVehicle.ID()).
		Return([]kernel.TimeWindow{assignWindow(t, -1, 5)}, nil).Once()
	// The second one frees up half way through.
	orderRepo.On("GetActiveBookings", ctx, ports.ResourceVehicle, freeVehicle.ID()).
		Return([]kernel.TimeWindow{assignWindow(t, 0, 2)}, nil).Once()
	containerRepo.On("GetAll", ctx).Return([]*container.Container{freeContainer}, nil).Once()
	orderRepo.On("GetActiveBookings", ctx, ports.ResourceContainer, freeContainer.ID()).
		Return([]kernel.TimeWindow{}, nil).Once()
	orderRepo.On("Update", ctx, newOrder).Return(nil).Once()
	vehicleRepo.On("Update", ctx, freeVehicle).Return(nil).Once()
	containerRepo.On("Update", ctx, freeContainer).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("Publish", ctx, mock.AnythingOfType("ports.Event")).Once()

	handler := newAssignHandler(factory, notifier)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.Assigned)

	assert.Equal(t, order.Scheduled, newOrder.Status())
	assert.True(t, newOrder.Vehicle().IsEqual(freeVehicle.ID()))
	assert.True(t, newOrder.Container().IsEqual(freeContainer.ID()))
	assert.True(t, newOrder.Route().IsEqual(routeID))
	assert.True(t, newOrder.DepartureTime().Equal(assignAt(2)), "departure adjusted past the busy slot")
	assert.True(t, newOrder.ETA().Equal(assignAt(4)))
	assert.Equal(t, vehicle.InUse, freeVehicle.Status())
	assert.Equal(t, container.InUse, freeContainer.Status())

	event := notifier.Calls[0].Arguments[1].(ports.Event)
	assert.Equal(t, ports.EventOrderUpdated, event.Type)

	orderRepo.AssertExpectations(t)
	vehicleRepo.AssertExpectations(t)
	containerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignOrderCommandHandler_Handle_NoVehicleAvailable(t *testing.T) {
	ctx := t.Context()
	newOrder := createdOrder(t, assignWindow(t, 0, 4), false, 800)
	cmd, err := commands.NewAssignOrderCommand(newOrder.ID())
	require.NoError(t, err)

	routeID := kernel.NewUUID()
	busyVehicle := fleetVehicle(t)
	brokenVehicle := fleetVehicle(t)
	brokenVehicle.MarkOutOfOrder()

	orderRepo := new(MockOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	routeRepo := new(MockRouteRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("VehicleRepository").Return(vehicleRepo)
	uow.On("RouteRepository").Return(routeRepo)
	orderRepo.On("Get", ctx, newOrder.ID()).Return(newOrder, nil).Once()
	orderRepo.On("GetScheduledOverlapping", ctx, newOrder.Window()).
		Return([]*order.Order{}, nil).Once()
	routeRepo.On("Allocate", ctx).Return(routeID, nil).Once()
	vehicleRepo.On("GetAll", ctx).Return([]*vehicle.Vehicle{brokenVehicle, busyVehicle}, nil).Once()
	orderRepo.On("GetActiveBookings", ctx, ports.ResourceVehicle, busyVehicle.ID()).
		Return([]kernel.TimeWindow{assignWindow(t, -1, 5)}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	handler := newAssignHandler(factory, notifier)

	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, result.Assigned)
	require.ErrorIs(t, result.Reason, commands.ErrNoVehicleAvailable)
	assert.Equal(t, order.Created, newOrder.Status())
	uow.AssertNotCalled(t, "Commit")
	notifier.AssertNotCalled(t, "Publish")
}

func TestAssignOrderCommandHandler_Handle_NoContainerAvailable(t *testing.T) {
	ctx := t.Context()
	newOrder := createdOrder(t, assignWindow(t, 0, 4), false, 800)
	cmd, err := commands.NewAssignOrderCommand(newOrder.ID())
	require.NoError(t, err)

	routeID := kernel.NewUUID()
	freeVehicle := fleetVehicle(t)
	busyContainer := poolContainer(t)

	orderRepo := new(MockOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	containerRepo := new(MockContainerRepository)
	routeRepo := new(MockRouteRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("VehicleRepository").Return(vehicleRepo)
	uow.On("ContainerRepository").Return(containerRepo)
	uow.On("RouteRepository").Return(routeRepo)
	orderRepo.On("Get", ctx, newOrder.ID()).Return(newOrder, nil).Once()
	orderRepo.On("GetScheduledOverlapping", ctx, newOrder.Window()).
		Return([]*order.Order{}, nil).Once()
	routeRepo.On("Allocate", ctx).Return(routeID, nil).Once()
	vehicleRepo.On("GetAll", ctx).Return([]*vehicle.Vehicle{freeVehicle}, nil).Once()
	orderRepo.On("GetActiveBookings", ctx, ports.ResourceVehicle, freeVehicle.ID()).
		Return([]kernel.TimeWindow{}, nil).Once()
	containerRepo.On("GetAll", ctx).Return([]*container.Container{busyContainer}, nil).Once()
	orderRepo.On("GetActiveBookings", ctx, ports.ResourceContainer, busyContainer.ID()).
		Return([]kernel.TimeWindow{assignWindow(t, -1, 5)}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newAssignHandler(factory, new(MockNotifier))
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, result.Assigned)
	require.ErrorIs(t, result.Reason, commands.ErrNoContainerAvailable)
	assert.Equal(t, order.Created, newOrder.Status())
	uow.AssertNotCalled(t, "Commit")
}

func TestAssignOrderCommandHandler_Handle_GetOrderError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignOrderCommand(kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("Get", ctx, cmd.OrderID()).Return(nil, errors.New("database error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newAssignHandler(factory, new(MockNotifier))
	_, err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "database error")
}
