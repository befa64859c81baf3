package commands_test

import (
	"errors"
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/model/vehicle"
	"freight/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_CreatedOrder(t *testing.T) {
	ctx := t.Context()
	aggregate := createdOrder(t, assignWindow(t, 0, 4), false, 800)
	cmd, err := commands.NewCancelOrderCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	orderRepo.On("Update", ctx, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("Publish", ctx, mock.AnythingOfType("ports.Event")).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Canceled, aggregate.Status())
	uow.AssertNotCalled(t, "VehicleRepository")
	uow.AssertNotCalled(t, "ContainerRepository")

	event := notifier.Calls[0].Arguments[1].(ports.Event)
	assert.Equal(t, ports.EventOrderUpdated, event.Type)
	assert.Equal(t, "Canceled", event.Status)
}

func TestCancelOrderCommandHandler_Handle_ScheduledOrderReleasesResources(t *testing.T) {
	ctx := t.Context()
	aggregate := scheduledOrder(t, assignWindow(t, 0, 4), false, 800)

	boundVehicle, err := vehicle.RestoreVehicle(
		*aggregate.Vehicle(), "TRK-042", vehicle.InUse, kernel.PortLocation(), 90, 10000)
	require.NoError(t, err)
	boundContainer, err := container.RestoreContainer(
		*aggregate.Container(), "CNT-17", container.InUse, 5000)
	require.NoError(t, err)

	cmd, err := commands.NewCancelOrderCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	containerRepo := new(MockContainerRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("VehicleRepository").Return(vehicleRepo)
	uow.On("ContainerRepository").Return(containerRepo)
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	vehicleRepo.On("Get", ctx, *aggregate.Vehicle()).Return(boundVehicle, nil).Once()
	vehicleRepo.On("Update", ctx, boundVehicle).Return(nil).Once()
	containerRepo.On("Get", ctx, *aggregate.Container()).Return(boundContainer, nil).Once()
	containerRepo.On("Update", ctx, boundContainer).Return(nil).Once()
	orderRepo.On("Update", ctx, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("Publish", ctx, mock.AnythingOfType("ports.Event")).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Canceled, aggregate.Status())
	assert.Equal(t, vehicle.Available, boundVehicle.Status())
	assert.Equal(t, container.Available, boundContainer.Status())
	// Assignment fields stay on the canceled order for auditability.
	assert.NotNil(t, aggregate.Vehicle())

	orderRepo.AssertExpectations(t)
	vehicleRepo.AssertExpectations(t)
	containerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_CompletedOrderCannotBeCanceled(t *testing.T) {
	ctx := t.Context()
	aggregate := scheduledOrder(t, assignWindow(t, 0, 4), false, 800)
	require.NoError(t, aggregate.Start())
	require.NoError(t, aggregate.Finish())

	cmd, err := commands.NewCancelOrderCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	handler := commands.NewCancelOrderCommandHandler(factory, notifier)

	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit")
	notifier.AssertNotCalled(t, "Publish")
}

func TestCancelOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CancelOrderCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewCancelOrderCommandHandler(factory, new(MockNotifier))

	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCancelOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCancelOrderCommandHandler_Handle_ReleaseError(t *testing.T) {
	ctx := t.Context()
	aggregate := scheduledOrder(t, assignWindow(t, 0, 4), false, 800)
	cmd, err := commands.NewCancelOrderCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("VehicleRepository").Return(vehicleRepo)
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	vehicleRepo.On("Get", ctx, *aggregate.Vehicle()).
		Return(nil, errors.New("database error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, new(MockNotifier))
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "database error")
	uow.AssertNotCalled(t, "Commit")
}
