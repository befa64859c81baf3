// Package http implements the inbound HTTP adapter. The Server type satisfies
// the generated ServerInterface and translates requests into commands and
// queries.
package http

import (
	"errors"
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/generated/servers"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	assignOrderHandler     commands.AssignOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	createVehicleHandler   commands.CreateVehicleCommandHandler
	createContainerHandler commands.CreateContainerCommandHandler

	// Query handlers
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
	getAllVehiclesHandler  queries.GetAllVehiclesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	assignOrderHandler commands.AssignOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	createVehicleHandler commands.CreateVehicleCommandHandler,
	createContainerHandler commands.CreateContainerCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getAllVehiclesHandler queries.GetAllVehiclesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		assignOrderHandler:     assignOrderHandler,
		cancelOrderHandler:     cancelOrderHandler,
		createVehicleHandler:   createVehicleHandler,
		createContainerHandler: createContainerHandler,
		getActiveOrdersHandler: getActiveOrdersHandler,
		getAllVehiclesHandler:  getAllVehiclesHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - creates a new order and attempts
// to schedule it. A failed attempt leaves the order Created; the lifecycle
// sweep retries it.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	window, err := kernel.NewTimeWindow(newOrder.WindowStart, newOrder.WindowEnd)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid time window: " + err.Error(),
		})
	}

	operationType, err := parseOperationType(newOrder.OperationType)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid operation type: " + err.Error(),
		})
	}

	preferredShared := false
	if newOrder.PreferredShared != nil {
		preferredShared = *newOrder.PreferredShared
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		newOrder.Requester,
		newOrder.Source,
		newOrder.Destination,
		window,
		operationType,
		preferredShared,
		newOrder.FreightWeight,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	// Best effort scheduling right away. Resource exhaustion is not an
	// error here: the order stays Created and the sweep retries it.
	assignCmd, err := commands.NewAssignOrderCommand(orderID)
	if err == nil {
		_, _ = s.assignOrderHandler.Handle(ctx.Request().Context(), assignCmd)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{Id: orderID.Bytes()})
}

// GetActiveOrders handles GET /api/v1/orders/active - retrieves all non-final orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]servers.Order, len(orders))
	for i, activeOrder := range orders {
		response[i] = servers.Order{
			Id:            activeOrder.ID.Bytes(),
			Requester:     activeOrder.Requester,
			Source:        activeOrder.Source,
			Destination:   activeOrder.Destination,
			WindowStart:   activeOrder.WindowStart,
			WindowEnd:     activeOrder.WindowEnd,
			Status:        activeOrder.Status,
			OperationType: activeOrder.OperationType,
			Shared:        activeOrder.Shared,
			FreightWeight: activeOrder.FreightWeight,
		}

		if activeOrder.VehicleID != nil {
			vehicleID := activeOrder.VehicleID.Bytes()
			response[i].VehicleId = &vehicleID
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: "Order cannot be canceled: " + handleErr.Error(),
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetVehicles handles GET /api/v1/vehicles - retrieves the whole fleet.
func (s *Server) GetVehicles(ctx echo.Context) error {
	query := queries.NewGetAllVehiclesQuery()

	vehicles, err := s.getAllVehiclesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve vehicles",
		})
	}

	response := make([]servers.Vehicle, len(vehicles))
	for i, fleetVehicle := range vehicles {
		response[i] = servers.Vehicle{
			Id:           fleetVehicle.ID.Bytes(),
			Name:         fleetVehicle.Name,
			Status:       fleetVehicle.Status,
			Longitude:    fleetVehicle.Location.Longitude(),
			Latitude:     fleetVehicle.Location.Latitude(),
			BatteryLevel: fleetVehicle.BatteryLevel,
			Mileage:      fleetVehicle.Mileage,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateVehicle handles POST /api/v1/vehicles - registers a new vehicle.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	var newVehicle servers.NewVehicle
	if err := ctx.Bind(&newVehicle); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	position, err := kernel.NewLocation(newVehicle.Longitude, newVehicle.Latitude)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid position: " + err.Error(),
		})
	}

	batteryLevel := 100.0
	if newVehicle.BatteryLevel != nil {
		batteryLevel = *newVehicle.BatteryLevel
	}
	mileage := 0.0
	if newVehicle.Mileage != nil {
		mileage = *newVehicle.Mileage
	}

	cmd, err := commands.NewCreateVehicleCommand(
		kernel.NewUUID(), newVehicle.Name, position, batteryLevel, mileage)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid vehicle data: " + err.Error(),
		})
	}

	if handleErr := s.createVehicleHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: "Failed to create vehicle",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// CreateContainer handles POST /api/v1/containers - registers a new container.
func (s *Server) CreateContainer(ctx echo.Context) error {
	var newContainer servers.NewContainer
	if err := ctx.Bind(&newContainer); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateContainerCommand(
		kernel.NewUUID(), newContainer.Name, newContainer.MaxWeight)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid container data: " + err.Error(),
		})
	}

	if handleErr := s.createContainerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: "Failed to create container",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

func parseOperationType(value servers.NewOrderOperationType) (order.OperationType, error) {
	switch value {
	case servers.NewOrderOperationTypeLoading:
		return order.Loading, nil
	case servers.NewOrderOperationTypeUnloading:
		return order.Unloading, nil
	default:
		return order.UnknownOperation, errs.NewValueIsInvalidError("operation_type")
	}
}
