package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new freight order.
// Encapsulates the requester, the pickup/delivery window, the operation type
// and the freight properties.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "acme", "acme", "port", window, order.Loading, true, 800)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	requester       string
	source          string
	destination     string
	window          kernel.TimeWindow
	operationType   order.OperationType
	preferredShared bool
	freightWeight   float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new freight order.
// Validates identifiers, parties, the time window, the operation type and the
// freight weight. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	requester string,
	source string,
	destination string,
	window kernel.TimeWindow,
	operationType order.OperationType,
	preferredShared bool,
	freightWeight float64,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		preferredShared: preferredShared,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setParties(requester, source, destination),
		orderCommand.setWindow(window),
		orderCommand.setOperationType(operationType),
		orderCommand.setFreightWeight(freightWeight),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Requester returns the party placing the order.
func (c CreateOrderCommand) Requester() string {
	return c.requester
}

// Source returns the party freight moves from.
func (c CreateOrderCommand) Source() string {
	return c.source
}

// Destination returns the party freight moves to.
func (c CreateOrderCommand) Destination() string {
	return c.destination
}

// Window returns the pickup/delivery time window.
func (c CreateOrderCommand) Window() kernel.TimeWindow {
	return c.window
}

// OperationType returns whether the order loads or unloads freight.
func (c CreateOrderCommand) OperationType() order.OperationType {
	return c.operationType
}

// PreferredShared reports whether the requester allows consolidation.
func (c CreateOrderCommand) PreferredShared() bool {
	return c.preferredShared
}

// FreightWeight returns the shipment weight in mass units.
func (c CreateOrderCommand) FreightWeight() float64 {
	return c.freightWeight
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setParties(requester, source, destination string) error {
	if requester == "" {
		return errs.NewValueIsRequiredError("requester")
	}
	if source == "" {
		return errs.NewValueIsRequiredError("source")
	}
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}

	c.requester = requester
	c.source = source
	c.destination = destination
	return nil
}

func (c *CreateOrderCommand) setWindow(window kernel.TimeWindow) error {
	if err := window.Validate(); err != nil {
		return err
	}

	c.window = window
	return nil
}

func (c *CreateOrderCommand) setOperationType(operationType order.OperationType) error {
	if err := operationType.Validate(); err != nil {
		return err
	}

	c.operationType = operationType
	return nil
}

func (c *CreateOrderCommand) setFreightWeight(freightWeight float64) error {
	if freightWeight < 0 {
		return errs.NewValueIsInvalidError("freightWeight")
	}

	c.freightWeight = freightWeight
	return nil
}
