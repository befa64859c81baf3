package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
)

// EventType classifies order lifecycle notifications.
type EventType string

const (
	// EventOrderCreated is published when a new order is accepted.
	EventOrderCreated EventType = "order_created"
	// EventOrderUpdated is published when an order changes status or binding.
	EventOrderUpdated EventType = "order_updated"
	// EventOrderDeleted is published when an order is removed.
	EventOrderDeleted EventType = "order_deleted"
)

// Event is an order lifecycle notification.
type Event struct {
	Type    EventType
	OrderID kernel.UUID
	Status  string
}

// Notifier publishes order lifecycle events to interested subscribers.
// Publication is fire-and-forget: delivery failures are logged by the
// implementation and never fail the business operation.
type Notifier interface {
	Publish(ctx context.Context, event Event)
}
