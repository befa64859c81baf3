package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
)

// ResourceKind identifies which resource column a booking query filters on.
type ResourceKind string

const (
	// ResourceVehicle selects bookings by bound vehicle.
	ResourceVehicle ResourceKind = "vehicle"
	// ResourceContainer selects bookings by bound container.
	ResourceContainer ResourceKind = "container"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status, bookings, and time windows.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError if no order exists with that id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order regardless of status.
	// Used by the lifecycle sweep, which classifies orders itself.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetActive retrieves all orders that are not Completed or Canceled.
	GetActive(ctx context.Context) ([]*order.Order, error)

	// GetActiveBookings returns the time windows of Created and Scheduled
	// orders referencing the given resource. These windows are the bookings
	// availability checks sweep over; departed shipments no longer count.
	GetActiveBookings(ctx context.Context, kind ResourceKind, resourceID kernel.UUID) ([]kernel.TimeWindow, error)

	// GetScheduledOverlapping retrieves scheduled, not yet shared orders whose
	// time windows qualify as consolidation candidates for the given window.
	// The repository applies only a coarse window filter; the exact overlap
	// rule is enforced by the consolidation policy.
	GetScheduledOverlapping(ctx context.Context, window kernel.TimeWindow) ([]*order.Order, error)
}
