package orderrepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
// Select("*") forces writing zero values too, so clearing a boolean like
// shared is persisted instead of being skipped by GORM.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every order regardless of status, ordered by ID for
// deterministic sweeps.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetActive retrieves all orders that are not Completed or Canceled.
func (r *GormOrderRepository) GetActive(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status NOT IN ?", []int{int(order.Completed), int(order.Canceled)}).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetActiveBookings returns the time windows of Created and Scheduled orders
// referencing the given resource. Only awaiting-departure orders count as
// bookings; once a shipment departs its window no longer blocks the resource.
func (r *GormOrderRepository) GetActiveBookings(
	ctx context.Context,
	kind ports.ResourceKind,
	resourceID kernel.UUID,
) ([]kernel.TimeWindow, error) {
	if err := resourceID.Validate(); err != nil {
		return nil, err
	}

	column, err := resourceColumn(kind)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Select("tw_start", "tw_end").
		Where(column+" = ?", resourceID.Bytes()).
		Where("status IN ?", []int{int(order.Created), int(order.Scheduled)}).
		Order("tw_end").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]kernel.TimeWindow, 0)
	for rows.Next() {
		var dto OrderDTO
		if err = rows.Scan(&dto.TwStart, &dto.TwEnd); err != nil {
			return nil, err
		}

		window, windowErr := kernel.NewTimeWindow(dto.TwStart, dto.TwEnd)
		if windowErr != nil {
			return nil, windowErr
		}
		bookings = append(bookings, window)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

// GetScheduledOverlapping retrieves scheduled, not yet shared orders whose
// time windows intersect the given one. This is a coarse filter; the exact
// consolidation overlap rule is applied by the caller.
func (r *GormOrderRepository) GetScheduledOverlapping(
	ctx context.Context,
	window kernel.TimeWindow,
) ([]*order.Order, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", int(order.Scheduled)).
		Where("shared = ?", false).
		Where("tw_start < ? AND tw_end > ?", window.End(), window.Start()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}

func resourceColumn(kind ports.ResourceKind) (string, error) {
	switch kind {
	case ports.ResourceVehicle:
		return "vehicle_id", nil
	case ports.ResourceContainer:
		return "container_id", nil
	default:
		return "", errs.NewValueIsInvalidError("resource kind")
	}
}
