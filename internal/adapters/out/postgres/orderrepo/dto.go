// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with indexing
// for efficient querying by status and resource bindings.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Requester       string
	Source          string
	Destination     string
	TwStart         time.Time `gorm:"type:timestamptz"`
	TwEnd           time.Time `gorm:"type:timestamptz;index"`
	Status          int       `gorm:"index"`
	OperationType   int
	PreferredShared bool
	Shared          bool
	FreightWeight   float64
	VehicleID       *uuid.UUID `gorm:"type:uuid;index"`
	ContainerID     *uuid.UUID `gorm:"type:uuid;index"`
	RouteID         *uuid.UUID `gorm:"type:uuid"`
	DepartureTime   *time.Time `gorm:"type:timestamptz"`
	ETA             *time.Time `gorm:"type:timestamptz"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional resource assignment.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:              aggregate.ID().Bytes(),
		Requester:       aggregate.Requester(),
		Source:          aggregate.Source(),
		Destination:     aggregate.Destination(),
		TwStart:         aggregate.Window().Start(),
		TwEnd:           aggregate.Window().End(),
		Status:          int(aggregate.Status()),
		OperationType:   int(aggregate.OperationType()),
		PreferredShared: aggregate.PreferredShared(),
		Shared:          aggregate.IsShared(),
		FreightWeight:   aggregate.FreightWeight(),
	}

	if id := aggregate.Vehicle(); id != nil {
		raw := id.Bytes()
		dto.VehicleID = &raw
	}
	if id := aggregate.Container(); id != nil {
		raw := id.Bytes()
		dto.ContainerID = &raw
	}
	if id := aggregate.Route(); id != nil {
		raw := id.Bytes()
		dto.RouteID = &raw
	}
	if departure := aggregate.DepartureTime(); !departure.IsZero() {
		dto.DepartureTime = &departure
	}
	if eta := aggregate.ETA(); !eta.IsZero() {
		dto.ETA = &eta
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	window, err := kernel.NewTimeWindow(dto.TwStart, dto.TwEnd)
	if err != nil {
		return nil, err
	}

	vehicleID, err := optionalUUID(dto.VehicleID)
	if err != nil {
		return nil, err
	}
	containerID, err := optionalUUID(dto.ContainerID)
	if err != nil {
		return nil, err
	}
	routeID, err := optionalUUID(dto.RouteID)
	if err != nil {
		return nil, err
	}

	var departureTime, eta time.Time
	if dto.DepartureTime != nil {
		departureTime = *dto.DepartureTime
	}
	if dto.ETA != nil {
		eta = *dto.ETA
	}

	return order.RestoreOrder(
		id,
		dto.Requester,
		dto.Source,
		dto.Destination,
		window,
		order.Status(dto.Status),
		order.OperationType(dto.OperationType),
		dto.PreferredShared,
		dto.Shared,
		dto.FreightWeight,
		vehicleID,
		containerID,
		routeID,
		departureTime,
		eta,
	)
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}

	return &id, nil
}
