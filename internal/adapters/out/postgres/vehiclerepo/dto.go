// Package vehiclerepo provides data transfer objects and mapping functions
// for vehicle persistence.
package vehiclerepo

import (
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle aggregates.
type VehicleDTO struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name         string      `gorm:"index"`
	Status       int         `gorm:"index"`
	Position     LocationDTO `gorm:"embedded;embeddedPrefix:position_"`
	BatteryLevel float64
	Mileage      float64
}

// TableName overrides GORM's default naming convention to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// LocationDTO stores the vehicle's last known position.
type LocationDTO struct {
	Longitude float64
	Latitude  float64
}

func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Status: int(aggregate.Status()),
		Position: LocationDTO{
			Longitude: aggregate.Position().Longitude(),
			Latitude:  aggregate.Position().Latitude(),
		},
		BatteryLevel: aggregate.BatteryLevel(),
		Mileage:      aggregate.Mileage(),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	position, err := kernel.NewLocation(dto.Position.Longitude, dto.Position.Latitude)
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(
		id,
		dto.Name,
		vehicle.Status(dto.Status),
		position,
		dto.BatteryLevel,
		dto.Mileage,
	)
}
