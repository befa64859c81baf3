package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrGetAllVehiclesQueryIsNotConstructed = errors.New(
		"GetAllVehiclesQuery must be created via NewGetAllVehiclesQuery constructor",
	)
)

// GetAllVehiclesQuery retrieves the whole fleet for monitoring.
type GetAllVehiclesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllVehiclesQuery creates a query to retrieve all vehicles.
func NewGetAllVehiclesQuery() GetAllVehiclesQuery {
	return GetAllVehiclesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllVehiclesQueryIsNotConstructed if validation fails.
func (q GetAllVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllVehiclesQueryIsNotConstructed)
}

// GetAllVehiclesQueryResponse is the read model for one fleet vehicle.
type GetAllVehiclesQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Status       string
	Location     kernel.Location
	BatteryLevel float64
	Mileage      float64
}
