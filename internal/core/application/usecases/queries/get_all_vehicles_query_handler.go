package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllVehiclesQueryHandler retrieves all fleet vehicles from the database.
// Uses direct SQL queries for read performance in the CQRS pattern.
type GetAllVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllVehiclesQueryHandler creates a handler for fleet retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllVehiclesQueryHandler(db *gorm.DB) GetAllVehiclesQueryHandler {
	return GetAllVehiclesQueryHandler{db: db}
}

// Handle executes the query to retrieve all vehicles.
// Returns a slice of vehicle read models sorted by name.
func (h GetAllVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetAllVehiclesQuery,
) ([]GetAllVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles := make([]GetAllVehiclesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			status,
			position_longitude,
			position_latitude,
			battery_level,
			mileage
		FROM vehicles
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllVehiclesQueryResponse
		var id uuid.UUID
		var status int
		var longitude, latitude float64

		err = rows.Scan(
			&id,
			&resp.Name,
			&status,
			&longitude,
			&latitude,
			&resp.BatteryLevel,
			&resp.Mileage,
		)
		if err != nil {
			return nil, err
		}

		vehicleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = vehicleID

		location, locErr := kernel.NewLocation(longitude, latitude)
		if locErr != nil {
			return nil, locErr
		}
		resp.Location = location

		resp.Status = vehicle.Status(status).String()
		vehicles = append(vehicles, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}
