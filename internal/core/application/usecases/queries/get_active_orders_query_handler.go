package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves non-final orders from the database.
// Uses direct SQL queries for read performance in the CQRS pattern.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all active orders.
// Returns orders that are not Completed or Canceled, sorted by window end so
// the most urgent shipments come first.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			requester,
			source,
			destination,
			tw_start,
			tw_end,
			status,
			operation_type,
			shared,
			freight_weight,
			vehicle_id
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY tw_end, id
	`, int(order.Completed), int(order.Canceled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveOrdersQueryResponse
		var id uuid.UUID
		var vehicleID *uuid.UUID
		var status, operationType int

		err = rows.Scan(
			&id,
			&resp.Requester,
			&resp.Source,
			&resp.Destination,
			&resp.WindowStart,
			&resp.WindowEnd,
			&status,
			&operationType,
			&resp.Shared,
			&resp.FreightWeight,
			&vehicleID,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		if vehicleID != nil {
			vID, vErr := kernel.UUIDFromBytes((*vehicleID)[:])
			if vErr != nil {
				return nil, vErr
			}
			resp.VehicleID = &vID
		}

		resp.Status = order.Status(status).String()
		resp.OperationType = order.OperationType(operationType).String()
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
