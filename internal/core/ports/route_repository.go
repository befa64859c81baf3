package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
)

// RouteRepository allocates route identifiers used to group orders that share
// a shipment. A route carries no behavior of its own; a stored row exists for
// referential integrity only.
type RouteRepository interface {
	// Allocate creates and persists a fresh route, returning its identifier.
	// A route is allocated for every assignment attempt, even when the order
	// ultimately consolidates onto an existing one.
	Allocate(ctx context.Context) (kernel.UUID, error)
}
