package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
)

// CompanyDirectory resolves company names to their geographic locations.
// The lifecycle driver uses it to place a vehicle at the order's destination
// on completion; unknown destinations fall back to the port.
type CompanyDirectory interface {
	// GetLocation returns the location registered for the named company.
	// Returns errs.ObjectNotFoundError for unknown companies.
	GetLocation(ctx context.Context, name string) (kernel.Location, error)
}
