package ports

import (
	"context"

	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"
)

// ContainerRepository defines the persistence contract for container aggregates.
type ContainerRepository interface {
	// Add persists a new container aggregate to storage.
	// The container must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *container.Container) error

	// Update persists changes to an existing container aggregate.
	Update(ctx context.Context, aggregate *container.Container) error

	// Get retrieves a container aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError if no container exists with that id.
	Get(ctx context.Context, id kernel.UUID) (*container.Container, error)

	// GetAll retrieves every container in the pool. Scheduling probes them in
	// the returned order, so the implementation must return a stable ordering.
	GetAll(ctx context.Context) ([]*container.Container, error)
}
