// Package routerepo persists route identifiers. A route is a grouping row
// only; it carries no behavior.
package routerepo

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RouteDTO represents a stored route row.
type RouteDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"type:timestamptz"`
}

// TableName overrides GORM's default naming convention to use "routes".
func (RouteDTO) TableName() string {
	return "routes"
}

// GormRouteRepository implements RouteRepository using GORM.
type GormRouteRepository struct {
	db *gorm.DB
}

// NewGormRouteRepository creates a new GORM route repository.
func NewGormRouteRepository(db *gorm.DB) *GormRouteRepository {
	return &GormRouteRepository{db: db}
}

// Allocate creates and persists a fresh route, returning its identifier.
func (r *GormRouteRepository) Allocate(ctx context.Context) (kernel.UUID, error) {
	id := kernel.NewUUID()

	dto := RouteDTO{
		ID:        id.Bytes(),
		CreatedAt: time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return kernel.UUID{}, err
	}

	return id, nil
}
