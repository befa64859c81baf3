// Package containerrepo provides data transfer objects and mapping functions
// for container persistence.
package containerrepo

import (
	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ContainerDTO represents the database structure for persisting container aggregates.
type ContainerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"index"`
	Status    int       `gorm:"index"`
	MaxWeight float64
}

// TableName overrides GORM's default naming convention to use "containers".
func (ContainerDTO) TableName() string {
	return "containers"
}

func fromDomain(aggregate *container.Container) ContainerDTO {
	return ContainerDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Status:    int(aggregate.Status()),
		MaxWeight: aggregate.MaxWeight(),
	}
}

func toDomain(dto ContainerDTO) (*container.Container, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return container.RestoreContainer(
		id,
		dto.Name,
		container.Status(dto.Status),
		dto.MaxWeight,
	)
}
