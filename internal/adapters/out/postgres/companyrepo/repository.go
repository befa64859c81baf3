// Package companyrepo resolves company names to registered locations.
package companyrepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyDTO represents a registered company and its location.
type CompanyDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"uniqueIndex"`
	Longitude float64
	Latitude  float64
}

// TableName overrides GORM's default naming convention to use "companies".
func (CompanyDTO) TableName() string {
	return "companies"
}

// GormCompanyDirectory implements CompanyDirectory using GORM.
type GormCompanyDirectory struct {
	db *gorm.DB
}

// NewGormCompanyDirectory creates a new GORM company directory.
func NewGormCompanyDirectory(db *gorm.DB) *GormCompanyDirectory {
	return &GormCompanyDirectory{db: db}
}

// GetLocation returns the location registered for the named company.
func (d *GormCompanyDirectory) GetLocation(ctx context.Context, name string) (kernel.Location, error) {
	if name == "" {
		return kernel.Location{}, errs.NewValueIsRequiredError("name")
	}

	var dto CompanyDTO
	if err := d.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.Location{}, errs.NewObjectNotFoundError("company", name)
		}
		return kernel.Location{}, err
	}

	return kernel.NewLocation(dto.Longitude, dto.Latitude)
}

// Register stores a company with its location, used for seeding the directory.
func (d *GormCompanyDirectory) Register(ctx context.Context, name string, location kernel.Location) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if err := location.Validate(); err != nil {
		return err
	}

	dto := CompanyDTO{
		ID:        uuid.New(),
		Name:      name,
		Longitude: location.Longitude(),
		Latitude:  location.Latitude(),
	}

	return d.db.WithContext(ctx).Create(&dto).Error
}
