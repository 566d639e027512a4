package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/staffdir/backend/internal/domain/directory"
	"github.com/staffdir/backend/internal/domain/shared"
	"github.com/staffdir/backend/internal/infrastructure/persistence/models"
)

// GormAreaRepository implements AreaRepository using GORM
type GormAreaRepository struct {
	db *gorm.DB
}

// NewGormAreaRepository creates a new GormAreaRepository
func NewGormAreaRepository(db *gorm.DB) *GormAreaRepository {
	return &GormAreaRepository{db: db}
}

// Create saves a new area
func (r *GormAreaRepository) Create(ctx context.Context, area *directory.Area) error {
	model := models.AreaModelFromDomain(area)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing area
func (r *GormAreaRepository) Update(ctx context.Context, area *directory.Area) error {
	model := models.AreaModelFromDomain(area)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes an area by ID. Employees referencing the area keep their
// assignment cleared by the database foreign key.
func (r *GormAreaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AreaModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds an area by ID
func (r *GormAreaRepository) FindByID(ctx context.Context, id uuid.UUID) (*directory.Area, error) {
	var model models.AreaModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all areas ordered by name
func (r *GormAreaRepository) FindAll(ctx context.Context) ([]*directory.Area, error) {
	var areaModels []*models.AreaModel
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&areaModels).Error; err != nil {
		return nil, err
	}

	areas := make([]*directory.Area, len(areaModels))
	for i, model := range areaModels {
		areas[i] = model.ToDomain()
	}
	return areas, nil
}

// ExistsByName checks if an area with the given name exists
func (r *GormAreaRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.AreaModel{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormAreaRepository implements AreaRepository
var _ directory.AreaRepository = (*GormAreaRepository)(nil)
