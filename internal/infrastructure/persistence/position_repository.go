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

// GormPositionRepository implements PositionRepository using GORM
type GormPositionRepository struct {
	db *gorm.DB
}

// NewGormPositionRepository creates a new GormPositionRepository
func NewGormPositionRepository(db *gorm.DB) *GormPositionRepository {
	return &GormPositionRepository{db: db}
}

// Create saves a new position
func (r *GormPositionRepository) Create(ctx context.Context, position *directory.Position) error {
	model := models.PositionModelFromDomain(position)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing position
func (r *GormPositionRepository) Update(ctx context.Context, position *directory.Position) error {
	model := models.PositionModelFromDomain(position)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a position by ID. Positions with assigned employees cannot
// be deleted.
func (r *GormPositionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	count, err := r.CountEmployees(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError("HAS_EMPLOYEES", "Cannot delete position with assigned employees")
	}

	result := r.db.WithContext(ctx).Delete(&models.PositionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a position by ID
func (r *GormPositionRepository) FindByID(ctx context.Context, id uuid.UUID) (*directory.Position, error) {
	var model models.PositionModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all positions ordered by rank
func (r *GormPositionRepository) FindAll(ctx context.Context) ([]*directory.Position, error) {
	var positionModels []*models.PositionModel
	if err := r.db.WithContext(ctx).
		Order("rank DESC, name ASC").
		Find(&positionModels).Error; err != nil {
		return nil, err
	}

	positions := make([]*directory.Position, len(positionModels))
	for i, model := range positionModels {
		positions[i] = model.ToDomain()
	}
	return positions, nil
}

// ExistsByName checks if a position with the given name exists
func (r *GormPositionRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PositionModel{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountEmployees counts employees assigned to the position
func (r *GormPositionRepository) CountEmployees(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.EmployeeModel{}).
		Where("position_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormPositionRepository implements PositionRepository
var _ directory.PositionRepository = (*GormPositionRepository)(nil)
