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

// GormDepartmentRepository implements DepartmentRepository using GORM
type GormDepartmentRepository struct {
	db *gorm.DB
}

// NewGormDepartmentRepository creates a new GormDepartmentRepository
func NewGormDepartmentRepository(db *gorm.DB) *GormDepartmentRepository {
	return &GormDepartmentRepository{db: db}
}

// Create saves a new department
func (r *GormDepartmentRepository) Create(ctx context.Context, dept *directory.Department) error {
	model := models.DepartmentModelFromDomain(dept)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing department
func (r *GormDepartmentRepository) Update(ctx context.Context, dept *directory.Department) error {
	model := models.DepartmentModelFromDomain(dept)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a department by ID. Departments with assigned employees
// cannot be deleted.
func (r *GormDepartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	count, err := r.CountEmployees(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError("HAS_EMPLOYEES", "Cannot delete department with assigned employees")
	}

	result := r.db.WithContext(ctx).Delete(&models.DepartmentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a department by ID
func (r *GormDepartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*directory.Department, error) {
	var model models.DepartmentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all departments ordered for display
func (r *GormDepartmentRepository) FindAll(ctx context.Context) ([]*directory.Department, error) {
	var deptModels []*models.DepartmentModel
	if err := r.db.WithContext(ctx).
		Order("sort_order ASC, name ASC").
		Find(&deptModels).Error; err != nil {
		return nil, err
	}

	departments := make([]*directory.Department, len(deptModels))
	for i, model := range deptModels {
		departments[i] = model.ToDomain()
	}
	return departments, nil
}

// ExistsByName checks if a department with the given name exists
func (r *GormDepartmentRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.DepartmentModel{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountEmployees counts employees assigned to the department
func (r *GormDepartmentRepository) CountEmployees(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.EmployeeModel{}).
		Where("department_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormDepartmentRepository implements DepartmentRepository
var _ directory.DepartmentRepository = (*GormDepartmentRepository)(nil)
