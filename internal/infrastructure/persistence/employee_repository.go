package persistence

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/staffdir/backend/internal/domain/directory"
	"github.com/staffdir/backend/internal/domain/shared"
	"github.com/staffdir/backend/internal/infrastructure/persistence/models"
)

// GormEmployeeRepository implements EmployeeRepository using GORM
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository creates a new GormEmployeeRepository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// Create saves a new employee
func (r *GormEmployeeRepository) Create(ctx context.Context, employee *directory.Employee) error {
	model := models.EmployeeModelFromDomain(employee)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing employee
func (r *GormEmployeeRepository) Update(ctx context.Context, employee *directory.Employee) error {
	model := models.EmployeeModelFromDomain(employee)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes an employee by ID
func (r *GormEmployeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.EmployeeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds an employee by ID
func (r *GormEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*directory.Employee, error) {
	var model models.EmployeeModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByEmployeeNumber finds an employee by employee number
func (r *GormEmployeeRepository) FindByEmployeeNumber(ctx context.Context, number string) (*directory.Employee, error) {
	var model models.EmployeeModel
	if err := r.db.WithContext(ctx).
		Where("employee_number = ?", number).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns matching employees ordered by employee number, plus the
// total match count
func (r *GormEmployeeRepository) FindAll(ctx context.Context, filter directory.EmployeeFilter) ([]*directory.Employee, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.EmployeeModel{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"last_name LIKE ? OR first_name LIKE ? OR last_name_kana LIKE ? OR first_name_kana LIKE ? OR email LIKE ? OR employee_number LIKE ?",
			pattern, pattern, pattern, pattern, pattern, pattern)
	}
	if filter.DepartmentID != nil {
		query = query.Where("department_id = ?", *filter.DepartmentID)
	}
	if filter.PositionID != nil {
		query = query.Where("position_id = ?", *filter.PositionID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("employee_number ASC")
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var employeeModels []*models.EmployeeModel
	if err := query.Find(&employeeModels).Error; err != nil {
		return nil, 0, err
	}

	employees := make([]*directory.Employee, len(employeeModels))
	for i, model := range employeeModels {
		employees[i] = model.ToDomain()
	}
	return employees, total, nil
}

// ExistsByEmail checks if an employee with the given email exists
func (r *GormEmployeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.EmployeeModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByEmployeeNumber checks if an employee with the given number exists
func (r *GormEmployeeRepository) ExistsByEmployeeNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.EmployeeModel{}).
		Where("employee_number = ?", number).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// MaxGeneratedSeq returns the highest numeric suffix among stored employee
// numbers of the generated form. The suffix parse happens in Go so the query
// stays portable across database dialects.
func (r *GormEmployeeRepository) MaxGeneratedSeq(ctx context.Context) (int64, error) {
	var numbers []string
	if err := r.db.WithContext(ctx).
		Model(&models.EmployeeModel{}).
		Where("employee_number LIKE ?", directory.GeneratedNumberPrefix+"%").
		Pluck("employee_number", &numbers).Error; err != nil {
		return 0, err
	}

	var max int64
	for _, number := range numbers {
		suffix := strings.TrimPrefix(number, directory.GeneratedNumberPrefix)
		seq, err := strconv.ParseInt(suffix, 10, 64)
		if err != nil {
			// Manually assigned numbers sharing the prefix don't count
			continue
		}
		if seq > max {
			max = seq
		}
	}
	return max, nil
}

// Ensure GormEmployeeRepository implements EmployeeRepository
var _ directory.EmployeeRepository = (*GormEmployeeRepository)(nil)
