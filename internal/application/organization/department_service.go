package organization

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/staffdir/backend/internal/domain/directory"
	"github.com/staffdir/backend/internal/domain/shared"
)

// DepartmentService manages the department reference data that bulk
// import resolves names against.
type DepartmentService struct {
	repo   directory.DepartmentRepository
	logger *zap.Logger
}

// NewDepartmentService creates a new DepartmentService
func NewDepartmentService(repo directory.DepartmentRepository, logger *zap.Logger) *DepartmentService {
	return &DepartmentService{repo: repo, logger: logger}
}

// Create creates a department with a unique name
func (s *DepartmentService) Create(ctx context.Context, input CreateDepartmentInput) (*DepartmentView, error) {
	if exists, err := s.repo.ExistsByName(ctx, input.Name); err != nil {
		return nil, err
	} else if exists {
		return nil, shared.NewDomainError("DUPLICATE_NAME",
			fmt.Sprintf("department '%s' already exists", input.Name))
	}

	dept, err := directory.NewDepartment(input.Name)
	if err != nil {
		return nil, err
	}
	dept.Description = input.Description
	dept.SetSortOrder(input.SortOrder)

	if err := s.repo.Create(ctx, dept); err != nil {
		return nil, err
	}
	s.logger.Info("department created", zap.String("name", dept.Name))

	view := NewDepartmentView(dept)
	return &view, nil
}

// Update renames or reorders a department
func (s *DepartmentService) Update(ctx context.Context, id uuid.UUID, input UpdateDepartmentInput) (*DepartmentView, error) {
	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != dept.Name {
		if exists, err := s.repo.ExistsByName(ctx, input.Name); err != nil {
			return nil, err
		} else if exists {
			return nil, shared.NewDomainError("DUPLICATE_NAME",
				fmt.Sprintf("department '%s' already exists", input.Name))
		}
	}

	if err := dept.Update(input.Name, input.Description); err != nil {
		return nil, err
	}
	dept.SetSortOrder(input.SortOrder)

	if err := s.repo.Update(ctx, dept); err != nil {
		return nil, err
	}
	view := NewDepartmentView(dept)
	return &view, nil
}

// Delete removes a department. The repository rejects the delete while
// employees still reference it.
func (s *DepartmentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Get returns a single department
func (s *DepartmentService) Get(ctx context.Context, id uuid.UUID) (*DepartmentView, error) {
	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := NewDepartmentView(dept)
	return &view, nil
}

// List returns all departments
func (s *DepartmentService) List(ctx context.Context) ([]DepartmentView, error) {
	departments, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]DepartmentView, len(departments))
	for i, d := range departments {
		views[i] = NewDepartmentView(d)
	}
	return views, nil
}
