package employee

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/staffdir/backend/internal/domain/directory"
	"github.com/staffdir/backend/internal/domain/shared"
)

// Service handles single-record employee operations. It applies the same
// field and duplicate rules the bulk import path enforces.
type Service struct {
	employeeRepo   directory.EmployeeRepository
	departmentRepo directory.DepartmentRepository
	positionRepo   directory.PositionRepository
	areaRepo       directory.AreaRepository
	logger         *zap.Logger
}

// NewService creates a new employee Service
func NewService(
	employeeRepo directory.EmployeeRepository,
	departmentRepo directory.DepartmentRepository,
	positionRepo directory.PositionRepository,
	areaRepo directory.AreaRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		positionRepo:   positionRepo,
		areaRepo:       areaRepo,
		logger:         logger,
	}
}

// Create creates a single employee record
func (s *Service) Create(ctx context.Context, input CreateEmployeeInput) (*EmployeeView, error) {
	employmentType, err := directory.ParseEmploymentType(input.EmploymentType)
	if err != nil {
		return nil, err
	}

	if exists, err := s.employeeRepo.ExistsByEmail(ctx, input.Email); err != nil {
		return nil, err
	} else if exists {
		return nil, shared.NewDomainError("DUPLICATE_EMAIL",
			fmt.Sprintf("email '%s' already exists", input.Email))
	}

	number := input.EmployeeNumber
	if number == "" {
		number, err = s.generateNumber(ctx)
		if err != nil {
			return nil, err
		}
	} else {
		if exists, err := s.employeeRepo.ExistsByEmployeeNumber(ctx, number); err != nil {
			return nil, err
		} else if exists {
			return nil, shared.NewDomainError("DUPLICATE_EMPLOYEE_NUMBER",
				fmt.Sprintf("employee number '%s' already exists", number))
		}
	}

	emp, err := directory.NewEmployee(
		number,
		input.LastName, input.FirstName,
		input.DepartmentID, input.PositionID,
		employmentType,
		input.HireDate,
		input.Email,
	)
	if err != nil {
		return nil, err
	}
	emp.SetKana(input.LastNameKana, input.FirstNameKana)
	emp.SetContact(input.Phone, input.Address)
	emp.SetBirthDate(input.BirthDate)
	emp.SetArea(input.AreaID)

	if err := s.employeeRepo.Create(ctx, emp); err != nil {
		return nil, err
	}

	s.logger.Info("employee created",
		zap.String("employee_number", emp.EmployeeNumber),
		zap.String("id", emp.ID.String()))

	return s.view(ctx, emp)
}

// Update updates an existing employee record
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateEmployeeInput) (*EmployeeView, error) {
	emp, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	employmentType, err := directory.ParseEmploymentType(input.EmploymentType)
	if err != nil {
		return nil, err
	}

	if input.Email != emp.Email {
		if exists, err := s.employeeRepo.ExistsByEmail(ctx, input.Email); err != nil {
			return nil, err
		} else if exists {
			return nil, shared.NewDomainError("DUPLICATE_EMAIL",
				fmt.Sprintf("email '%s' already exists", input.Email))
		}
	}

	if err := emp.Rename(input.LastName, input.FirstName); err != nil {
		return nil, err
	}
	if err := emp.ChangeAssignment(input.DepartmentID, input.PositionID); err != nil {
		return nil, err
	}
	if err := emp.ChangeEmploymentType(employmentType); err != nil {
		return nil, err
	}
	if err := emp.ChangeEmail(input.Email); err != nil {
		return nil, err
	}
	emp.SetKana(input.LastNameKana, input.FirstNameKana)
	emp.SetContact(input.Phone, input.Address)
	emp.SetBirthDate(input.BirthDate)
	emp.SetArea(input.AreaID)

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return nil, err
	}
	return s.view(ctx, emp)
}

// Delete removes an employee record
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.employeeRepo.Delete(ctx, id)
}

// Get returns a single employee by ID
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*EmployeeView, error) {
	emp, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, emp)
}

// List returns a paginated employee listing. The filter is the same one the
// export path accepts.
func (s *Service) List(ctx context.Context, filter directory.EmployeeFilter) (*shared.Paginated[EmployeeView], error) {
	if filter.PageSize <= 0 {
		filter.PageSize = 50
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	employees, total, err := s.employeeRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	index, err := LoadReferenceIndex(ctx, s.departmentRepo, s.positionRepo, s.areaRepo)
	if err != nil {
		return nil, err
	}

	views := make([]EmployeeView, len(employees))
	for i, emp := range employees {
		views[i] = NewEmployeeView(emp, index)
	}
	result := shared.NewPaginated(views, total, filter.Page, filter.PageSize)
	return &result, nil
}

func (s *Service) view(ctx context.Context, emp *directory.Employee) (*EmployeeView, error) {
	index, err := LoadReferenceIndex(ctx, s.departmentRepo, s.positionRepo, s.areaRepo)
	if err != nil {
		return nil, err
	}
	view := NewEmployeeView(emp, index)
	return &view, nil
}

// generateNumber picks the next free generated employee number
func (s *Service) generateNumber(ctx context.Context) (string, error) {
	seq, err := s.employeeRepo.MaxGeneratedSeq(ctx)
	if err != nil {
		return "", err
	}
	for {
		seq++
		candidate := directory.FormatEmployeeNumber(seq)
		exists, err := s.employeeRepo.ExistsByEmployeeNumber(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
}
