package directory

import (
	"context"

	"github.com/google/uuid"
)

// EmployeeFilter represents filter criteria for employee listings and export
type EmployeeFilter struct {
	// Search matches as a substring across last/first name, kana readings,
	// email and employee number
	Search       string
	DepartmentID *uuid.UUID
	PositionID   *uuid.UUID
	Page         int
	PageSize     int
}

// EmployeeRepository defines the interface for employee persistence
type EmployeeRepository interface {
	Create(ctx context.Context, employee *Employee) error
	Update(ctx context.Context, employee *Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)
	FindByEmployeeNumber(ctx context.Context, number string) (*Employee, error)

	// FindAll returns matching employees ordered by employee number,
	// plus the total match count. A zero PageSize disables pagination.
	FindAll(ctx context.Context, filter EmployeeFilter) ([]*Employee, int64, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByEmployeeNumber(ctx context.Context, number string) (bool, error)

	// MaxGeneratedSeq returns the highest numeric suffix among stored
	// employee numbers of the generated form ("EMP%04d"). Returns 0 when
	// no generated numbers exist yet.
	MaxGeneratedSeq(ctx context.Context) (int64, error)
}

// DepartmentRepository defines the interface for department persistence
type DepartmentRepository interface {
	Create(ctx context.Context, dept *Department) error
	Update(ctx context.Context, dept *Department) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Department, error)
	FindAll(ctx context.Context) ([]*Department, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	CountEmployees(ctx context.Context, id uuid.UUID) (int64, error)
}

// PositionRepository defines the interface for position persistence
type PositionRepository interface {
	Create(ctx context.Context, position *Position) error
	Update(ctx context.Context, position *Position) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Position, error)
	FindAll(ctx context.Context) ([]*Position, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	CountEmployees(ctx context.Context, id uuid.UUID) (int64, error)
}

// AreaRepository defines the interface for area persistence
type AreaRepository interface {
	Create(ctx context.Context, area *Area) error
	Update(ctx context.Context, area *Area) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Area, error)
	FindAll(ctx context.Context) ([]*Area, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}
