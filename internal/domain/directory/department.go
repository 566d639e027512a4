package directory

import (
	"strings"

	"github.com/staffdir/backend/internal/domain/shared"
)

// Department represents an organizational unit
type Department struct {
	shared.BaseAggregateRoot
	Name        string // Display name, unique; also the resolution key for bulk import
	Description string
	SortOrder   int
}

// NewDepartment creates a new department
func NewDepartment(name string) (*Department, error) {
	if err := validateReferenceName(name, "Department"); err != nil {
		return nil, err
	}
	return &Department{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
	}, nil
}

// Update updates the department's basic information
func (d *Department) Update(name, description string) error {
	if err := validateReferenceName(name, "Department"); err != nil {
		return err
	}
	d.Name = strings.TrimSpace(name)
	d.Description = description
	d.Touch()
	d.IncrementVersion()
	return nil
}

// SetSortOrder sets the display order
func (d *Department) SetSortOrder(order int) {
	d.SortOrder = order
	d.Touch()
	d.IncrementVersion()
}

func validateReferenceName(name, kind string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", kind+" name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", kind+" name cannot exceed 100 characters")
	}
	return nil
}
