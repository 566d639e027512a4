package directory

import (
	"strings"

	"github.com/staffdir/backend/internal/domain/shared"
)

// Area represents a geographic or business area an employee can belong to.
// Unlike department and position, area membership is optional.
type Area struct {
	shared.BaseAggregateRoot
	Name string // Display name, unique; also the resolution key for bulk import
}

// NewArea creates a new area
func NewArea(name string) (*Area, error) {
	if err := validateReferenceName(name, "Area"); err != nil {
		return nil, err
	}
	return &Area{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
	}, nil
}

// Update updates the area name
func (a *Area) Update(name string) error {
	if err := validateReferenceName(name, "Area"); err != nil {
		return err
	}
	a.Name = strings.TrimSpace(name)
	a.Touch()
	a.IncrementVersion()
	return nil
}
