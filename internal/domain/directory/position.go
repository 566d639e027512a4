package directory

import (
	"strings"

	"github.com/staffdir/backend/internal/domain/shared"
)

// Position represents a job title within the organization
type Position struct {
	shared.BaseAggregateRoot
	Name string // Display name, unique; also the resolution key for bulk import
	Rank int    // Lower rank sorts first in listings (e.g., 1 = general manager)
}

// NewPosition creates a new position
func NewPosition(name string, rank int) (*Position, error) {
	if err := validateReferenceName(name, "Position"); err != nil {
		return nil, err
	}
	if rank < 0 {
		return nil, shared.NewDomainError("INVALID_RANK", "Position rank cannot be negative")
	}
	return &Position{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Rank:              rank,
	}, nil
}

// Update updates the position's information
func (p *Position) Update(name string, rank int) error {
	if err := validateReferenceName(name, "Position"); err != nil {
		return err
	}
	if rank < 0 {
		return shared.NewDomainError("INVALID_RANK", "Position rank cannot be negative")
	}
	p.Name = strings.TrimSpace(name)
	p.Rank = rank
	p.Touch()
	p.IncrementVersion()
	return nil
}
