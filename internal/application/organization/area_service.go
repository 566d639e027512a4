package organization

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/staffdir/backend/internal/domain/directory"
	"github.com/staffdir/backend/internal/domain/shared"
)

// AreaService manages area reference data
type AreaService struct {
	repo   directory.AreaRepository
	logger *zap.Logger
}

// NewAreaService creates a new AreaService
func NewAreaService(repo directory.AreaRepository, logger *zap.Logger) *AreaService {
	return &AreaService{repo: repo, logger: logger}
}

// Create creates an area with a unique name
func (s *AreaService) Create(ctx context.Context, input CreateAreaInput) (*AreaView, error) {
	if exists, err := s.repo.ExistsByName(ctx, input.Name); err != nil {
		return nil, err
	} else if exists {
		return nil, shared.NewDomainError("DUPLICATE_NAME",
			fmt.Sprintf("area '%s' already exists", input.Name))
	}

	area, err := directory.NewArea(input.Name)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, area); err != nil {
		return nil, err
	}
	s.logger.Info("area created", zap.String("name", area.Name))

	view := NewAreaView(area)
	return &view, nil
}

// Update renames an area
func (s *AreaService) Update(ctx context.Context, id uuid.UUID, input UpdateAreaInput) (*AreaView, error) {
	area, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != area.Name {
		if exists, err := s.repo.ExistsByName(ctx, input.Name); err != nil {
			return nil, err
		} else if exists {
			return nil, shared.NewDomainError("DUPLICATE_NAME",
				fmt.Sprintf("area '%s' already exists", input.Name))
		}
	}

	if err := area.Update(input.Name); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, area); err != nil {
		return nil, err
	}
	view := NewAreaView(area)
	return &view, nil
}

// Delete removes an area. Employees referencing it keep their record;
// the area assignment is optional.
func (s *AreaService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Get returns a single area
func (s *AreaService) Get(ctx context.Context, id uuid.UUID) (*AreaView, error) {
	area, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := NewAreaView(area)
	return &view, nil
}

// List returns all areas
func (s *AreaService) List(ctx context.Context) ([]AreaView, error) {
	areas, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]AreaView, len(areas))
	for i, a := range areas {
		views[i] = NewAreaView(a)
	}
	return views, nil
}
