package organization

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/staffdir/backend/internal/domain/directory"
	"github.com/staffdir/backend/internal/domain/shared"
)

// PositionService manages position reference data
type PositionService struct {
	repo   directory.PositionRepository
	logger *zap.Logger
}

// NewPositionService creates a new PositionService
func NewPositionService(repo directory.PositionRepository, logger *zap.Logger) *PositionService {
	return &PositionService{repo: repo, logger: logger}
}

// Create creates a position with a unique name
func (s *PositionService) Create(ctx context.Context, input CreatePositionInput) (*PositionView, error) {
	if exists, err := s.repo.ExistsByName(ctx, input.Name); err != nil {
		return nil, err
	} else if exists {
		return nil, shared.NewDomainError("DUPLICATE_NAME",
			fmt.Sprintf("position '%s' already exists", input.Name))
	}

	position, err := directory.NewPosition(input.Name, input.Rank)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, position); err != nil {
		return nil, err
	}
	s.logger.Info("position created", zap.String("name", position.Name))

	view := NewPositionView(position)
	return &view, nil
}

// Update renames or reranks a position
func (s *PositionService) Update(ctx context.Context, id uuid.UUID, input UpdatePositionInput) (*PositionView, error) {
	position, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != position.Name {
		if exists, err := s.repo.ExistsByName(ctx, input.Name); err != nil {
			return nil, err
		} else if exists {
			return nil, shared.NewDomainError("DUPLICATE_NAME",
				fmt.Sprintf("position '%s' already exists", input.Name))
		}
	}

	if err := position.Update(input.Name, input.Rank); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, position); err != nil {
		return nil, err
	}
	view := NewPositionView(position)
	return &view, nil
}

// Delete removes a position. The repository rejects the delete while
// employees still reference it.
func (s *PositionService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Get returns a single position
func (s *PositionService) Get(ctx context.Context, id uuid.UUID) (*PositionView, error) {
	position, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := NewPositionView(position)
	return &view, nil
}

// List returns all positions
func (s *PositionService) List(ctx context.Context) ([]PositionView, error) {
	positions, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]PositionView, len(positions))
	for i, p := range positions {
		views[i] = NewPositionView(p)
	}
	return views, nil
}
