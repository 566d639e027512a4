package organization

import (
	"time"

	"github.com/staffdir/backend/internal/domain/directory"
)

// DepartmentView is the read model for departments
type DepartmentView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewDepartmentView builds a view from a domain department
func NewDepartmentView(d *directory.Department) DepartmentView {
	return DepartmentView{
		ID:          d.ID.String(),
		Name:        d.Name,
		Description: d.Description,
		SortOrder:   d.SortOrder,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// PositionView is the read model for positions
type PositionView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Rank      int       `json:"rank"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPositionView builds a view from a domain position
func NewPositionView(p *directory.Position) PositionView {
	return PositionView{
		ID:        p.ID.String(),
		Name:      p.Name,
		Rank:      p.Rank,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// AreaView is the read model for areas
type AreaView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAreaView builds a view from a domain area
func NewAreaView(a *directory.Area) AreaView {
	return AreaView{
		ID:        a.ID.String(),
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// CreateDepartmentInput carries fields for creating a department
type CreateDepartmentInput struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
	SortOrder   int    `json:"sort_order"`
}

// UpdateDepartmentInput carries fields for updating a department
type UpdateDepartmentInput struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
	SortOrder   int    `json:"sort_order"`
}

// CreatePositionInput carries fields for creating a position
type CreatePositionInput struct {
	Name string `json:"name" binding:"required,max=100"`
	Rank int    `json:"rank" binding:"min=0"`
}

// UpdatePositionInput carries fields for updating a position
type UpdatePositionInput struct {
	Name string `json:"name" binding:"required,max=100"`
	Rank int    `json:"rank" binding:"min=0"`
}

// CreateAreaInput carries fields for creating an area
type CreateAreaInput struct {
	Name string `json:"name" binding:"required,max=100"`
}

// UpdateAreaInput carries fields for updating an area
type UpdateAreaInput struct {
	Name string `json:"name" binding:"required,max=100"`
}
