package employee

import (
	"context"

	"github.com/google/uuid"

	"github.com/staffdir/backend/internal/domain/directory"
)

// ReferenceIndex resolves department, position and area names to their IDs.
// It is loaded once per import or export run, so resolution never touches the
// database mid-batch. Lookup is by exact, case-sensitive name.
type ReferenceIndex struct {
	departmentsByName map[string]uuid.UUID
	positionsByName   map[string]uuid.UUID
	areasByName       map[string]uuid.UUID

	departmentsByID map[uuid.UUID]string
	positionsByID   map[uuid.UUID]string
	areasByID       map[uuid.UUID]string
}

// LoadReferenceIndex reads all reference data through the repositories
func LoadReferenceIndex(
	ctx context.Context,
	departmentRepo directory.DepartmentRepository,
	positionRepo directory.PositionRepository,
	areaRepo directory.AreaRepository,
) (*ReferenceIndex, error) {
	departments, err := departmentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	positions, err := positionRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	areas, err := areaRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	idx := &ReferenceIndex{
		departmentsByName: make(map[string]uuid.UUID, len(departments)),
		positionsByName:   make(map[string]uuid.UUID, len(positions)),
		areasByName:       make(map[string]uuid.UUID, len(areas)),
		departmentsByID:   make(map[uuid.UUID]string, len(departments)),
		positionsByID:     make(map[uuid.UUID]string, len(positions)),
		areasByID:         make(map[uuid.UUID]string, len(areas)),
	}

	for _, d := range departments {
		idx.departmentsByName[d.Name] = d.ID
		idx.departmentsByID[d.ID] = d.Name
	}
	for _, p := range positions {
		idx.positionsByName[p.Name] = p.ID
		idx.positionsByID[p.ID] = p.Name
	}
	for _, a := range areas {
		idx.areasByName[a.Name] = a.ID
		idx.areasByID[a.ID] = a.Name
	}

	return idx, nil
}

// ResolveDepartment resolves a department name to its ID
func (idx *ReferenceIndex) ResolveDepartment(name string) (uuid.UUID, bool) {
	id, ok := idx.departmentsByName[name]
	return id, ok
}

// ResolvePosition resolves a position name to its ID
func (idx *ReferenceIndex) ResolvePosition(name string) (uuid.UUID, bool) {
	id, ok := idx.positionsByName[name]
	return id, ok
}

// ResolveArea resolves an area name to its ID
func (idx *ReferenceIndex) ResolveArea(name string) (uuid.UUID, bool) {
	id, ok := idx.areasByName[name]
	return id, ok
}

// DepartmentName returns the name for a department ID
func (idx *ReferenceIndex) DepartmentName(id uuid.UUID) string {
	return idx.departmentsByID[id]
}

// PositionName returns the name for a position ID
func (idx *ReferenceIndex) PositionName(id uuid.UUID) string {
	return idx.positionsByID[id]
}

// AreaName returns the name for an area ID, empty when id is nil
func (idx *ReferenceIndex) AreaName(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return idx.areasByID[*id]
}
