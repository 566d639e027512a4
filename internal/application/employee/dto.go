package employee

import (
	"time"

	"github.com/google/uuid"

	"github.com/staffdir/backend/internal/domain/directory"
)

// EmployeeView is the read model returned by listing, detail and import
// preview responses
type EmployeeView struct {
	ID              uuid.UUID `json:"id"`
	EmployeeNumber  string    `json:"employee_number"`
	LastName        string    `json:"last_name"`
	FirstName       string    `json:"first_name"`
	LastNameKana    string    `json:"last_name_kana,omitempty"`
	FirstNameKana   string    `json:"first_name_kana,omitempty"`
	DepartmentID    uuid.UUID `json:"department_id"`
	DepartmentName  string    `json:"department_name"`
	PositionID      uuid.UUID `json:"position_id"`
	PositionName    string    `json:"position_name"`
	AreaName        string    `json:"area_name,omitempty"`
	EmploymentType  string    `json:"employment_type"`
	EmploymentLabel string    `json:"employment_label"`
	HireDate        string    `json:"hire_date"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	BirthDate       string    `json:"birth_date,omitempty"`
	Address         string    `json:"address,omitempty"`
}

// NewEmployeeView builds a view from a domain employee, resolving reference
// names through the index
func NewEmployeeView(e *directory.Employee, idx *ReferenceIndex) EmployeeView {
	view := EmployeeView{
		ID:              e.ID,
		EmployeeNumber:  e.EmployeeNumber,
		LastName:        e.LastName,
		FirstName:       e.FirstName,
		LastNameKana:    e.LastNameKana,
		FirstNameKana:   e.FirstNameKana,
		DepartmentID:    e.DepartmentID,
		PositionID:      e.PositionID,
		EmploymentType:  string(e.EmploymentType),
		EmploymentLabel: e.EmploymentType.Label(),
		HireDate:        e.HireDate.Format(DateLayout),
		Email:           e.Email,
		Phone:           e.Phone,
		Address:         e.Address,
	}
	if e.BirthDate != nil {
		view.BirthDate = e.BirthDate.Format(DateLayout)
	}
	if idx != nil {
		view.DepartmentName = idx.DepartmentName(e.DepartmentID)
		view.PositionName = idx.PositionName(e.PositionID)
		view.AreaName = idx.AreaName(e.AreaID)
	}
	return view
}

// CreateEmployeeInput is the input for single-record employee creation
type CreateEmployeeInput struct {
	EmployeeNumber string     // optional, generated when empty
	LastName       string
	FirstName      string
	LastNameKana   string
	FirstNameKana  string
	DepartmentID   uuid.UUID
	PositionID     uuid.UUID
	AreaID         *uuid.UUID
	EmploymentType string // code or localized label
	HireDate       time.Time
	Email          string
	Phone          string
	BirthDate      *time.Time
	Address        string
}

// UpdateEmployeeInput is the input for single-record employee update
type UpdateEmployeeInput struct {
	LastName       string
	FirstName      string
	LastNameKana   string
	FirstNameKana  string
	DepartmentID   uuid.UUID
	PositionID     uuid.UUID
	AreaID         *uuid.UUID
	EmploymentType string
	Email          string
	Phone          string
	BirthDate      *time.Time
	Address        string
}
