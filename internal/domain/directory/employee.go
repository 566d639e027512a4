package directory

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/staffdir/backend/internal/domain/shared"
)

// EmploymentType represents the employment category of an employee
type EmploymentType string

const (
	EmploymentRegular   EmploymentType = "regular"
	EmploymentContract  EmploymentType = "contract"
	EmploymentTemporary EmploymentType = "temporary"
	EmploymentPartTime  EmploymentType = "part_time"
)

// MaxEmployeeNumberLength is the maximum length of a caller-supplied employee number
const MaxEmployeeNumberLength = 20

// employmentTypeLabels maps each employment type to its display label.
// The labels are what appears in CSV files and UI screens.
var employmentTypeLabels = map[EmploymentType]string{
	EmploymentRegular:   "正社員",
	EmploymentContract:  "契約社員",
	EmploymentTemporary: "派遣社員",
	EmploymentPartTime:  "パートタイム",
}

// Label returns the localized display label for the employment type
func (t EmploymentType) Label() string {
	return employmentTypeLabels[t]
}

// IsValid returns true if the employment type is one of the fixed set
func (t EmploymentType) IsValid() bool {
	_, ok := employmentTypeLabels[t]
	return ok
}

// ParseEmploymentType parses an employment type from either its canonical
// code ("regular") or its display label ("正社員"). Unrecognized values are
// rejected, never defaulted.
func ParseEmploymentType(value string) (EmploymentType, error) {
	v := strings.TrimSpace(value)
	if t := EmploymentType(v); t.IsValid() {
		return t, nil
	}
	for t, label := range employmentTypeLabels {
		if v == label {
			return t, nil
		}
	}
	return "", shared.NewDomainError("INVALID_EMPLOYMENT_TYPE",
		fmt.Sprintf("employment type '%s' is not recognized", value))
}

// EmploymentTypes returns all valid employment types in a stable order
func EmploymentTypes() []EmploymentType {
	return []EmploymentType{EmploymentRegular, EmploymentContract, EmploymentTemporary, EmploymentPartTime}
}

// Employee represents a member of the organization.
// It is the aggregate root for directory record operations.
type Employee struct {
	shared.BaseAggregateRoot
	EmployeeNumber string     // Natural key, unique (e.g., "EMP0042")
	LastName       string     // Required
	FirstName      string     // Required
	LastNameKana   string     // Optional phonetic reading
	FirstNameKana  string     // Optional phonetic reading
	DepartmentID   uuid.UUID  // Required reference
	PositionID     uuid.UUID  // Required reference
	AreaID         *uuid.UUID // Optional reference (nil = no area)
	EmploymentType EmploymentType
	HireDate       time.Time
	Email          string // Natural key, unique
	Phone          string
	BirthDate      *time.Time // Optional
	Address        string

	// Free-text profile fields, maintained through single-record screens
	EmergencyContact string
	Education        string
	WorkHistory      string
	Skills           string
	Notes            string
}

// NewEmployee creates a new employee with all required fields validated
func NewEmployee(
	employeeNumber, lastName, firstName string,
	departmentID, positionID uuid.UUID,
	employmentType EmploymentType,
	hireDate time.Time,
	email string,
) (*Employee, error) {
	if err := validateEmployeeNumber(employeeNumber); err != nil {
		return nil, err
	}
	if err := validateName(lastName, "last name"); err != nil {
		return nil, err
	}
	if err := validateName(firstName, "first name"); err != nil {
		return nil, err
	}
	if departmentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_DEPARTMENT", "Department is required")
	}
	if positionID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_POSITION", "Position is required")
	}
	if !employmentType.IsValid() {
		return nil, shared.NewDomainError("INVALID_EMPLOYMENT_TYPE", "Employment type is not recognized")
	}
	if hireDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_HIRE_DATE", "Hire date is required")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	return &Employee{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		EmployeeNumber:    strings.TrimSpace(employeeNumber),
		LastName:          strings.TrimSpace(lastName),
		FirstName:         strings.TrimSpace(firstName),
		DepartmentID:      departmentID,
		PositionID:        positionID,
		EmploymentType:    employmentType,
		HireDate:          hireDate,
		Email:             strings.TrimSpace(email),
	}, nil
}

// FullName returns the display name in "last first" order
func (e *Employee) FullName() string {
	return e.LastName + " " + e.FirstName
}

// SetKana sets the phonetic readings
func (e *Employee) SetKana(lastNameKana, firstNameKana string) {
	e.LastNameKana = strings.TrimSpace(lastNameKana)
	e.FirstNameKana = strings.TrimSpace(firstNameKana)
	e.Touch()
	e.IncrementVersion()
}

// SetContact sets phone and address
func (e *Employee) SetContact(phone, address string) {
	e.Phone = strings.TrimSpace(phone)
	e.Address = strings.TrimSpace(address)
	e.Touch()
	e.IncrementVersion()
}

// SetBirthDate sets the optional birth date (nil = absent)
func (e *Employee) SetBirthDate(birthDate *time.Time) {
	e.BirthDate = birthDate
	e.Touch()
	e.IncrementVersion()
}

// SetArea assigns the employee to an area (nil = no area)
func (e *Employee) SetArea(areaID *uuid.UUID) {
	e.AreaID = areaID
	e.Touch()
	e.IncrementVersion()
}

// SetProfile sets the free-text profile fields
func (e *Employee) SetProfile(emergencyContact, education, workHistory, skills, notes string) {
	e.EmergencyContact = emergencyContact
	e.Education = education
	e.WorkHistory = workHistory
	e.Skills = skills
	e.Notes = notes
	e.Touch()
	e.IncrementVersion()
}

// ChangeEmail updates the email address
func (e *Employee) ChangeEmail(email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	e.Email = strings.TrimSpace(email)
	e.Touch()
	e.IncrementVersion()
	return nil
}

// ChangeAssignment moves the employee to a different department/position
func (e *Employee) ChangeAssignment(departmentID, positionID uuid.UUID) error {
	if departmentID == uuid.Nil {
		return shared.NewDomainError("INVALID_DEPARTMENT", "Department is required")
	}
	if positionID == uuid.Nil {
		return shared.NewDomainError("INVALID_POSITION", "Position is required")
	}
	e.DepartmentID = departmentID
	e.PositionID = positionID
	e.Touch()
	e.IncrementVersion()
	return nil
}

// ChangeEmploymentType updates the employment type
func (e *Employee) ChangeEmploymentType(t EmploymentType) error {
	if !t.IsValid() {
		return shared.NewDomainError("INVALID_EMPLOYMENT_TYPE", "Employment type is not recognized")
	}
	e.EmploymentType = t
	e.Touch()
	e.IncrementVersion()
	return nil
}

// Rename updates the employee name fields
func (e *Employee) Rename(lastName, firstName string) error {
	if err := validateName(lastName, "last name"); err != nil {
		return err
	}
	if err := validateName(firstName, "first name"); err != nil {
		return err
	}
	e.LastName = strings.TrimSpace(lastName)
	e.FirstName = strings.TrimSpace(firstName)
	e.Touch()
	e.IncrementVersion()
	return nil
}

// GeneratedNumberPrefix prefixes employee numbers assigned by the system
const GeneratedNumberPrefix = "EMP"

// FormatEmployeeNumber renders a sequence value as an employee number
func FormatEmployeeNumber(seq int64) string {
	return fmt.Sprintf("%s%04d", GeneratedNumberPrefix, seq)
}

// Validation functions

func validateEmployeeNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return shared.NewDomainError("INVALID_EMPLOYEE_NUMBER", "Employee number cannot be empty")
	}
	if len(number) > MaxEmployeeNumberLength {
		return shared.NewDomainError("INVALID_EMPLOYEE_NUMBER",
			fmt.Sprintf("Employee number cannot exceed %d characters", MaxEmployeeNumberLength))
	}
	return nil
}

func validateName(name, field string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Employee "+field+" cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Employee "+field+" cannot exceed 100 characters")
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return shared.NewDomainError("INVALID_EMAIL", "Email address is malformed")
	}
	return nil
}
