package employee

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/staffdir/backend/internal/domain/directory"
	"github.com/staffdir/backend/internal/infrastructure/csvio"
)

// parsedRow is a CSV row that passed validation and reference resolution
type parsedRow struct {
	lineNumber     int
	employeeNumber string // empty means a number will be generated
	lastName       string
	firstName      string
	lastNameKana   string
	firstNameKana  string
	departmentID   uuid.UUID
	positionID     uuid.UUID
	areaID         *uuid.UUID
	employmentType directory.EmploymentType
	hireDate       time.Time
	email          string
	phone          string
	birthDate      *time.Time
	address        string
}

// validateRow checks one CSV row and resolves its references. Every problem
// in the row is found, not just the first one, but the row still gets a
// single rejection: the first problem is the primary reason, the rest are
// carried in its Details.
func validateRow(row *csvio.Row, idx *ReferenceIndex) (*parsedRow, *csvio.RowError) {
	var errs []csvio.RowError
	line := row.LineNumber

	addError := func(err csvio.RowError) {
		errs = append(errs, err)
	}
	requireField := func(column string) bool {
		if row.Get(column) == "" {
			addError(csvio.NewRequiredError(line, column))
			return false
		}
		return true
	}

	p := &parsedRow{lineNumber: line}

	p.employeeNumber = row.Get(ColEmployeeNumber)
	if len(p.employeeNumber) > directory.MaxEmployeeNumberLength {
		addError(csvio.NewRowErrorWithValue(line, ColEmployeeNumber, csvio.ErrCodeInvalidLength,
			fmt.Sprintf("employee number cannot exceed %d characters", directory.MaxEmployeeNumberLength),
			p.employeeNumber))
	}

	if requireField(ColLastName) {
		p.lastName = row.Get(ColLastName)
	}
	if requireField(ColFirstName) {
		p.firstName = row.Get(ColFirstName)
	}
	p.lastNameKana = row.Get(ColLastNameKana)
	p.firstNameKana = row.Get(ColFirstNameKana)

	if requireField(ColDepartment) {
		name := row.Get(ColDepartment)
		if id, ok := idx.ResolveDepartment(name); ok {
			p.departmentID = id
		} else {
			addError(csvio.NewReferenceError(line, ColDepartment, name, "department"))
		}
	}

	if requireField(ColPosition) {
		name := row.Get(ColPosition)
		if id, ok := idx.ResolvePosition(name); ok {
			p.positionID = id
		} else {
			addError(csvio.NewReferenceError(line, ColPosition, name, "position"))
		}
	}

	if requireField(ColEmploymentType) {
		value := row.Get(ColEmploymentType)
		if t, err := directory.ParseEmploymentType(value); err == nil {
			p.employmentType = t
		} else {
			addError(csvio.NewRowErrorWithValue(line, ColEmploymentType, csvio.ErrCodeInvalidValue,
				fmt.Sprintf("employment type '%s' is not recognized", value), value))
		}
	}

	if requireField(ColHireDate) {
		value := row.Get(ColHireDate)
		if d, err := time.Parse(DateLayout, value); err == nil {
			p.hireDate = d
		} else {
			addError(csvio.NewFormatError(line, ColHireDate, "YYYY-MM-DD", value))
		}
	}

	if requireField(ColEmail) {
		value := row.Get(ColEmail)
		if _, err := mail.ParseAddress(value); err == nil {
			p.email = value
		} else {
			addError(csvio.NewFormatError(line, ColEmail, "a valid email address", value))
		}
	}

	p.phone = row.Get(ColPhone)
	p.address = row.Get(ColAddress)

	if value := row.Get(ColBirthDate); value != "" {
		if d, err := time.Parse(DateLayout, value); err == nil {
			p.birthDate = &d
		} else {
			addError(csvio.NewFormatError(line, ColBirthDate, "YYYY-MM-DD", value))
		}
	}

	if len(errs) > 0 {
		merged := csvio.MergeRowErrors(errs)
		return nil, &merged
	}
	return p, nil
}
