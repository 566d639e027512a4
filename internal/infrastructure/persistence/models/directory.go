package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/staffdir/backend/internal/domain/directory"
)

// EmployeeModel is the persistence model for the Employee domain entity.
type EmployeeModel struct {
	AggregateModel
	EmployeeNumber string                   `gorm:"type:varchar(20);not null;uniqueIndex"`
	LastName       string                   `gorm:"type:varchar(100);not null"`
	FirstName      string                   `gorm:"type:varchar(100);not null"`
	LastNameKana   string                   `gorm:"type:varchar(100)"`
	FirstNameKana  string                   `gorm:"type:varchar(100)"`
	DepartmentID   uuid.UUID                `gorm:"type:uuid;not null;index"`
	PositionID     uuid.UUID                `gorm:"type:uuid;not null;index"`
	AreaID         *uuid.UUID               `gorm:"type:uuid;index"`
	EmploymentType directory.EmploymentType `gorm:"type:varchar(20);not null"`
	HireDate       time.Time                `gorm:"type:date;not null"`
	Email          string                   `gorm:"type:varchar(200);not null;uniqueIndex"`
	Phone          string                   `gorm:"type:varchar(50)"`
	BirthDate      *time.Time               `gorm:"type:date"`
	Address        string                   `gorm:"type:text"`
	EmergencyContact string                 `gorm:"type:text"`
	Education      string                   `gorm:"type:text"`
	WorkHistory    string                   `gorm:"type:text"`
	Skills         string                   `gorm:"type:text"`
	Notes          string                   `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (EmployeeModel) TableName() string {
	return "employees"
}

// ToDomain converts the persistence model to a domain Employee entity
func (m *EmployeeModel) ToDomain() *directory.Employee {
	e := &directory.Employee{
		EmployeeNumber:   m.EmployeeNumber,
		LastName:         m.LastName,
		FirstName:        m.FirstName,
		LastNameKana:     m.LastNameKana,
		FirstNameKana:    m.FirstNameKana,
		DepartmentID:     m.DepartmentID,
		PositionID:       m.PositionID,
		AreaID:           m.AreaID,
		EmploymentType:   m.EmploymentType,
		HireDate:         m.HireDate,
		Email:            m.Email,
		Phone:            m.Phone,
		BirthDate:        m.BirthDate,
		Address:          m.Address,
		EmergencyContact: m.EmergencyContact,
		Education:        m.Education,
		WorkHistory:      m.WorkHistory,
		Skills:           m.Skills,
		Notes:            m.Notes,
	}
	m.PopulateAggregateRoot(&e.BaseAggregateRoot)
	return e
}

// FromDomain populates the persistence model from a domain Employee entity
func (m *EmployeeModel) FromDomain(e *directory.Employee) {
	m.FromDomainAggregateRoot(e.BaseAggregateRoot)
	m.EmployeeNumber = e.EmployeeNumber
	m.LastName = e.LastName
	m.FirstName = e.FirstName
	m.LastNameKana = e.LastNameKana
	m.FirstNameKana = e.FirstNameKana
	m.DepartmentID = e.DepartmentID
	m.PositionID = e.PositionID
	m.AreaID = e.AreaID
	m.EmploymentType = e.EmploymentType
	m.HireDate = e.HireDate
	m.Email = e.Email
	m.Phone = e.Phone
	m.BirthDate = e.BirthDate
	m.Address = e.Address
	m.EmergencyContact = e.EmergencyContact
	m.Education = e.Education
	m.WorkHistory = e.WorkHistory
	m.Skills = e.Skills
	m.Notes = e.Notes
}

// EmployeeModelFromDomain creates a persistence model from a domain Employee
func EmployeeModelFromDomain(e *directory.Employee) *EmployeeModel {
	m := &EmployeeModel{}
	m.FromDomain(e)
	return m
}

// DepartmentModel is the persistence model for the Department domain entity.
type DepartmentModel struct {
	AggregateModel
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	SortOrder   int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (DepartmentModel) TableName() string {
	return "departments"
}

// ToDomain converts the persistence model to a domain Department entity
func (m *DepartmentModel) ToDomain() *directory.Department {
	d := &directory.Department{
		Name:        m.Name,
		Description: m.Description,
		SortOrder:   m.SortOrder,
	}
	m.PopulateAggregateRoot(&d.BaseAggregateRoot)
	return d
}

// DepartmentModelFromDomain creates a persistence model from a domain Department
func DepartmentModelFromDomain(d *directory.Department) *DepartmentModel {
	m := &DepartmentModel{
		Name:        d.Name,
		Description: d.Description,
		SortOrder:   d.SortOrder,
	}
	m.FromDomainAggregateRoot(d.BaseAggregateRoot)
	return m
}

// PositionModel is the persistence model for the Position domain entity.
type PositionModel struct {
	AggregateModel
	Name string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Rank int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (PositionModel) TableName() string {
	return "positions"
}

// ToDomain converts the persistence model to a domain Position entity
func (m *PositionModel) ToDomain() *directory.Position {
	p := &directory.Position{
		Name: m.Name,
		Rank: m.Rank,
	}
	m.PopulateAggregateRoot(&p.BaseAggregateRoot)
	return p
}

// PositionModelFromDomain creates a persistence model from a domain Position
func PositionModelFromDomain(p *directory.Position) *PositionModel {
	m := &PositionModel{
		Name: p.Name,
		Rank: p.Rank,
	}
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	return m
}

// AreaModel is the persistence model for the Area domain entity.
type AreaModel struct {
	AggregateModel
	Name string `gorm:"type:varchar(100);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (AreaModel) TableName() string {
	return "areas"
}

// ToDomain converts the persistence model to a domain Area entity
func (m *AreaModel) ToDomain() *directory.Area {
	a := &directory.Area{
		Name: m.Name,
	}
	m.PopulateAggregateRoot(&a.BaseAggregateRoot)
	return a
}

// AreaModelFromDomain creates a persistence model from a domain Area
func AreaModelFromDomain(a *directory.Area) *AreaModel {
	m := &AreaModel{
		Name: a.Name,
	}
	m.FromDomainAggregateRoot(a.BaseAggregateRoot)
	return m
}
