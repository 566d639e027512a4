package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	employeeapp "github.com/staffdir/backend/internal/application/employee"
	"github.com/staffdir/backend/internal/domain/directory"
	"github.com/staffdir/backend/internal/interfaces/http/dto"
)

// EmployeeHandler handles single-record employee endpoints
type EmployeeHandler struct {
	BaseHandler
	service *employeeapp.Service
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(service *employeeapp.Service) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// EmployeeRequest is the JSON body for employee create and update.
// Dates use the same YYYY-MM-DD layout as the CSV pipeline.
type EmployeeRequest struct {
	EmployeeNumber string `json:"employee_number" binding:"omitempty,max=20"`
	LastName       string `json:"last_name" binding:"required,max=50"`
	FirstName      string `json:"first_name" binding:"required,max=50"`
	LastNameKana   string `json:"last_name_kana" binding:"max=50"`
	FirstNameKana  string `json:"first_name_kana" binding:"max=50"`
	DepartmentID   string `json:"department_id" binding:"required,uuid"`
	PositionID     string `json:"position_id" binding:"required,uuid"`
	AreaID         string `json:"area_id" binding:"omitempty,uuid"`
	EmploymentType string `json:"employment_type" binding:"required"`
	HireDate       string `json:"hire_date" binding:"required,csvdate"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"max=20"`
	BirthDate      string `json:"birth_date" binding:"omitempty,csvdate"`
	Address        string `json:"address" binding:"max=200"`
}

func (r *EmployeeRequest) toCreateInput() (employeeapp.CreateEmployeeInput, error) {
	input := employeeapp.CreateEmployeeInput{
		EmployeeNumber: r.EmployeeNumber,
		LastName:       r.LastName,
		FirstName:      r.FirstName,
		LastNameKana:   r.LastNameKana,
		FirstNameKana:  r.FirstNameKana,
		EmploymentType: r.EmploymentType,
		Email:          r.Email,
		Phone:          r.Phone,
		Address:        r.Address,
	}

	var err error
	if input.DepartmentID, err = uuid.Parse(r.DepartmentID); err != nil {
		return input, err
	}
	if input.PositionID, err = uuid.Parse(r.PositionID); err != nil {
		return input, err
	}
	if r.AreaID != "" {
		areaID, err := uuid.Parse(r.AreaID)
		if err != nil {
			return input, err
		}
		input.AreaID = &areaID
	}
	if input.HireDate, err = time.Parse(employeeapp.DateLayout, r.HireDate); err != nil {
		return input, err
	}
	if r.BirthDate != "" {
		birthDate, err := time.Parse(employeeapp.DateLayout, r.BirthDate)
		if err != nil {
			return input, err
		}
		input.BirthDate = &birthDate
	}
	return input, nil
}

func (r *EmployeeRequest) toUpdateInput() (employeeapp.UpdateEmployeeInput, error) {
	create, err := r.toCreateInput()
	if err != nil {
		return employeeapp.UpdateEmployeeInput{}, err
	}
	return employeeapp.UpdateEmployeeInput{
		LastName:       create.LastName,
		FirstName:      create.FirstName,
		LastNameKana:   create.LastNameKana,
		FirstNameKana:  create.FirstNameKana,
		DepartmentID:   create.DepartmentID,
		PositionID:     create.PositionID,
		AreaID:         create.AreaID,
		EmploymentType: create.EmploymentType,
		Email:          create.Email,
		Phone:          create.Phone,
		BirthDate:      create.BirthDate,
		Address:        create.Address,
	}, nil
}

// buildEmployeeFilter translates list query parameters into a domain filter
func buildEmployeeFilter(req dto.ListEmployeesRequest) directory.EmployeeFilter {
	filter := directory.EmployeeFilter{
		Search:   req.Search,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if req.DepartmentID != "" {
		if id, err := uuid.Parse(req.DepartmentID); err == nil {
			filter.DepartmentID = &id
		}
	}
	if req.PositionID != "" {
		if id, err := uuid.Parse(req.PositionID); err == nil {
			filter.PositionID = &id
		}
	}
	return filter
}

// List returns a paginated employee listing
func (h *EmployeeHandler) List(c *gin.Context) {
	var req dto.ListEmployeesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	result, err := h.service.List(c.Request.Context(), buildEmployeeFilter(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Get returns a single employee
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid employee ID")
		return
	}
	view, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// Create creates a single employee record
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}
	input, err := req.toCreateInput()
	if err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	view, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, view)
}

// Update updates an employee record
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid employee ID")
		return
	}
	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}
	input, err := req.toUpdateInput()
	if err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	view, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// Delete removes an employee record
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid employee ID")
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
