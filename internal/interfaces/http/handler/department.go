package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/staffdir/backend/internal/application/organization"
)

// DepartmentHandler handles department reference-data endpoints
type DepartmentHandler struct {
	BaseHandler
	service *organization.DepartmentService
}

// NewDepartmentHandler creates a new DepartmentHandler
func NewDepartmentHandler(service *organization.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

// List returns all departments
func (h *DepartmentHandler) List(c *gin.Context) {
	views, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, views)
}

// Get returns a single department
func (h *DepartmentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid department ID")
		return
	}
	view, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// Create creates a department
func (h *DepartmentHandler) Create(c *gin.Context) {
	var input organization.CreateDepartmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
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

// Update updates a department
func (h *DepartmentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid department ID")
		return
	}
	var input organization.UpdateDepartmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
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

// Delete removes a department
func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid department ID")
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
