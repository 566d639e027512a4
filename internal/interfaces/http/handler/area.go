package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/staffdir/backend/internal/application/organization"
)

// AreaHandler handles area reference-data endpoints
type AreaHandler struct {
	BaseHandler
	service *organization.AreaService
}

// NewAreaHandler creates a new AreaHandler
func NewAreaHandler(service *organization.AreaService) *AreaHandler {
	return &AreaHandler{service: service}
}

// List returns all areas
func (h *AreaHandler) List(c *gin.Context) {
	views, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, views)
}

// Get returns a single area
func (h *AreaHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid area ID")
		return
	}
	view, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// Create creates an area
func (h *AreaHandler) Create(c *gin.Context) {
	var input organization.CreateAreaInput
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

// Update updates an area
func (h *AreaHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid area ID")
		return
	}
	var input organization.UpdateAreaInput
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

// Delete removes an area
func (h *AreaHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid area ID")
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
