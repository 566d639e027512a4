package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/staffdir/backend/internal/application/organization"
)

// PositionHandler handles position reference-data endpoints
type PositionHandler struct {
	BaseHandler
	service *organization.PositionService
}

// NewPositionHandler creates a new PositionHandler
func NewPositionHandler(service *organization.PositionService) *PositionHandler {
	return &PositionHandler{service: service}
}

// List returns all positions
func (h *PositionHandler) List(c *gin.Context) {
	views, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, views)
}

// Get returns a single position
func (h *PositionHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid position ID")
		return
	}
	view, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// Create creates a position
func (h *PositionHandler) Create(c *gin.Context) {
	var input organization.CreatePositionInput
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

// Update updates a position
func (h *PositionHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid position ID")
		return
	}
	var input organization.UpdatePositionInput
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

// Delete removes a position
func (h *PositionHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid position ID")
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
