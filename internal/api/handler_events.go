package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-events-backend/internal/store"
)

type createEventRequest struct {
	CollegeID string `json:"college_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Type      string `json:"type"`
	Date      string `json:"date"`
	Capacity  *int   `json:"capacity" binding:"omitempty,min=1"`
}

// CreateEvent handles the POST /events request.
func (h *Handler) CreateEvent(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "college_id and name required"})
		return
	}

	event, err := h.store.CreateEvent(c.Request.Context(), store.NewEvent{
		CollegeID: req.CollegeID,
		Name:      req.Name,
		Type:      req.Type,
		Date:      req.Date,
		Capacity:  req.Capacity,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// ListEvents handles the GET /events request, optionally filtered by college.
func (h *Handler) ListEvents(c *gin.Context) {
	events, err := h.store.ListEvents(c.Request.Context(), c.Query("college_id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}
