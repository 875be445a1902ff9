package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type pairRequest struct {
	EventID   string `json:"event_id" binding:"required"`
	StudentID string `json:"student_id" binding:"required"`
}

// CreateRegistration handles the POST /registrations request.
func (h *Handler) CreateRegistration(c *gin.Context) {
	var req pairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event_id and student_id required"})
		return
	}

	reg, err := h.store.Register(c.Request.Context(), req.EventID, req.StudentID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reg)
}

// CreateAttendance handles the POST /attendance request.
func (h *Handler) CreateAttendance(c *gin.Context) {
	var req pairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event_id and student_id required"})
		return
	}

	att, err := h.store.MarkAttendance(c.Request.Context(), req.EventID, req.StudentID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, att)
}
