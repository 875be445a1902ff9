package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type submitFeedbackRequest struct {
	EventID   string `json:"event_id" binding:"required"`
	StudentID string `json:"student_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

// CreateFeedback handles the POST /feedback request.
func (h *Handler) CreateFeedback(c *gin.Context) {
	var req submitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event_id, student_id and rating 1..5 required"})
		return
	}

	fb, err := h.store.SubmitFeedback(c.Request.Context(), req.EventID, req.StudentID, req.Rating, req.Comment)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fb)
}
