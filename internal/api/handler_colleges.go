package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createCollegeRequest struct {
	ID   string `json:"id"`
	Name string `json:"name" binding:"required"`
}

// CreateCollege handles the POST /colleges request.
func (h *Handler) CreateCollege(c *gin.Context) {
	var req createCollegeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
		return
	}

	college, err := h.store.CreateCollege(c.Request.Context(), req.ID, req.Name)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, college)
}
