package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-events-backend/internal/store"
)

type createStudentRequest struct {
	ID        string `json:"id"`
	CollegeID string `json:"college_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email"`
}

// CreateStudent handles the POST /students request.
func (h *Handler) CreateStudent(c *gin.Context) {
	var req createStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "college_id and name required"})
		return
	}

	student, err := h.store.CreateStudent(c.Request.Context(), store.NewStudent{
		ID:        req.ID,
		CollegeID: req.CollegeID,
		Name:      req.Name,
		Email:     req.Email,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, student)
}

// ListStudents handles the GET /students request, optionally filtered by college.
func (h *Handler) ListStudents(c *gin.Context) {
	students, err := h.store.ListStudents(c.Request.Context(), c.Query("college_id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}
