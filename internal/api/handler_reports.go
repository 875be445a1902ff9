package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ReportPopularity handles GET /reports/popularity.
func (h *Handler) ReportPopularity(c *gin.Context) {
	rows, err := h.store.EventPopularity(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ReportEvent handles GET /reports/event/:id.
func (h *Handler) ReportEvent(c *gin.Context) {
	row, err := h.store.EventReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// ReportAttendancePercent handles GET /reports/attendance-percent.
func (h *Handler) ReportAttendancePercent(c *gin.Context) {
	rows, err := h.store.AttendancePercent(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ReportAverageFeedback handles GET /reports/avg-feedback.
func (h *Handler) ReportAverageFeedback(c *gin.Context) {
	rows, err := h.store.AverageFeedback(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ReportStudent handles GET /reports/student/:id.
func (h *Handler) ReportStudent(c *gin.Context) {
	row, err := h.store.StudentParticipation(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// ReportTopActive handles GET /reports/top-active?limit=N (default 3).
func (h *Handler) ReportTopActive(c *gin.Context) {
	limit := 3
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	rows, err := h.store.TopActiveStudents(c.Request.Context(), limit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
