package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-events-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store store.Store
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store) *Handler {
	return &Handler{store: s}
}

// Health handles the GET / liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Campus events API is running."})
}

// abortWithError maps a store error onto its HTTP status. Validation
// failures and forbidden-by-state rejections are both client errors;
// anything unrecognized is logged and hidden behind a generic 500.
func abortWithError(c *gin.Context, err error) {
	switch {
	case store.IsValidation(err), store.IsStateRejection(err):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case store.IsNotFound(err):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case store.IsConflict(err):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Printf("unexpected store error: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
