package handlers

import (
	"net/http"

	"fleetsim/internal/api/models"

	"github.com/gin-gonic/gin"
)

// StatusSource is the read surface a StatusHandler needs from the
// running simulation's snapshot.
type StatusSource interface {
	Status() models.StatusResponse
}

// StatusHandler serves the run's current progress.
type StatusHandler struct {
	source StatusSource
}

// NewStatusHandler creates a new status handler over source.
func NewStatusHandler(source StatusSource) *StatusHandler {
	return &StatusHandler{source: source}
}

// GetStatus handles GET /api/v1/status.
func (h *StatusHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.source.Status())
}
