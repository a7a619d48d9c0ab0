package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ftzops/internal/port"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	store port.ReferenceStore
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(store port.ReferenceStore) *HealthHandler {
	return &HealthHandler{store: store}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if len(h.store.Entries()) == 0 || h.store.DutyRateCount() == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "reference data not loaded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
