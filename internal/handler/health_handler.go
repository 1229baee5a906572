package handler

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	stateDir string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(stateDir string) *HealthHandler {
	return &HealthHandler{stateDir: stateDir}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if _, err := os.Stat(h.stateDir); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "state directory not reachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
