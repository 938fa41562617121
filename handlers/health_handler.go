package handlers

import (
	"net/http"

	"github.com/akshayraj-industries/website-backend/services"
	"github.com/akshayraj-industries/website-backend/types"
	"github.com/gin-gonic/gin"
)

// HealthHandler exposes liveness and readiness probes.
type HealthHandler struct {
	health *services.HealthService
}

func NewHealthHandler(health *services.HealthService) *HealthHandler {
	return &HealthHandler{health: health}
}

// Liveness handles GET /health. It only proves the process is serving.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "up"})
}

// Readiness handles GET /health/readiness, checking Postgres and Redis.
// A degraded service still reports 200; only a down database returns 503.
func (h *HealthHandler) Readiness(c *gin.Context) {
	check := h.health.CheckHealth(c.Request.Context())

	status := http.StatusOK
	if check.Status == types.HealthStatusDown {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, check)
}
