package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"arredo/internal/infrastructure/storage/registry"
)

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	store *registry.Store
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(store *registry.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Live handles liveness probe (is the process alive?).
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Ready handles readiness probe. The registry loads before the server
// starts, so readiness reduces to the store being populated.
// GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	counts := h.store.Counts()
	if counts["brands"] == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"checks": map[string]string{
				"registry": "unhealthy: no brands loaded",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"checks": map[string]string{
			"registry": "healthy",
		},
		"counts": counts,
	})
}

// Info returns application and snapshot information.
// GET /health/info
func (h *HealthHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"app":       "arredo",
		"snapshots": h.store.Snapshots(),
	})
}
