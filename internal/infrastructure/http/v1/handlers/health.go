// Package handlers provides HTTP request handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recyclehub/internal/store"
)

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	store *store.Store
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(s *store.Store) *HealthHandler {
	return &HealthHandler{store: s}
}

// Live handles liveness probe (is the process alive?).
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Ready reports ready once every entity has loaded and none is loading.
// GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	checks := h.store.Status()
	if !h.store.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "loading",
			"checks": checks,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"checks": checks,
	})
}
