package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler exposes the liveness probe. The service has no backing
// stores, so liveness is the only meaningful check.
type HealthHandler struct {
	serviceName string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(serviceName string) *HealthHandler {
	return &HealthHandler{serviceName: serviceName}
}

// RegisterRoutes registers the health routes on the given engine.
func (h *HealthHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", h.Live)
}

// Live handles GET /healthz.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": h.serviceName,
	})
}
