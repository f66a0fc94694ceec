package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agence-menage/service-leads/internal/domain/catalog"
)

// CatalogHandler serves the service definitions the booking forms render
// from: room tables, surface bands, add-ons and rates.
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// RegisterRoutes registers the catalog routes on the given router group.
func (h *CatalogHandler) RegisterRoutes(r *gin.RouterGroup) {
	services := r.Group("/api/v1/services")
	{
		services.GET("", h.ListServices)
		services.GET("/:id", h.GetService)
	}
}

// ListServices handles GET /api/v1/services.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	Success(c, catalog.All())
}

// GetService handles GET /api/v1/services/:id.
func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, ok := catalog.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	Success(c, svc)
}
