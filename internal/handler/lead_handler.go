package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/agence-menage/service-leads/internal/application"
	"github.com/agence-menage/service-leads/internal/domain/lead"
)

// LeadHandler handles HTTP requests for estimates, quotes and submissions.
type LeadHandler struct {
	service *application.LeadService
}

// NewLeadHandler creates a new LeadHandler.
func NewLeadHandler(service *application.LeadService) *LeadHandler {
	return &LeadHandler{service: service}
}

// RegisterRoutes registers the lead routes on the given router group.
func (h *LeadHandler) RegisterRoutes(r *gin.RouterGroup) {
	services := r.Group("/api/v1/services/:id")
	{
		services.POST("/estimate", h.Estimate)
		services.POST("/quote", h.Quote)
		services.POST("/bookings", h.Submit)
	}
}

// Estimate handles POST /api/v1/services/:id/estimate.
func (h *LeadHandler) Estimate(c *gin.Context) {
	var req application.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Estimate(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		Error(c, err)
		return
	}

	Success(c, result)
}

// Quote handles POST /api/v1/services/:id/quote.
func (h *LeadHandler) Quote(c *gin.Context) {
	var req application.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Quote(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		Error(c, err)
		return
	}

	Success(c, result)
}

// Submit handles POST /api/v1/services/:id/bookings.
func (h *LeadHandler) Submit(c *gin.Context) {
	var draft lead.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Submit(c.Request.Context(), c.Param("id"), draft)
	if err != nil {
		Error(c, err)
		return
	}

	Created(c, result)
}
