package handlers

import (
	"github.com/gin-gonic/gin"

	"recyclehub/internal/domain/reports"
)

// ReportsHandler handles HTTP requests for reports.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Dashboard handles GET /dashboard
func (h *ReportsHandler) Dashboard(c *gin.Context) {
	h.OK(c, h.service.Dashboard())
}

// Calendar handles GET /calendar
func (h *ReportsHandler) Calendar(c *gin.Context) {
	h.OK(c, h.service.Calendar())
}
