package handler

import (
	"github.com/adiwira/kasirpos/internal/application/service"
	"github.com/adiwira/kasirpos/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// DashboardHandler handles the landing screen stats request
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats returns today's takings, sequence status and low stock items
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats := h.dashboardService.Stats(c.Request.Context())
	response.OK(c, "Dashboard stats retrieved successfully", stats)
}
