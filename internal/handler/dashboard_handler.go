package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/urbanwheels/dashboard-go/internal/service"
	"github.com/urbanwheels/dashboard-go/pkg/response"
)

// DashboardHandler handles HTTP requests for the overview page
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary handles GET /api/v1/dashboard/summary
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	response.Success(c, h.dashboardService.GetSummary(filter))
}

// GetHourly handles GET /api/v1/dashboard/hourly
func (h *DashboardHandler) GetHourly(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	response.Success(c, h.dashboardService.GetHourly(filter))
}

// GetSeasonal handles GET /api/v1/dashboard/seasonal
func (h *DashboardHandler) GetSeasonal(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	response.Success(c, h.dashboardService.GetSeasonal(filter))
}

// GetUserSplit handles GET /api/v1/dashboard/user-split
func (h *DashboardHandler) GetUserSplit(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	response.Success(c, h.dashboardService.GetUserSplit(filter))
}
