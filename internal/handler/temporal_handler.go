package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/urbanwheels/dashboard-go/internal/service"
	"github.com/urbanwheels/dashboard-go/pkg/response"
)

// TemporalHandler handles HTTP requests for the temporal-analysis page
type TemporalHandler struct {
	temporalService *service.TemporalService
}

// NewTemporalHandler creates a new temporal handler
func NewTemporalHandler(temporalService *service.TemporalService) *TemporalHandler {
	return &TemporalHandler{temporalService: temporalService}
}

// GetSummary handles GET /api/v1/temporal/summary
func (h *TemporalHandler) GetSummary(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	response.Success(c, h.temporalService.GetSummary(filter))
}

// GetHourly handles GET /api/v1/temporal/hourly
func (h *TemporalHandler) GetHourly(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	response.Success(c, h.temporalService.GetHourly(filter))
}

// GetWeekday handles GET /api/v1/temporal/weekday
func (h *TemporalHandler) GetWeekday(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	response.Success(c, h.temporalService.GetWeekday(filter))
}

// GetHeatmap handles GET /api/v1/temporal/heatmap
func (h *TemporalHandler) GetHeatmap(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	response.Success(c, h.temporalService.GetHeatmap(filter))
}
