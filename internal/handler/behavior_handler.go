package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/urbanwheels/dashboard-go/internal/service"
	"github.com/urbanwheels/dashboard-go/pkg/response"
)

// BehaviorHandler handles HTTP requests for the user-behavior page
type BehaviorHandler struct {
	behaviorService *service.BehaviorService
}

// NewBehaviorHandler creates a new behavior handler
func NewBehaviorHandler(behaviorService *service.BehaviorService) *BehaviorHandler {
	return &BehaviorHandler{behaviorService: behaviorService}
}

// GetSummary handles GET /api/v1/behavior/summary
func (h *BehaviorHandler) GetSummary(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	response.Success(c, h.behaviorService.GetSummary(filter))
}

// GetHourly handles GET /api/v1/behavior/hourly
func (h *BehaviorHandler) GetHourly(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	response.Success(c, h.behaviorService.GetHourly(filter))
}

// GetDaily handles GET /api/v1/behavior/daily
func (h *BehaviorHandler) GetDaily(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	response.Success(c, h.behaviorService.GetDaily(filter))
}
