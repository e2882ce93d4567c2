package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/urbanwheels/dashboard-go/internal/service"
	"github.com/urbanwheels/dashboard-go/pkg/response"
)

// WeatherHandler handles HTTP requests for the weather-impact page
type WeatherHandler struct {
	weatherService *service.WeatherService
}

// NewWeatherHandler creates a new weather handler
func NewWeatherHandler(weatherService *service.WeatherService) *WeatherHandler {
	return &WeatherHandler{weatherService: weatherService}
}

// GetSummary handles GET /api/v1/weather/summary
func (h *WeatherHandler) GetSummary(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	response.Success(c, h.weatherService.GetSummary(filter))
}

// GetDistribution handles GET /api/v1/weather/distribution
func (h *WeatherHandler) GetDistribution(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	response.Success(c, h.weatherService.GetDistribution(filter))
}

// GetCorrelation handles GET /api/v1/weather/correlation
func (h *WeatherHandler) GetCorrelation(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	response.Success(c, h.weatherService.GetCorrelation(filter))
}
