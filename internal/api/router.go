package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/urbanwheels/dashboard-go/internal/config"
	"github.com/urbanwheels/dashboard-go/internal/handler"
	"github.com/urbanwheels/dashboard-go/internal/metrics"
	"github.com/urbanwheels/dashboard-go/internal/middleware"
)

// Handlers bundles everything the router mounts
type Handlers struct {
	Records   *handler.RecordHandler
	Dashboard *handler.DashboardHandler
	Temporal  *handler.TemporalHandler
	Weather   *handler.WeatherHandler
	Behavior  *handler.BehaviorHandler
	Metrics   *metrics.Recorder
}

// SetupRouter builds the gin engine with middleware and all routes
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(h.Metrics.Middleware())
	r.Use(middleware.RateLimit(cfg.RateLimit, time.Duration(cfg.RateWindowSec)*time.Second))

	// CORS for the dashboard front end
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "UrbanWheels dashboard API is running",
		})
	})

	r.GET("/metrics", h.Metrics.Handler())

	api := r.Group("/api/v1")
	{
		records := api.Group("/records")
		{
			records.GET("", h.Records.GetRecords)
			records.GET("/export", h.Records.Export)
		}

		meta := api.Group("/meta")
		{
			meta.GET("/filters", h.Records.GetFilterOptions)
		}

		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/summary", h.Dashboard.GetSummary)
			dashboard.GET("/hourly", h.Dashboard.GetHourly)
			dashboard.GET("/seasonal", h.Dashboard.GetSeasonal)
			dashboard.GET("/user-split", h.Dashboard.GetUserSplit)
		}

		temporal := api.Group("/temporal")
		{
			temporal.GET("/summary", h.Temporal.GetSummary)
			temporal.GET("/hourly", h.Temporal.GetHourly)
			temporal.GET("/weekday", h.Temporal.GetWeekday)
			temporal.GET("/heatmap", h.Temporal.GetHeatmap)
		}

		weather := api.Group("/weather")
		{
			weather.GET("/summary", h.Weather.GetSummary)
			weather.GET("/distribution", h.Weather.GetDistribution)
			weather.GET("/correlation", h.Weather.GetCorrelation)
		}

		behavior := api.Group("/behavior")
		{
			behavior.GET("/summary", h.Behavior.GetSummary)
			behavior.GET("/hourly", h.Behavior.GetHourly)
			behavior.GET("/daily", h.Behavior.GetDaily)
		}
	}

	return r
}
