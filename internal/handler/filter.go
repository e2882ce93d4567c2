package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/urbanwheels/dashboard-go/internal/models"
	"github.com/urbanwheels/dashboard-go/pkg/response"
)

// bindFilter binds the shared sidebar filter from the query string.
// Returns false after replying 400 on malformed parameters; an empty
// hour range (hourMin > hourMax) is NOT an error, it just yields an
// empty subset downstream.
func bindFilter(c *gin.Context) (models.RecordFilter, bool) {
	var filter models.RecordFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return filter, false
	}
	if _, _, err := filter.DateRange(); err != nil {
		response.BadRequest(c, "Invalid date parameter, expected YYYY-MM-DD")
		return filter, false
	}
	return filter, true
}
