package handler

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/urbanwheels/dashboard-go/internal/models"
	"github.com/urbanwheels/dashboard-go/internal/service"
	"github.com/urbanwheels/dashboard-go/pkg/response"
)

// RecordHandler handles HTTP requests for the data table, export and
// filter metadata
type RecordHandler struct {
	recordService *service.RecordService
}

// NewRecordHandler creates a new record handler
func NewRecordHandler(recordService *service.RecordService) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

// GetRecords handles GET /api/v1/records
func (h *RecordHandler) GetRecords(c *gin.Context) {
	var filter models.RecordPageFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	if _, _, err := filter.DateRange(); err != nil {
		response.BadRequest(c, "Invalid date parameter, expected YYYY-MM-DD")
		return
	}

	page, err := h.recordService.GetRecords(filter)
	if err != nil {
		log.Printf("get records: %v", err)
		response.InternalError(c, "Failed to query records")
		return
	}
	response.Success(c, page)
}

// Export handles GET /api/v1/records/export, streaming the filtered
// subset as an xlsx workbook
func (h *RecordHandler) Export(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	f, err := h.recordService.ExportXLSX(filter)
	if err != nil {
		log.Printf("export records: %v", err)
		response.InternalError(c, "Failed to build export")
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("urbanwheels-records-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		log.Printf("write export: %v", err)
	}
}

// GetFilterOptions handles GET /api/v1/meta/filters
func (h *RecordHandler) GetFilterOptions(c *gin.Context) {
	options, err := h.recordService.GetFilterOptions()
	if err != nil {
		log.Printf("filter options: %v", err)
		response.InternalError(c, "Failed to query filter options")
		return
	}
	response.Success(c, options)
}
