package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/urbanwheels/dashboard-go/internal/dataset"
	"github.com/urbanwheels/dashboard-go/internal/models"
	"github.com/urbanwheels/dashboard-go/internal/repository"
)

// RecordService handles the data-table and export queries
type RecordService struct {
	store *dataset.Store
	repo  *repository.RecordRepository
}

// NewRecordService creates a new record service
func NewRecordService(store *dataset.Store, repo *repository.RecordRepository) *RecordService {
	return &RecordService{store: store, repo: repo}
}

// GetRecords returns one page of filtered records from the sqlite mirror
func (s *RecordService) GetRecords(filter models.RecordPageFilter) (models.RecordPage, error) {
	records, total, err := s.repo.GetRecords(filter)
	if err != nil {
		return models.RecordPage{}, fmt.Errorf("get records: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 100
	}
	if pageSize > 1000 {
		pageSize = 1000
	}

	if records == nil {
		records = []models.Record{}
	}
	return models.RecordPage{
		Records:  records,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

var exportHeader = []string{
	"date", "hour", "season", "weekday", "weather",
	"temp_c", "humidity_pct", "windspeed", "casual", "registered", "count",
}

// ExportXLSX renders the filtered subset as an xlsx workbook for
// download. The caller owns closing the returned file.
func (s *RecordService) ExportXLSX(filter models.RecordFilter) (*excelize.File, error) {
	records := dataset.Filter(s.store.Snapshot().Records, filter)

	f := excelize.NewFile()
	sheet := "Records"
	f.SetSheetName("Sheet1", sheet)

	for i, name := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			f.Close()
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for rowIdx, rec := range records {
		values := []interface{}{
			rec.Date.Format("2006-01-02"), rec.Hour, rec.Season.String(),
			models.WeekdayName(rec.Weekday), rec.Weather.String(),
			rec.TempCelsius(), rec.HumidityPercent(), rec.Windspeed,
			rec.Casual, rec.Registered, rec.Count,
		}
		for colIdx, val := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				f.Close()
				return nil, fmt.Errorf("write row %d: %w", rowIdx+1, err)
			}
		}
	}

	return f, nil
}

// GetFilterOptions returns the selectable filter values for the sidebar
func (s *RecordService) GetFilterOptions() (models.FilterOptions, error) {
	years, err := s.repo.GetYears()
	if err != nil {
		return models.FilterOptions{}, fmt.Errorf("get filter options: %w", err)
	}
	minDate, maxDate, err := s.repo.GetDateRange()
	if err != nil {
		return models.FilterOptions{}, fmt.Errorf("get filter options: %w", err)
	}

	options := models.FilterOptions{
		Years:   years,
		MinDate: minDate,
		MaxDate: maxDate,
	}
	for _, season := range models.Seasons() {
		options.Seasons = append(options.Seasons, models.OptionLabel{
			Code: int(season), Label: season.String(),
		})
	}
	for _, weather := range models.Weathers() {
		options.Weathers = append(options.Weathers, models.OptionLabel{
			Code: int(weather), Label: weather.String(),
		})
	}
	for weekday, name := range models.WeekdayNames {
		options.Weekdays = append(options.Weekdays, models.OptionLabel{
			Code: weekday, Label: name,
		})
	}
	return options, nil
}
