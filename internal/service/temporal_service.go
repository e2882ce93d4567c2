package service

import (
	"github.com/urbanwheels/dashboard-go/internal/analysis"
	"github.com/urbanwheels/dashboard-go/internal/dataset"
	"github.com/urbanwheels/dashboard-go/internal/models"
)

// TemporalService computes the temporal-analysis page aggregates
type TemporalService struct {
	store *dataset.Store
}

// NewTemporalService creates a new temporal service
func NewTemporalService(store *dataset.Store) *TemporalService {
	return &TemporalService{store: store}
}

func (s *TemporalService) filtered(filter models.RecordFilter) []models.Record {
	return dataset.Filter(s.store.Snapshot().Records, filter)
}

// GetSummary returns peak/least-active hour and hourly variability
func (s *TemporalService) GetSummary(filter models.RecordFilter) models.TemporalSummary {
	return analysis.TemporalSummarize(s.filtered(filter))
}

// GetHourly returns per-hour averages split by rider type
func (s *TemporalService) GetHourly(filter models.RecordFilter) []models.HourlyPoint {
	return analysis.HourlyAverages(s.filtered(filter))
}

// GetWeekday returns weekday averages split working vs non-working
func (s *TemporalService) GetWeekday(filter models.RecordFilter) models.WeekdaySplit {
	return analysis.WeekdayAverages(s.filtered(filter))
}

// GetHeatmap returns the hour-by-weekday demand heatmap
func (s *TemporalService) GetHeatmap(filter models.RecordFilter) []models.HeatmapCell {
	return analysis.Heatmap(s.filtered(filter))
}
