package service

import (
	"github.com/urbanwheels/dashboard-go/internal/analysis"
	"github.com/urbanwheels/dashboard-go/internal/dataset"
	"github.com/urbanwheels/dashboard-go/internal/models"
)

// BehaviorService computes the user-behavior page aggregates
type BehaviorService struct {
	store *dataset.Store
}

// NewBehaviorService creates a new behavior service
func NewBehaviorService(store *dataset.Store) *BehaviorService {
	return &BehaviorService{store: store}
}

func (s *BehaviorService) filtered(filter models.RecordFilter) []models.Record {
	return dataset.Filter(s.store.Snapshot().Records, filter)
}

// GetSummary returns the rider-type KPIs
func (s *BehaviorService) GetSummary(filter models.RecordFilter) models.BehaviorSummary {
	return analysis.BehaviorSummarize(s.filtered(filter))
}

// GetHourly returns per-hour averages split by rider type
func (s *BehaviorService) GetHourly(filter models.RecordFilter) []models.HourlyPoint {
	return analysis.HourlyAverages(s.filtered(filter))
}

// GetDaily returns per-day rider totals for the trend chart
func (s *BehaviorService) GetDaily(filter models.RecordFilter) []models.DailyPoint {
	return analysis.DailyTrend(s.filtered(filter))
}
