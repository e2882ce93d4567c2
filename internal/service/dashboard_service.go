package service

import (
	"github.com/urbanwheels/dashboard-go/internal/analysis"
	"github.com/urbanwheels/dashboard-go/internal/dataset"
	"github.com/urbanwheels/dashboard-go/internal/models"
)

// DashboardService computes the overview-page aggregates. Every call
// re-filters the current snapshot; nothing is cached between requests.
type DashboardService struct {
	store *dataset.Store
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(store *dataset.Store) *DashboardService {
	return &DashboardService{store: store}
}

func (s *DashboardService) filtered(filter models.RecordFilter) []models.Record {
	return dataset.Filter(s.store.Snapshot().Records, filter)
}

// GetSummary returns the overview KPIs for the filtered subset
func (s *DashboardService) GetSummary(filter models.RecordFilter) models.Summary {
	return analysis.Summarize(s.filtered(filter))
}

// GetHourly returns average counts per hour for the line chart
func (s *DashboardService) GetHourly(filter models.RecordFilter) []models.HourlyPoint {
	return analysis.HourlyAverages(s.filtered(filter))
}

// GetSeasonal returns per-season rider totals for the bar chart
func (s *DashboardService) GetSeasonal(filter models.RecordFilter) []models.SeasonPoint {
	return analysis.SeasonalTotals(s.filtered(filter))
}

// GetUserSplit returns overall rider-type totals for the donut chart
func (s *DashboardService) GetUserSplit(filter models.RecordFilter) models.UserSplit {
	return analysis.RiderSplit(s.filtered(filter))
}
