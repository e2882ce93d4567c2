package service

import (
	"github.com/urbanwheels/dashboard-go/internal/analysis"
	"github.com/urbanwheels/dashboard-go/internal/dataset"
	"github.com/urbanwheels/dashboard-go/internal/models"
)

// WeatherService computes the weather-impact page aggregates
type WeatherService struct {
	store *dataset.Store
}

// NewWeatherService creates a new weather service
func NewWeatherService(store *dataset.Store) *WeatherService {
	return &WeatherService{store: store}
}

func (s *WeatherService) filtered(filter models.RecordFilter) []models.Record {
	return dataset.Filter(s.store.Snapshot().Records, filter)
}

// GetSummary returns the weather KPIs in display units
func (s *WeatherService) GetSummary(filter models.RecordFilter) models.WeatherSummary {
	return analysis.WeatherSummarize(s.filtered(filter))
}

// GetDistribution returns ride-count distribution stats per weather category
func (s *WeatherService) GetDistribution(filter models.RecordFilter) []models.WeatherBucket {
	return analysis.WeatherDistribution(s.filtered(filter))
}

// GetCorrelation returns the weather/count correlation matrix
func (s *WeatherService) GetCorrelation(filter models.RecordFilter) models.CorrelationMatrix {
	return analysis.WeatherCorrelation(s.filtered(filter))
}
