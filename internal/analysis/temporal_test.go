package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanwheels/dashboard-go/internal/models"
)

func TestHourlyAverages(t *testing.T) {
	records := []models.Record{
		{Hour: 8, Count: 100, Casual: 20, Registered: 80},
		{Hour: 8, Count: 50, Casual: 10, Registered: 40},
		{Hour: 17, Count: 90, Casual: 30, Registered: 60},
	}

	points := HourlyAverages(records)
	require.Len(t, points, 2)

	assert.Equal(t, 8, points[0].Hour)
	assert.InDelta(t, 75.0, points[0].AvgCount, 1e-9)
	assert.InDelta(t, 15.0, points[0].AvgCasual, 1e-9)
	assert.InDelta(t, 60.0, points[0].AvgRegistered, 1e-9)

	assert.Equal(t, 17, points[1].Hour)
	assert.InDelta(t, 90.0, points[1].AvgCount, 1e-9)
}

func TestHourlyAveragesEmpty(t *testing.T) {
	assert.Empty(t, HourlyAverages(nil))
}

func TestTemporalSummarize(t *testing.T) {
	records := []models.Record{
		{Hour: 8, Count: 100},
		{Hour: 12, Count: 40},
		{Hour: 3, Count: 2},
	}

	summary := TemporalSummarize(records)
	assert.True(t, summary.HasData)
	assert.Equal(t, 8, summary.PeakHour)
	assert.Equal(t, 3, summary.LeastActiveHour)
	assert.Greater(t, summary.HourlyStdDev, 0.0)
}

func TestTemporalSummarizeEmpty(t *testing.T) {
	summary := TemporalSummarize(nil)
	assert.False(t, summary.HasData)
	assert.Equal(t, -1, summary.PeakHour)
	assert.Equal(t, -1, summary.LeastActiveHour)
	assert.Zero(t, summary.HourlyStdDev)
}

func TestWeekdayAveragesSplit(t *testing.T) {
	records := []models.Record{
		{Weekday: 1, WorkingDay: true, Count: 100},
		{Weekday: 1, WorkingDay: true, Count: 200},
		{Weekday: 0, WorkingDay: false, Count: 60},
	}

	split := WeekdayAverages(records)

	require.Len(t, split.Working, 1)
	assert.Equal(t, 1, split.Working[0].Weekday)
	assert.Equal(t, "Monday", split.Working[0].Name)
	assert.InDelta(t, 150.0, split.Working[0].AvgCount, 1e-9)

	require.Len(t, split.NonWorking, 1)
	assert.Equal(t, 0, split.NonWorking[0].Weekday)
	assert.InDelta(t, 60.0, split.NonWorking[0].AvgCount, 1e-9)
}

func TestHeatmap(t *testing.T) {
	records := []models.Record{
		{Weekday: 2, Hour: 8, Count: 10},
		{Weekday: 2, Hour: 8, Count: 30},
		{Weekday: 5, Hour: 17, Count: 80},
	}

	cells := Heatmap(records)
	require.Len(t, cells, 2)

	// ordered by weekday then hour
	assert.Equal(t, 2, cells[0].Weekday)
	assert.Equal(t, 8, cells[0].Hour)
	assert.InDelta(t, 20.0, cells[0].AvgCount, 1e-9)

	assert.Equal(t, 5, cells[1].Weekday)
	assert.Equal(t, 17, cells[1].Hour)
	assert.InDelta(t, 80.0, cells[1].AvgCount, 1e-9)
}
