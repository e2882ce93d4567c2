package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanwheels/dashboard-go/internal/models"
)

func TestSummarizeBasicScenario(t *testing.T) {
	// (hour=5,count=10), (hour=5,count=20), (hour=6,count=5)
	records := []models.Record{
		{Hour: 5, Weekday: 1, Count: 10, Casual: 4, Registered: 6},
		{Hour: 5, Weekday: 2, Count: 20, Casual: 5, Registered: 15},
		{Hour: 6, Weekday: 2, Count: 5, Casual: 1, Registered: 4},
	}

	summary := Summarize(records)

	assert.True(t, summary.HasData)
	assert.Equal(t, 35, summary.TotalRides)
	assert.Equal(t, 5, summary.PeakHour) // 30 at hour 5 beats 5 at hour 6
	require.NotNil(t, summary.AvgRidesPerHour)
	assert.InDelta(t, 35.0/3.0, *summary.AvgRidesPerHour, 1e-9)
	assert.Equal(t, 2, summary.MostActiveDay) // 25 on Tuesday beats 10 on Monday
	assert.Equal(t, "Tuesday", summary.MostActiveDayName)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)

	assert.False(t, summary.HasData)
	assert.Equal(t, 0, summary.TotalRides)
	assert.Nil(t, summary.AvgRidesPerHour)
	assert.Equal(t, -1, summary.PeakHour)
	assert.Equal(t, -1, summary.MostActiveDay)
	assert.Nil(t, summary.RegisteredPct)
	assert.Nil(t, summary.CasualPct)
}

func TestSummarizePeakHourTieBreak(t *testing.T) {
	// hours 7 and 9 both sum to 30; the smaller hour wins
	records := []models.Record{
		{Hour: 9, Weekday: 0, Count: 30},
		{Hour: 7, Weekday: 0, Count: 10},
		{Hour: 7, Weekday: 0, Count: 20},
	}
	assert.Equal(t, 7, Summarize(records).PeakHour)
}

func TestSummarizeMostActiveDayTieBreak(t *testing.T) {
	// Sunday (0) and Saturday (6) both sum to 50; earliest index wins
	records := []models.Record{
		{Hour: 10, Weekday: 6, Count: 50},
		{Hour: 10, Weekday: 0, Count: 50},
	}
	summary := Summarize(records)
	assert.Equal(t, 0, summary.MostActiveDay)
	assert.Equal(t, "Sunday", summary.MostActiveDayName)
}

func TestSummarizePeakHourOnlyConsidersPresentHours(t *testing.T) {
	// all counts zero: peak is still an hour that occurs in the subset
	records := []models.Record{
		{Hour: 11, Weekday: 4, Count: 0},
		{Hour: 10, Weekday: 4, Count: 0},
	}
	assert.Equal(t, 10, Summarize(records).PeakHour)
}

func TestSummarizeAvgTimesCountEqualsTotal(t *testing.T) {
	records := []models.Record{
		{Hour: 1, Weekday: 1, Count: 13},
		{Hour: 2, Weekday: 2, Count: 7},
		{Hour: 3, Weekday: 3, Count: 29},
		{Hour: 4, Weekday: 4, Count: 11},
	}
	summary := Summarize(records)
	require.NotNil(t, summary.AvgRidesPerHour)
	assert.InDelta(t, float64(summary.TotalRides),
		*summary.AvgRidesPerHour*float64(len(records)), 1e-9)
}

func TestSummarizeRiderPercentages(t *testing.T) {
	records := []models.Record{
		{Hour: 8, Weekday: 1, Count: 100, Casual: 25, Registered: 75},
	}
	summary := Summarize(records)
	require.NotNil(t, summary.RegisteredPct)
	require.NotNil(t, summary.CasualPct)
	assert.InDelta(t, 75.0, *summary.RegisteredPct, 1e-9)
	assert.InDelta(t, 25.0, *summary.CasualPct, 1e-9)
}
