package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanwheels/dashboard-go/internal/models"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestBehaviorSummarize(t *testing.T) {
	records := []models.Record{
		{Casual: 20, Registered: 60},
		{Casual: 5, Registered: 15},
	}

	summary := BehaviorSummarize(records)
	assert.True(t, summary.HasData)
	assert.Equal(t, 25, summary.TotalCasual)
	assert.Equal(t, 75, summary.TotalRegistered)
	require.NotNil(t, summary.RegisteredPct)
	assert.InDelta(t, 75.0, *summary.RegisteredPct, 1e-9)
	require.NotNil(t, summary.RegCasualRatio)
	assert.InDelta(t, 3.0, *summary.RegCasualRatio, 1e-9)
}

func TestBehaviorSummarizeNoCasualRides(t *testing.T) {
	records := []models.Record{
		{Casual: 0, Registered: 40},
	}
	summary := BehaviorSummarize(records)
	assert.Nil(t, summary.RegCasualRatio)
	require.NotNil(t, summary.RegisteredPct)
	assert.InDelta(t, 100.0, *summary.RegisteredPct, 1e-9)
}

func TestBehaviorSummarizeEmpty(t *testing.T) {
	summary := BehaviorSummarize(nil)
	assert.False(t, summary.HasData)
	assert.Nil(t, summary.RegisteredPct)
	assert.Nil(t, summary.RegCasualRatio)
}

func TestSeasonalTotals(t *testing.T) {
	records := []models.Record{
		{Season: models.SeasonFall, Casual: 10, Registered: 30},
		{Season: models.SeasonSpring, Casual: 5, Registered: 10},
		{Season: models.SeasonFall, Casual: 20, Registered: 40},
	}

	points := SeasonalTotals(records)
	require.Len(t, points, 2)

	// season code order: Spring before Fall
	assert.Equal(t, models.SeasonSpring, points[0].Season)
	assert.Equal(t, 15, points[0].Total)

	assert.Equal(t, models.SeasonFall, points[1].Season)
	assert.Equal(t, 30, points[1].Casual)
	assert.Equal(t, 70, points[1].Registered)
	assert.Equal(t, 100, points[1].Total)
}

func TestRiderSplit(t *testing.T) {
	records := []models.Record{
		{Casual: 3, Registered: 7},
		{Casual: 2, Registered: 8},
	}
	split := RiderSplit(records)
	assert.Equal(t, 5, split.Casual)
	assert.Equal(t, 15, split.Registered)
	assert.Equal(t, 20, split.Total)
}

func TestDailyTrendOrderedByDate(t *testing.T) {
	records := []models.Record{
		{Date: day("2011-03-02"), Casual: 4, Registered: 6},
		{Date: day("2011-03-01"), Casual: 1, Registered: 9},
		{Date: day("2011-03-02"), Casual: 6, Registered: 14},
	}

	points := DailyTrend(records)
	require.Len(t, points, 2)

	assert.Equal(t, "2011-03-01", points[0].Date)
	assert.Equal(t, 10, points[0].Total)

	assert.Equal(t, "2011-03-02", points[1].Date)
	assert.Equal(t, 10, points[1].Casual)
	assert.Equal(t, 20, points[1].Registered)
	assert.Equal(t, 30, points[1].Total)
}
