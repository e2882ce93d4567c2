package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanwheels/dashboard-go/internal/models"
)

func TestWeatherSummarize(t *testing.T) {
	records := []models.Record{
		{Temp: 0.5, Humidity: 0.6, Windspeed: 0.2},
		{Temp: 0.3, Humidity: 0.8, Windspeed: 0.5},
	}

	summary := WeatherSummarize(records)
	assert.True(t, summary.HasData)
	assert.InDelta(t, 0.4*41, summary.AvgTempC, 1e-9)
	assert.InDelta(t, 70.0, summary.AvgHumidity, 1e-9)
	assert.InDelta(t, 0.5, summary.MaxWindspeed, 1e-9)
}

func TestWeatherSummarizeEmpty(t *testing.T) {
	summary := WeatherSummarize(nil)
	assert.False(t, summary.HasData)
	assert.Zero(t, summary.AvgTempC)
}

func TestWeatherDistribution(t *testing.T) {
	records := []models.Record{
		{Weather: models.WeatherClear, Count: 10},
		{Weather: models.WeatherClear, Count: 20},
		{Weather: models.WeatherClear, Count: 30},
		{Weather: models.WeatherHeavyWet, Count: 2},
	}

	buckets := WeatherDistribution(records)
	require.Len(t, buckets, 2)

	// dataset code order: Clear before Heavy Rain/Snow
	clear := buckets[0]
	assert.Equal(t, models.WeatherClear, clear.Weather)
	assert.Equal(t, 3, clear.Records)
	assert.InDelta(t, 20.0, clear.Mean, 1e-9)
	assert.InDelta(t, 20.0, clear.Median, 1e-9)
	assert.InDelta(t, 15.0, clear.Q1, 1e-9)
	assert.InDelta(t, 25.0, clear.Q3, 1e-9)
	assert.InDelta(t, 10.0, clear.Min, 1e-9)
	assert.InDelta(t, 30.0, clear.Max, 1e-9)

	heavy := buckets[1]
	assert.Equal(t, models.WeatherHeavyWet, heavy.Weather)
	assert.Equal(t, 1, heavy.Records)
}

func TestWeatherCorrelation(t *testing.T) {
	// count rises with temperature, falls with humidity
	records := []models.Record{
		{Temp: 0.1, FeelsTemp: 0.1, Humidity: 0.9, Windspeed: 0.1, Count: 10},
		{Temp: 0.4, FeelsTemp: 0.4, Humidity: 0.6, Windspeed: 0.3, Count: 50},
		{Temp: 0.7, FeelsTemp: 0.7, Humidity: 0.4, Windspeed: 0.2, Count: 110},
		{Temp: 0.9, FeelsTemp: 0.8, Humidity: 0.2, Windspeed: 0.4, Count: 160},
	}

	matrix := WeatherCorrelation(records)
	require.Equal(t, []string{"temp", "atemp", "hum", "windspeed", "cnt"}, matrix.Columns)
	require.Len(t, matrix.Values, 5)

	for i := range matrix.Values {
		assert.InDelta(t, 1.0, matrix.Values[i][i], 1e-9)
	}

	tempCnt := matrix.Values[0][4]
	assert.Greater(t, tempCnt, 0.9)
	humCnt := matrix.Values[2][4]
	assert.Less(t, humCnt, -0.9)

	// symmetric
	assert.InDelta(t, matrix.Values[0][4], matrix.Values[4][0], 1e-12)
}

func TestWeatherCorrelationEmpty(t *testing.T) {
	matrix := WeatherCorrelation(nil)
	require.Len(t, matrix.Values, 5)
	// off-diagonals are zero when there is nothing to correlate
	assert.Zero(t, matrix.Values[0][4])
	assert.InDelta(t, 1.0, matrix.Values[0][0], 1e-9)
}
