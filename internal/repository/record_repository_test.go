package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanwheels/dashboard-go/internal/database"
	"github.com/urbanwheels/dashboard-go/internal/models"
)

func intPtr(v int) *int { return &v }

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func newTestRepo(t *testing.T) *RecordRepository {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRecordRepository(db)
}

func seedRecords() []models.Record {
	return []models.Record{
		{Date: date("2011-01-01"), Year: 2011, Month: 1, Hour: 0, Season: models.SeasonSpring, Weekday: 6, Weather: models.WeatherClear, Temp: 0.24, FeelsTemp: 0.28, Humidity: 0.81, Casual: 3, Registered: 13, Count: 16},
		{Date: date("2011-01-01"), Year: 2011, Month: 1, Hour: 8, Season: models.SeasonSpring, Weekday: 6, Weather: models.WeatherMisty, Temp: 0.22, FeelsTemp: 0.27, Humidity: 0.80, Casual: 8, Registered: 32, Count: 40},
		{Date: date("2012-07-04"), Year: 2012, Month: 7, Hour: 17, Season: models.SeasonFall, Weekday: 3, WorkingDay: true, Weather: models.WeatherClear, Temp: 0.70, FeelsTemp: 0.64, Humidity: 0.55, Windspeed: 0.19, Casual: 45, Registered: 80, Count: 125},
	}
}

func TestReplaceAllAndGetRecords(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.ReplaceAll(seedRecords()))

	page, total, err := repo.GetRecords(models.RecordPageFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 3)

	// source order preserved
	assert.Equal(t, 0, page[0].Hour)
	assert.Equal(t, 8, page[1].Hour)
	assert.Equal(t, 17, page[2].Hour)

	// round trip of every field
	assert.Equal(t, date("2012-07-04"), page[2].Date)
	assert.Equal(t, models.SeasonFall, page[2].Season)
	assert.Equal(t, models.WeatherClear, page[2].Weather)
	assert.True(t, page[2].WorkingDay)
	assert.InDelta(t, 0.70, page[2].Temp, 1e-9)
	assert.Equal(t, 125, page[2].Count)
}

func TestReplaceAllIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.ReplaceAll(seedRecords()))
	require.NoError(t, repo.ReplaceAll(seedRecords()))

	_, total, err := repo.GetRecords(models.RecordPageFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestGetRecordsFiltering(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.ReplaceAll(seedRecords()))

	page, total, err := repo.GetRecords(models.RecordPageFilter{
		RecordFilter: models.RecordFilter{Years: []int{2012}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, page, 1)
	assert.Equal(t, 2012, page[0].Year)

	_, total, err = repo.GetRecords(models.RecordPageFilter{
		RecordFilter: models.RecordFilter{HourMin: intPtr(1), HourMax: intPtr(9)},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	// inverted hour range matches nothing
	_, total, err = repo.GetRecords(models.RecordPageFilter{
		RecordFilter: models.RecordFilter{HourMin: intPtr(12), HourMax: intPtr(5)},
	})
	require.NoError(t, err)
	assert.Zero(t, total)

	_, total, err = repo.GetRecords(models.RecordPageFilter{
		RecordFilter: models.RecordFilter{WorkingDay: models.WorkingDayOnly},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	_, total, err = repo.GetRecords(models.RecordPageFilter{
		RecordFilter: models.RecordFilter{StartDate: "2011-01-01", EndDate: "2011-12-31"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestGetRecordsPagination(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.ReplaceAll(seedRecords()))

	page, total, err := repo.GetRecords(models.RecordPageFilter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 1)
	assert.Equal(t, 17, page[0].Hour)
}

func TestGetRecordsInvalidDateFilter(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.ReplaceAll(seedRecords()))

	_, _, err := repo.GetRecords(models.RecordPageFilter{
		RecordFilter: models.RecordFilter{StartDate: "01/02/2011"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date filter")
}

func TestGetYearsAndDateRange(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.ReplaceAll(seedRecords()))

	years, err := repo.GetYears()
	require.NoError(t, err)
	assert.Equal(t, []int{2011, 2012}, years)

	min, max, err := repo.GetDateRange()
	require.NoError(t, err)
	assert.Equal(t, "2011-01-01", min)
	assert.Equal(t, "2012-07-04", max)
}

func TestEmptyMirror(t *testing.T) {
	repo := newTestRepo(t)

	page, total, err := repo.GetRecords(models.RecordPageFilter{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, page)

	years, err := repo.GetYears()
	require.NoError(t, err)
	assert.Empty(t, years)

	min, max, err := repo.GetDateRange()
	require.NoError(t, err)
	assert.Empty(t, min)
	assert.Empty(t, max)
}
