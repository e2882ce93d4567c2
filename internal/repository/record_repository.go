package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/urbanwheels/dashboard-go/internal/database"
	"github.com/urbanwheels/dashboard-go/internal/models"
)

const dateLayout = "2006-01-02"

// RecordRepository handles database operations for the hourly-record
// mirror. The mirror is rebuilt whenever the dataset is (re)ingested
// and serves the paged data-table queries.
type RecordRepository struct {
	db *sql.DB
}

// NewRecordRepository creates a new record repository
func NewRecordRepository(db *sql.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// ReplaceAll rebuilds the mirror from a freshly loaded snapshot inside
// a single transaction, preserving source order.
func (r *RecordRepository) ReplaceAll(records []models.Record) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM hourly_records"); err != nil {
			return fmt.Errorf("clear records: %w", err)
		}

		stmt, err := tx.Prepare(`
			INSERT INTO hourly_records
				(date, hour, year, month, season, holiday, weekday, working_day,
				 weather, temp, feels_temp, humidity, windspeed, casual, registered, count)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("prepare insert: %w", err)
		}
		defer stmt.Close()

		for _, rec := range records {
			_, err := stmt.Exec(
				rec.Date.Format(dateLayout), rec.Hour, rec.Year, rec.Month,
				int(rec.Season), boolToInt(rec.Holiday), rec.Weekday,
				boolToInt(rec.WorkingDay), int(rec.Weather),
				rec.Temp, rec.FeelsTemp, rec.Humidity, rec.Windspeed,
				rec.Casual, rec.Registered, rec.Count,
			)
			if err != nil {
				return fmt.Errorf("insert record: %w", err)
			}
		}
		return nil
	})
}

// GetRecords retrieves records matching the filter with pagination,
// in source (id) order.
func (r *RecordRepository) GetRecords(filter models.RecordPageFilter) ([]models.Record, int64, error) {
	conditions, args, err := buildConditions(filter.RecordFilter)
	if err != nil {
		return nil, 0, err
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM hourly_records"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count records: %w", err)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	if filter.PageSize > 1000 {
		filter.PageSize = 1000
	}
	offset := (filter.Page - 1) * filter.PageSize

	query := `SELECT date, hour, year, month, season, holiday, weekday, working_day,
		weather, temp, feels_temp, humidity, windspeed, casual, registered, count
		FROM hourly_records` + where + " ORDER BY id LIMIT ? OFFSET ?"
	args = append(args, filter.PageSize, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []models.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate records: %w", err)
	}

	return records, total, nil
}

// GetYears returns the distinct calendar years in the mirror, ascending
func (r *RecordRepository) GetYears() ([]int, error) {
	rows, err := r.db.Query("SELECT DISTINCT year FROM hourly_records ORDER BY year")
	if err != nil {
		return nil, fmt.Errorf("query years: %w", err)
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, fmt.Errorf("scan year: %w", err)
		}
		years = append(years, year)
	}
	return years, rows.Err()
}

// GetDateRange returns the earliest and latest record dates as
// YYYY-MM-DD strings; empty strings for an empty mirror.
func (r *RecordRepository) GetDateRange() (string, string, error) {
	var min, max sql.NullString
	err := r.db.QueryRow("SELECT MIN(date), MAX(date) FROM hourly_records").Scan(&min, &max)
	if err != nil {
		return "", "", fmt.Errorf("query date range: %w", err)
	}
	return min.String, max.String, nil
}

func buildConditions(filter models.RecordFilter) ([]string, []interface{}, error) {
	var conditions []string
	var args []interface{}

	hourMin, hourMax := filter.HourRange()
	if hourMin > 0 {
		conditions = append(conditions, "hour >= ?")
		args = append(args, hourMin)
	}
	if hourMax < 23 {
		conditions = append(conditions, "hour <= ?")
		args = append(args, hourMax)
	}
	if hourMin > hourMax {
		// empty range: no row can satisfy both bounds, but make the
		// intent explicit instead of relying on the pair above
		conditions = append(conditions, "1 = 0")
	}

	appendIn := func(column string, values []int) {
		if len(values) == 0 {
			return
		}
		placeholders := make([]string, len(values))
		for i, v := range values {
			placeholders[i] = "?"
			args = append(args, v)
		}
		conditions = append(conditions, fmt.Sprintf("%s IN (%s)", column, strings.Join(placeholders, ",")))
	}
	appendIn("year", filter.Years)
	appendIn("season", filter.Seasons)
	appendIn("weather", filter.Weathers)
	appendIn("weekday", filter.Weekdays)

	switch filter.WorkingDay {
	case models.WorkingDayOnly:
		conditions = append(conditions, "working_day = 1")
	case models.WorkingDayRestDay:
		conditions = append(conditions, "working_day = 0")
	}

	start, end, err := filter.DateRange()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid date filter: %w", err)
	}
	if start != nil {
		conditions = append(conditions, "date >= ?")
		args = append(args, start.Format(dateLayout))
	}
	if end != nil {
		conditions = append(conditions, "date <= ?")
		args = append(args, end.Format(dateLayout))
	}

	return conditions, args, nil
}

func scanRecord(rows *sql.Rows) (models.Record, error) {
	var rec models.Record
	var date string
	var season, holiday, workingDay, weather int
	err := rows.Scan(
		&date, &rec.Hour, &rec.Year, &rec.Month, &season, &holiday,
		&rec.Weekday, &workingDay, &weather,
		&rec.Temp, &rec.FeelsTemp, &rec.Humidity, &rec.Windspeed,
		&rec.Casual, &rec.Registered, &rec.Count,
	)
	if err != nil {
		return rec, fmt.Errorf("scan record: %w", err)
	}

	rec.Date, err = time.Parse(dateLayout, date)
	if err != nil {
		return rec, fmt.Errorf("parse record date: %w", err)
	}
	rec.Season = models.Season(season)
	rec.Weather = models.Weather(weather)
	rec.Holiday = holiday != 0
	rec.WorkingDay = workingDay != 0
	return rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
