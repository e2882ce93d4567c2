package ingest

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/urbanwheels/dashboard-go/internal/models"
)

// requiredColumns are the dataset columns the dashboard depends on.
// Loading fails if any of them is missing from the header.
var requiredColumns = []string{
	"dteday", "season", "yr", "mnth", "hr", "holiday", "weekday",
	"workingday", "weathersit", "temp", "atemp", "hum", "windspeed",
	"casual", "registered", "cnt",
}

var columnTypes = map[string]series.Type{
	"dteday":     series.String,
	"season":     series.Int,
	"yr":         series.Int,
	"mnth":       series.Int,
	"hr":         series.Int,
	"holiday":    series.Int,
	"weekday":    series.Int,
	"workingday": series.Int,
	"weathersit": series.Int,
	"temp":       series.Float,
	"atemp":      series.Float,
	"hum":        series.Float,
	"windspeed":  series.Float,
	"casual":     series.Int,
	"registered": series.Int,
	"cnt":        series.Int,
}

// LoadCSV reads the hourly dataset from path. Any failure (missing
// file, missing column, malformed row) is a load error; the caller
// treats it as fatal at startup.
func LoadCSV(path string) ([]models.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", path, err)
	}
	return records, nil
}

// Parse reads the hourly dataset from r, validates the header and
// coerces every row into a Record. Row order is preserved.
func Parse(r io.Reader) ([]models.Record, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.WithTypes(columnTypes),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("parse csv: %w", df.Err)
	}

	present := make(map[string]bool, len(df.Names()))
	for _, name := range df.Names() {
		present[name] = true
	}
	for _, name := range requiredColumns {
		if !present[name] {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}

	cols := make(map[string]series.Series, len(requiredColumns))
	for _, name := range requiredColumns {
		cols[name] = df.Col(name)
	}

	records := make([]models.Record, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		rec, err := buildRecord(cols, i)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func buildRecord(cols map[string]series.Series, i int) (models.Record, error) {
	var rec models.Record

	date, err := time.Parse("2006-01-02", cols["dteday"].Elem(i).String())
	if err != nil {
		return rec, fmt.Errorf("invalid dteday: %w", err)
	}
	rec.Date = date
	rec.Year = date.Year()

	intFields := []struct {
		col string
		dst *int
	}{
		{"hr", &rec.Hour},
		{"mnth", &rec.Month},
		{"casual", &rec.Casual},
		{"registered", &rec.Registered},
		{"cnt", &rec.Count},
	}
	for _, f := range intFields {
		v, err := cols[f.col].Elem(i).Int()
		if err != nil {
			return rec, fmt.Errorf("invalid %s: %w", f.col, err)
		}
		*f.dst = v
	}

	season, err := cols["season"].Elem(i).Int()
	if err != nil {
		return rec, fmt.Errorf("invalid season: %w", err)
	}
	rec.Season = models.Season(season)

	weather, err := cols["weathersit"].Elem(i).Int()
	if err != nil {
		return rec, fmt.Errorf("invalid weathersit: %w", err)
	}
	rec.Weather = models.Weather(weather)

	weekday, err := cols["weekday"].Elem(i).Int()
	if err != nil {
		return rec, fmt.Errorf("invalid weekday: %w", err)
	}
	rec.Weekday = weekday

	holiday, err := cols["holiday"].Elem(i).Int()
	if err != nil {
		return rec, fmt.Errorf("invalid holiday: %w", err)
	}
	rec.Holiday = holiday != 0

	workingDay, err := cols["workingday"].Elem(i).Int()
	if err != nil {
		return rec, fmt.Errorf("invalid workingday: %w", err)
	}
	rec.WorkingDay = workingDay != 0

	rec.Temp = cols["temp"].Elem(i).Float()
	rec.FeelsTemp = cols["atemp"].Elem(i).Float()
	rec.Humidity = cols["hum"].Elem(i).Float()
	rec.Windspeed = cols["windspeed"].Elem(i).Float()

	if err := validate(rec); err != nil {
		return rec, err
	}
	return rec, nil
}

func validate(rec models.Record) error {
	if rec.Hour < 0 || rec.Hour > 23 {
		return fmt.Errorf("hour %d out of range", rec.Hour)
	}
	if rec.Count < 0 || rec.Casual < 0 || rec.Registered < 0 {
		return fmt.Errorf("negative ride count")
	}
	if !rec.Season.Valid() {
		return fmt.Errorf("unknown season code %d", rec.Season)
	}
	if !rec.Weather.Valid() {
		return fmt.Errorf("unknown weather code %d", rec.Weather)
	}
	if rec.Weekday < 0 || rec.Weekday > 6 {
		return fmt.Errorf("weekday %d out of range", rec.Weekday)
	}
	return nil
}
