package dataset

import (
	"time"

	"github.com/urbanwheels/dashboard-go/internal/models"
)

// Filter applies the sidebar constraints to a record slice and returns
// the matching subsequence in its original order. An empty result is a
// valid outcome, not an error. The input is never modified.
//
// Semantics: hour within the inclusive range (hourMin > hourMax yields
// an empty result), membership in each non-empty set, and the optional
// working-day / date-range constraints. Empty sets leave their column
// unconstrained; codes that never occur in the data simply match
// nothing.
func Filter(records []models.Record, f models.RecordFilter) []models.Record {
	hourMin, hourMax := f.HourRange()
	if hourMin > hourMax {
		return []models.Record{}
	}

	start, end, err := f.DateRange()
	if err != nil {
		// malformed dates are rejected at the handler; treat as unset here
		start, end = nil, nil
	}

	years := toSet(f.Years)
	seasons := toSet(f.Seasons)
	weathers := toSet(f.Weathers)
	weekdays := toSet(f.Weekdays)

	out := make([]models.Record, 0, len(records))
	for _, r := range records {
		if r.Hour < hourMin || r.Hour > hourMax {
			continue
		}
		if len(years) > 0 && !years[r.Year] {
			continue
		}
		if len(seasons) > 0 && !seasons[int(r.Season)] {
			continue
		}
		if len(weathers) > 0 && !weathers[int(r.Weather)] {
			continue
		}
		if len(weekdays) > 0 && !weekdays[r.Weekday] {
			continue
		}
		if !matchWorkingDay(r, f.WorkingDay) {
			continue
		}
		if !matchDateRange(r.Date, start, end) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func toSet(values []int) map[int]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[int]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func matchWorkingDay(r models.Record, mode string) bool {
	switch mode {
	case models.WorkingDayOnly:
		return r.WorkingDay
	case models.WorkingDayRestDay:
		return !r.WorkingDay
	default:
		return true
	}
}

func matchDateRange(d time.Time, start, end *time.Time) bool {
	if start != nil && d.Before(*start) {
		return false
	}
	if end != nil && d.After(*end) {
		return false
	}
	return true
}
