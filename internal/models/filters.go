package models

import "time"

// RecordFilter represents the sidebar filter parameters shared by all
// dashboard queries. Zero values and empty sets mean "no constraint"
// for their column; HourMin/HourMax default to the full 0-23 range when
// both are unset.
type RecordFilter struct {
	HourMin    *int    `form:"hourMin"`    // 0-23
	HourMax    *int    `form:"hourMax"`    // 0-23
	Years      []int   `form:"years"`      // calendar years, e.g. 2011,2012
	Seasons    []int   `form:"seasons"`    // season codes 1-4
	Weathers   []int   `form:"weathers"`   // weather codes 1-4
	Weekdays   []int   `form:"weekdays"`   // 0=Sunday .. 6=Saturday
	WorkingDay string  `form:"workingDay"` // "", "working", "rest"
	StartDate  string  `form:"startDate"`  // YYYY-MM-DD
	EndDate    string  `form:"endDate"`    // YYYY-MM-DD
}

// Working-day selector values
const (
	WorkingDayAll     = ""
	WorkingDayOnly    = "working"
	WorkingDayRestDay = "rest"
)

// HourRange returns the effective inclusive hour range. An unset bound
// falls back to the full range end on that side.
func (f RecordFilter) HourRange() (int, int) {
	min, max := 0, 23
	if f.HourMin != nil {
		min = *f.HourMin
	}
	if f.HourMax != nil {
		max = *f.HourMax
	}
	return min, max
}

// DateRange parses the optional date bounds. A nil time means the bound
// is unset. Malformed dates return an error so handlers can reply 400.
func (f RecordFilter) DateRange() (start, end *time.Time, err error) {
	if f.StartDate != "" {
		t, perr := time.Parse("2006-01-02", f.StartDate)
		if perr != nil {
			return nil, nil, perr
		}
		start = &t
	}
	if f.EndDate != "" {
		t, perr := time.Parse("2006-01-02", f.EndDate)
		if perr != nil {
			return nil, nil, perr
		}
		end = &t
	}
	return start, end, nil
}

// RecordPageFilter adds pagination to RecordFilter for the data-table endpoint
type RecordPageFilter struct {
	RecordFilter
	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}
