package models

// HourlyPoint represents one hour on the hourly-usage charts
type HourlyPoint struct {
	Hour          int     `json:"hour"`
	AvgCount      float64 `json:"avg_count"`
	AvgCasual     float64 `json:"avg_casual"`
	AvgRegistered float64 `json:"avg_registered"`
}

// WeekdayPoint represents one weekday on the weekday-usage charts
type WeekdayPoint struct {
	Weekday  int     `json:"weekday"` // 0=Sunday
	Name     string  `json:"name"`
	AvgCount float64 `json:"avg_count"`
}

// WeekdaySplit holds weekday averages split by working-day flag
type WeekdaySplit struct {
	Working    []WeekdayPoint `json:"working"`
	NonWorking []WeekdayPoint `json:"non_working"`
}

// HeatmapCell represents one hour-by-weekday cell of the demand heatmap
type HeatmapCell struct {
	Weekday  int     `json:"weekday"`
	Hour     int     `json:"hour"`
	AvgCount float64 `json:"avg_count"`
}

// SeasonPoint holds per-season rider totals for the seasonal bar chart
type SeasonPoint struct {
	Season     Season `json:"season"`
	Name       string `json:"name"`
	Casual     int    `json:"casual"`
	Registered int    `json:"registered"`
	Total      int    `json:"total"`
}

// UserSplit holds overall rider-type totals for the donut chart
type UserSplit struct {
	Casual     int `json:"casual"`
	Registered int `json:"registered"`
	Total      int `json:"total"`
}

// WeatherBucket holds distribution statistics of ride counts under one
// weather category
type WeatherBucket struct {
	Weather Weather `json:"weather"`
	Name    string  `json:"name"`
	Records int     `json:"records"`
	Mean    float64 `json:"mean"`
	Median  float64 `json:"median"`
	Q1      float64 `json:"q1"`
	Q3      float64 `json:"q3"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// CorrelationMatrix holds a symmetric Pearson correlation matrix.
// Values[i][j] is the correlation between Columns[i] and Columns[j].
type CorrelationMatrix struct {
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
}

// DailyPoint holds one calendar day on the daily-trend chart
type DailyPoint struct {
	Date       string `json:"date"` // YYYY-MM-DD
	Casual     int    `json:"casual"`
	Registered int    `json:"registered"`
	Total      int    `json:"total"`
}

// FilterOptions describes the selectable filter values for the sidebar
type FilterOptions struct {
	Years    []int          `json:"years"`
	Seasons  []OptionLabel  `json:"seasons"`
	Weathers []OptionLabel  `json:"weathers"`
	Weekdays []OptionLabel  `json:"weekdays"`
	MinDate  string         `json:"min_date"` // YYYY-MM-DD
	MaxDate  string         `json:"max_date"`
}

// OptionLabel pairs a filter code with its display label
type OptionLabel struct {
	Code  int    `json:"code"`
	Label string `json:"label"`
}

// RecordPage is the paged data-table response
type RecordPage struct {
	Records  []Record `json:"records"`
	Total    int64    `json:"total"`
	Page     int      `json:"page"`
	PageSize int      `json:"page_size"`
}
