package models

// Summary holds the overview KPIs for the current filtered subset.
// AvgRidesPerHour is nil and the hour/day fields are -1 when the subset
// is empty; HasData distinguishes that state from a real zero.
type Summary struct {
	HasData           bool     `json:"has_data"`
	RecordCount       int      `json:"record_count"`
	TotalRides        int      `json:"total_rides"`
	AvgRidesPerHour   *float64 `json:"avg_rides_per_hour"` // null when no data
	PeakHour          int      `json:"peak_hour"`           // -1 when no data
	MostActiveDay     int      `json:"most_active_day"`     // weekday index, -1 when no data
	MostActiveDayName string   `json:"most_active_day_name,omitempty"`
	RegisteredPct     *float64 `json:"registered_pct"` // null when total is zero
	CasualPct         *float64 `json:"casual_pct"`
}

// TemporalSummary holds the temporal-page KPIs
type TemporalSummary struct {
	HasData         bool    `json:"has_data"`
	PeakHour        int     `json:"peak_hour"`         // -1 when no data
	LeastActiveHour int     `json:"least_active_hour"` // -1 when no data
	HourlyStdDev    float64 `json:"hourly_std_dev"`    // stddev of hourly mean counts
}

// WeatherSummary holds the weather-page KPIs, denormalized to display units
type WeatherSummary struct {
	HasData      bool    `json:"has_data"`
	AvgTempC     float64 `json:"avg_temp_c"`
	AvgHumidity  float64 `json:"avg_humidity_pct"`
	MaxWindspeed float64 `json:"max_windspeed"`
}

// BehaviorSummary holds the user-behavior KPIs
type BehaviorSummary struct {
	HasData         bool     `json:"has_data"`
	TotalCasual     int      `json:"total_casual"`
	TotalRegistered int      `json:"total_registered"`
	RegisteredPct   *float64 `json:"registered_pct"`
	CasualPct       *float64 `json:"casual_pct"`
	RegCasualRatio  *float64 `json:"reg_casual_ratio"` // null when no casual rides
}
