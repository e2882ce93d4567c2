package models

import "time"

// Season codes as used in the source dataset (1-4)
type Season int

const (
	SeasonSpring Season = 1
	SeasonSummer Season = 2
	SeasonFall   Season = 3
	SeasonWinter Season = 4
)

var seasonNames = map[Season]string{
	SeasonSpring: "Spring",
	SeasonSummer: "Summer",
	SeasonFall:   "Fall",
	SeasonWinter: "Winter",
}

// String returns the display label for the season code
func (s Season) String() string {
	if name, ok := seasonNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Valid reports whether the code is one of the four dataset seasons
func (s Season) Valid() bool {
	_, ok := seasonNames[s]
	return ok
}

// Seasons returns all season codes in dataset order
func Seasons() []Season {
	return []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}
}

// Weather codes as used in the source dataset (1-4)
type Weather int

const (
	WeatherClear    Weather = 1
	WeatherMisty    Weather = 2
	WeatherLightWet Weather = 3
	WeatherHeavyWet Weather = 4
)

var weatherNames = map[Weather]string{
	WeatherClear:    "Clear",
	WeatherMisty:    "Mist/Cloudy",
	WeatherLightWet: "Light Rain/Snow",
	WeatherHeavyWet: "Heavy Rain/Snow",
}

// String returns the display label for the weather code
func (w Weather) String() string {
	if name, ok := weatherNames[w]; ok {
		return name
	}
	return "Unknown"
}

// Valid reports whether the code is one of the four dataset weather categories
func (w Weather) Valid() bool {
	_, ok := weatherNames[w]
	return ok
}

// Weathers returns all weather codes in dataset order
func Weathers() []Weather {
	return []Weather{WeatherClear, WeatherMisty, WeatherLightWet, WeatherHeavyWet}
}

// WeekdayNames maps dataset weekday indices (Sunday=0) to display labels
var WeekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// WeekdayName returns the display label for a weekday index, or "Unknown"
// for an index outside 0-6
func WeekdayName(weekday int) string {
	if weekday < 0 || weekday > 6 {
		return "Unknown"
	}
	return WeekdayNames[weekday]
}

// Record represents one observed hour of bike-share activity
type Record struct {
	Date       time.Time `json:"date"`
	Hour       int       `json:"hour"`    // 0-23
	Year       int       `json:"year"`    // calendar year, derived from Date
	Month      int       `json:"month"`   // 1-12
	Season     Season    `json:"season"`  // 1-4
	Holiday    bool      `json:"holiday"`
	Weekday    int       `json:"weekday"` // 0=Sunday .. 6=Saturday
	WorkingDay bool      `json:"working_day"`
	Weather    Weather   `json:"weather"` // 1-4
	Temp       float64   `json:"temp"`    // normalized to [0,1], divide of 41 degC
	FeelsTemp  float64   `json:"feels_temp"`
	Humidity   float64   `json:"humidity"`  // normalized to [0,1]
	Windspeed  float64   `json:"windspeed"`
	Casual     int       `json:"casual"`
	Registered int       `json:"registered"`
	Count      int       `json:"count"` // casual + registered
}

// TempCelsius returns the denormalized temperature in degrees Celsius
func (r Record) TempCelsius() float64 {
	return r.Temp * 41.0
}

// HumidityPercent returns the denormalized relative humidity in percent
func (r Record) HumidityPercent() float64 {
	return r.Humidity * 100.0
}
