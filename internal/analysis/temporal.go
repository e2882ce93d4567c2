package analysis

import (
	"github.com/urbanwheels/dashboard-go/internal/models"
	"github.com/urbanwheels/dashboard-go/internal/stats"
)

// hourAccumulator collects per-hour rider totals for averaging
type hourAccumulator struct {
	count      int
	total      int
	casual     int
	registered int
}

// HourlyAverages computes the average total/casual/registered counts
// per hour of day over the filtered subset. Hours absent from the
// subset are omitted; the result is ordered by hour.
func HourlyAverages(records []models.Record) []models.HourlyPoint {
	var acc [24]hourAccumulator
	for _, r := range records {
		if r.Hour < 0 || r.Hour > 23 {
			continue
		}
		a := &acc[r.Hour]
		a.count++
		a.total += r.Count
		a.casual += r.Casual
		a.registered += r.Registered
	}

	points := make([]models.HourlyPoint, 0, 24)
	for hour, a := range acc {
		if a.count == 0 {
			continue
		}
		n := float64(a.count)
		points = append(points, models.HourlyPoint{
			Hour:          hour,
			AvgCount:      float64(a.total) / n,
			AvgCasual:     float64(a.casual) / n,
			AvgRegistered: float64(a.registered) / n,
		})
	}
	return points
}

// TemporalSummarize computes the temporal-page KPIs: peak and least
// active hour by summed count (ties to the smaller hour) and the
// standard deviation of the hourly mean counts.
func TemporalSummarize(records []models.Record) models.TemporalSummary {
	summary := models.TemporalSummary{PeakHour: -1, LeastActiveHour: -1}
	if len(records) == 0 {
		return summary
	}
	summary.HasData = true

	var totals [24]int
	var seen [24]bool
	for _, r := range records {
		if r.Hour < 0 || r.Hour > 23 {
			continue
		}
		totals[r.Hour] += r.Count
		seen[r.Hour] = true
	}

	summary.PeakHour = argmax(totals[:], seen[:])
	summary.LeastActiveHour = argmin(totals[:], seen[:])

	hourly := HourlyAverages(records)
	means := make([]float64, len(hourly))
	for i, p := range hourly {
		means[i] = p.AvgCount
	}
	summary.HourlyStdDev = stats.StdDev(means)

	return summary
}

// argmin mirrors argmax for the least-active hour
func argmin(totals []int, seen []bool) int {
	best := -1
	for i, v := range totals {
		if !seen[i] {
			continue
		}
		if best == -1 || v < totals[best] {
			best = i
		}
	}
	return best
}

// WeekdayAverages computes average counts per weekday, split into
// working days and non-working days, each ordered Sunday first.
func WeekdayAverages(records []models.Record) models.WeekdaySplit {
	type acc struct {
		count int
		total int
	}
	var working, nonWorking [7]acc
	for _, r := range records {
		if r.Weekday < 0 || r.Weekday > 6 {
			continue
		}
		if r.WorkingDay {
			working[r.Weekday].count++
			working[r.Weekday].total += r.Count
		} else {
			nonWorking[r.Weekday].count++
			nonWorking[r.Weekday].total += r.Count
		}
	}

	build := func(acc [7]acc) []models.WeekdayPoint {
		points := make([]models.WeekdayPoint, 0, 7)
		for weekday, a := range acc {
			if a.count == 0 {
				continue
			}
			points = append(points, models.WeekdayPoint{
				Weekday:  weekday,
				Name:     models.WeekdayName(weekday),
				AvgCount: float64(a.total) / float64(a.count),
			})
		}
		return points
	}

	return models.WeekdaySplit{
		Working:    build(working),
		NonWorking: build(nonWorking),
	}
}

// Heatmap computes the hour-by-weekday grid of average counts. Cells
// with no observations are omitted. Ordered by weekday then hour.
func Heatmap(records []models.Record) []models.HeatmapCell {
	type acc struct {
		count int
		total int
	}
	var grid [7][24]acc
	for _, r := range records {
		if r.Weekday < 0 || r.Weekday > 6 || r.Hour < 0 || r.Hour > 23 {
			continue
		}
		grid[r.Weekday][r.Hour].count++
		grid[r.Weekday][r.Hour].total += r.Count
	}

	cells := make([]models.HeatmapCell, 0, 7*24)
	for weekday := 0; weekday < 7; weekday++ {
		for hour := 0; hour < 24; hour++ {
			a := grid[weekday][hour]
			if a.count == 0 {
				continue
			}
			cells = append(cells, models.HeatmapCell{
				Weekday:  weekday,
				Hour:     hour,
				AvgCount: float64(a.total) / float64(a.count),
			})
		}
	}
	return cells
}
