package analysis

import (
	"github.com/urbanwheels/dashboard-go/internal/models"
)

// Summarize computes the overview KPIs over a filtered record set. An
// empty input is a valid state: TotalRides is 0, the averages are nil,
// and PeakHour/MostActiveDay carry the -1 sentinel.
func Summarize(records []models.Record) models.Summary {
	summary := models.Summary{
		PeakHour:      -1,
		MostActiveDay: -1,
		RecordCount:   len(records),
	}
	if len(records) == 0 {
		return summary
	}
	summary.HasData = true

	var hourTotals, dayTotals [24]int
	var hourSeen, daySeen [24]bool
	var casual, registered int
	for _, r := range records {
		summary.TotalRides += r.Count
		casual += r.Casual
		registered += r.Registered
		if r.Hour >= 0 && r.Hour < 24 {
			hourTotals[r.Hour] += r.Count
			hourSeen[r.Hour] = true
		}
		if r.Weekday >= 0 && r.Weekday < 7 {
			dayTotals[r.Weekday] += r.Count
			daySeen[r.Weekday] = true
		}
	}

	avg := float64(summary.TotalRides) / float64(len(records))
	summary.AvgRidesPerHour = &avg

	// only hours/weekdays present in the subset compete; ties go to the
	// smaller hour / earlier weekday (Sunday=0)
	summary.PeakHour = argmax(hourTotals[:], hourSeen[:])
	summary.MostActiveDay = argmax(dayTotals[:7], daySeen[:7])
	summary.MostActiveDayName = models.WeekdayName(summary.MostActiveDay)

	if total := casual + registered; total > 0 {
		regPct := 100 * float64(registered) / float64(total)
		casPct := 100 * float64(casual) / float64(total)
		summary.RegisteredPct = &regPct
		summary.CasualPct = &casPct
	}

	return summary
}

// argmax returns the index of the largest value among indices marked
// seen, preferring the smallest index on ties. Returns -1 when nothing
// was seen.
func argmax(totals []int, seen []bool) int {
	best := -1
	for i, v := range totals {
		if !seen[i] {
			continue
		}
		if best == -1 || v > totals[best] {
			best = i
		}
	}
	return best
}
