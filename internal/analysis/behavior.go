package analysis

import (
	"sort"

	"github.com/urbanwheels/dashboard-go/internal/models"
)

// BehaviorSummarize computes the rider-type KPIs over the filtered
// subset. Percentages and the ratio are nil when their denominator is
// zero.
func BehaviorSummarize(records []models.Record) models.BehaviorSummary {
	summary := models.BehaviorSummary{}
	if len(records) == 0 {
		return summary
	}
	summary.HasData = true

	for _, r := range records {
		summary.TotalCasual += r.Casual
		summary.TotalRegistered += r.Registered
	}

	if total := summary.TotalCasual + summary.TotalRegistered; total > 0 {
		regPct := 100 * float64(summary.TotalRegistered) / float64(total)
		casPct := 100 * float64(summary.TotalCasual) / float64(total)
		summary.RegisteredPct = &regPct
		summary.CasualPct = &casPct
	}
	if summary.TotalCasual > 0 {
		ratio := float64(summary.TotalRegistered) / float64(summary.TotalCasual)
		summary.RegCasualRatio = &ratio
	}

	return summary
}

// SeasonalTotals computes per-season casual/registered totals in
// season code order, omitting seasons absent from the subset.
func SeasonalTotals(records []models.Record) []models.SeasonPoint {
	type acc struct {
		casual     int
		registered int
	}
	totals := make(map[models.Season]*acc)
	for _, r := range records {
		a, ok := totals[r.Season]
		if !ok {
			a = &acc{}
			totals[r.Season] = a
		}
		a.casual += r.Casual
		a.registered += r.Registered
	}

	points := make([]models.SeasonPoint, 0, len(totals))
	for _, s := range models.Seasons() {
		a, ok := totals[s]
		if !ok {
			continue
		}
		points = append(points, models.SeasonPoint{
			Season:     s,
			Name:       s.String(),
			Casual:     a.casual,
			Registered: a.registered,
			Total:      a.casual + a.registered,
		})
	}
	return points
}

// RiderSplit computes the overall casual/registered totals
func RiderSplit(records []models.Record) models.UserSplit {
	var split models.UserSplit
	for _, r := range records {
		split.Casual += r.Casual
		split.Registered += r.Registered
	}
	split.Total = split.Casual + split.Registered
	return split
}

// DailyTrend computes per-day rider totals ordered by date
func DailyTrend(records []models.Record) []models.DailyPoint {
	type acc struct {
		casual     int
		registered int
	}
	days := make(map[string]*acc)
	for _, r := range records {
		key := r.Date.Format("2006-01-02")
		a, ok := days[key]
		if !ok {
			a = &acc{}
			days[key] = a
		}
		a.casual += r.Casual
		a.registered += r.Registered
	}

	points := make([]models.DailyPoint, 0, len(days))
	for date, a := range days {
		points = append(points, models.DailyPoint{
			Date:       date,
			Casual:     a.casual,
			Registered: a.registered,
			Total:      a.casual + a.registered,
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}
