package analysis

import (
	"github.com/urbanwheels/dashboard-go/internal/models"
	"github.com/urbanwheels/dashboard-go/internal/stats"
)

// WeatherSummarize computes the weather-page KPIs in display units:
// mean temperature in degrees Celsius, mean relative humidity in
// percent, and the maximum windspeed.
func WeatherSummarize(records []models.Record) models.WeatherSummary {
	summary := models.WeatherSummary{}
	if len(records) == 0 {
		return summary
	}
	summary.HasData = true

	temps := make([]float64, len(records))
	hums := make([]float64, len(records))
	winds := make([]float64, len(records))
	for i, r := range records {
		temps[i] = r.TempCelsius()
		hums[i] = r.HumidityPercent()
		winds[i] = r.Windspeed
	}

	summary.AvgTempC = stats.Mean(temps)
	summary.AvgHumidity = stats.Mean(hums)
	summary.MaxWindspeed = stats.Max(winds)
	return summary
}

// WeatherDistribution computes distribution statistics of ride counts
// per weather category, in dataset code order. Categories with no
// records in the subset are omitted.
func WeatherDistribution(records []models.Record) []models.WeatherBucket {
	grouped := make(map[models.Weather][]float64)
	for _, r := range records {
		grouped[r.Weather] = append(grouped[r.Weather], float64(r.Count))
	}

	buckets := make([]models.WeatherBucket, 0, len(grouped))
	for _, w := range models.Weathers() {
		counts, ok := grouped[w]
		if !ok {
			continue
		}
		buckets = append(buckets, models.WeatherBucket{
			Weather: w,
			Name:    w.String(),
			Records: len(counts),
			Mean:    stats.Mean(counts),
			Median:  stats.Median(counts),
			Q1:      stats.Quantile(counts, 0.25),
			Q3:      stats.Quantile(counts, 0.75),
			Min:     stats.Min(counts),
			Max:     stats.Max(counts),
		})
	}
	return buckets
}

// correlation matrix columns, in chart order
var correlationColumns = []string{"temp", "atemp", "hum", "windspeed", "cnt"}

// WeatherCorrelation computes the Pearson correlation matrix between
// the weather variables and the ride count over the filtered subset.
func WeatherCorrelation(records []models.Record) models.CorrelationMatrix {
	columns := make([][]float64, len(correlationColumns))
	for i := range columns {
		columns[i] = make([]float64, len(records))
	}
	for i, r := range records {
		columns[0][i] = r.Temp
		columns[1][i] = r.FeelsTemp
		columns[2][i] = r.Humidity
		columns[3][i] = r.Windspeed
		columns[4][i] = float64(r.Count)
	}

	return models.CorrelationMatrix{
		Columns: correlationColumns,
		Values:  stats.CorrelationMatrix(columns),
	}
}
