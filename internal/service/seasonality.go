package service

import (
	"sort"

	"github.com/avolkov/income-trends/internal/models"
	"gonum.org/v1/gonum/stat"
)

// seasonalityMinRecords is the smallest combined record set that yields a
// meaningful monthly breakdown.
const seasonalityMinRecords = 12

// analyzeSeasonality computes calendar-month peak and trough behavior across
// the full record set, all sources combined. It returns nil when there is not
// enough data; absence means "insufficient data", not an empty result.
func analyzeSeasonality(records []models.IncomeRecord) *models.SeasonalityMetrics {
	if len(records) < seasonalityMinRecords {
		return nil
	}

	byMonth := make(map[int][]float64)
	for _, r := range records {
		month := int(r.Date.Month())
		byMonth[month] = append(byMonth[month], r.Amount.InexactFloat64())
	}
	months := make([]int, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Ints(months)

	monthlyAvg := make(map[int]float64, len(months))
	averages := make([]float64, 0, len(months))
	for _, month := range months {
		avg := stat.Mean(byMonth[month], nil)
		monthlyAvg[month] = avg
		averages = append(averages, avg)
	}

	overallAvg := stat.Mean(averages, nil)
	overallStd := 0.0
	if len(averages) >= 2 {
		overallStd = stat.StdDev(averages, nil)
	}

	peaks := make([]int, 0)
	troughs := make([]int, 0)
	for _, month := range months {
		switch {
		case monthlyAvg[month] > overallAvg+0.5*overallStd:
			peaks = append(peaks, month)
		case monthlyAvg[month] < overallAvg-0.5*overallStd:
			troughs = append(troughs, month)
		}
	}

	vc := coefficientOfVariation(overallStd, overallAvg)
	return &models.SeasonalityMetrics{
		Period:              models.PeriodMonthly,
		PeakMonths:          peaks,
		TroughMonths:        troughs,
		VarianceCoefficient: vc,
		ConfidenceScore:     1 / (1 + vc),
	}
}
