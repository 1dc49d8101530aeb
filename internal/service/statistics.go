package service

import (
	"github.com/avolkov/income-trends/internal/models"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"
)

// calculateStatistics computes descriptive statistics and a reliability score
// for one source's records (sorted by date ascending, at least one).
//
// Reliability combines the coefficient of variation of the amounts with that
// of the day gaps between payments: steadier amounts and steadier timing both
// push the score toward 1.
func calculateStatistics(source string, records []models.IncomeRecord) (*models.SourceStatistics, error) {
	total := decimal.Zero
	minAmount := records[0].Amount
	maxAmount := records[0].Amount
	amounts := make([]float64, len(records))
	for i, r := range records {
		total = total.Add(r.Amount)
		if r.Amount.LessThan(minAmount) {
			minAmount = r.Amount
		}
		if r.Amount.GreaterThan(maxAmount) {
			maxAmount = r.Amount
		}
		amounts[i] = r.Amount.InexactFloat64()
	}
	count := len(records)
	avg := total.Div(decimal.NewFromInt(int64(count)))

	var stdDev, reliability float64
	if count >= 2 {
		stdDev = stat.StdDev(amounts, nil)
		cvAmount := coefficientOfVariation(stdDev, stat.Mean(amounts, nil))

		gaps := dayGaps(records)
		gapStd := 0.0
		if len(gaps) >= 2 {
			gapStd = stat.StdDev(gaps, nil)
		}
		cvInterval := coefficientOfVariation(gapStd, stat.Mean(gaps, nil))

		reliability = (1/(1+cvAmount) + 1/(1+cvInterval)) / 2
	}

	return models.NewSourceStatistics(source, count, total, avg, minAmount, maxAmount, stdDev, reliability)
}
