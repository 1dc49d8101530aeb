package service

import (
	"math"

	"github.com/avolkov/income-trends/internal/models"
	"github.com/shopspring/decimal"
)

const hoursPerDay = 24

// dayGaps returns the day counts between consecutive records, which must be
// sorted by date ascending with at least two entries.
func dayGaps(records []models.IncomeRecord) []float64 {
	gaps := make([]float64, len(records)-1)
	for i := 1; i < len(records); i++ {
		gaps[i-1] = records[i].Date.Sub(records[i-1].Date).Hours() / hoursPerDay
	}
	return gaps
}

// averageAmount is the mean of the record amounts in exact decimal arithmetic.
func averageAmount(records []models.IncomeRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total.Div(decimal.NewFromInt(int64(len(records))))
}

// coefficientOfVariation guards a zero or negative mean with +Inf so terms of
// the form 1/(1+cv) collapse to 0 instead of dividing by zero.
func coefficientOfVariation(stdDev, mean float64) float64 {
	if mean <= 0 {
		return math.Inf(1)
	}
	return stdDev / mean
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
