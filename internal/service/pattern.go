package service

import (
	"math"

	"github.com/avolkov/income-trends/internal/models"
	"gonum.org/v1/gonum/stat"
)

const (
	// maxIntervalDeviation is how far the average day gap may sit from a
	// candidate interval for the candidate to qualify.
	maxIntervalDeviation = 2.0
	// maxIntervalStdDev is the largest gap variability a qualifying
	// candidate tolerates.
	maxIntervalStdDev = 2.0
	// predictionThreshold is the confidence above which a next payment date
	// is forecast.
	predictionThreshold = 0.7
)

// frequencyCandidates are evaluated in fixed order; on equal confidence the
// earlier entry wins.
var frequencyCandidates = []struct {
	frequency    models.Frequency
	expectedDays float64
}{
	{models.FrequencyWeekly, 7},
	{models.FrequencyBiweekly, 14},
	{models.FrequencyMonthly, 30},
}

// detectPattern classifies one source's records (sorted by date ascending,
// at least one) into a payment frequency with a confidence score.
func detectPattern(source string, records []models.IncomeRecord) models.IncomePattern {
	pattern := models.IncomePattern{
		Source:         source,
		Frequency:      models.FrequencyIrregular,
		AverageAmount:  averageAmount(records),
		LastOccurrence: records[len(records)-1].Date,
	}
	if len(records) < 2 {
		return pattern
	}

	gaps := dayGaps(records)
	avgInterval := stat.Mean(gaps, nil)
	// A single gap gives no variance estimate; the +Inf sentinel keeps every
	// candidate from qualifying so the sequence stays irregular.
	intervalStd := math.Inf(1)
	if len(gaps) >= 2 {
		intervalStd = stat.StdDev(gaps, nil)
	}

	best := -1.0
	for _, c := range frequencyCandidates {
		deviation := math.Abs(avgInterval - c.expectedDays)
		if deviation > maxIntervalDeviation || intervalStd > maxIntervalStdDev {
			continue
		}
		confidence := clamp01(1 - deviation/4 - intervalStd/4)
		if confidence > best {
			best = confidence
			pattern.Frequency = c.frequency
			pattern.ConfidenceScore = confidence
		}
	}

	if pattern.ConfidenceScore > predictionThreshold {
		next := pattern.LastOccurrence.AddDate(0, 0, int(math.Round(avgInterval)))
		pattern.NextPredicted = &next
	}
	return pattern
}
