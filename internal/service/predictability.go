package service

import (
	"github.com/avolkov/income-trends/internal/models"
	"gonum.org/v1/gonum/stat"
)

// Reliability is weighted above pattern confidence: steady amounts matter
// more to planning than a recognized calendar rhythm.
const (
	patternWeight     = 0.4
	reliabilityWeight = 0.6
)

// predictabilityScore folds the filtered pattern confidences and the
// per-source reliability scores into one scalar in [0,1].
func predictabilityScore(patterns []models.IncomePattern, statistics []models.SourceStatistics) float64 {
	if len(patterns) == 0 || len(statistics) == 0 {
		return 0
	}

	confidences := make([]float64, len(patterns))
	for i, p := range patterns {
		confidences[i] = p.ConfidenceScore
	}
	reliabilities := make([]float64, len(statistics))
	for i, s := range statistics {
		reliabilities[i] = s.ReliabilityScore
	}

	return patternWeight*stat.Mean(confidences, nil) + reliabilityWeight*stat.Mean(reliabilities, nil)
}
