package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SourceStatistics summarizes the amounts and timing observed for one source.
type SourceStatistics struct {
	Source            string          `json:"source"`
	TotalOccurrences  int             `json:"total_occurrences"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	AverageAmount     decimal.Decimal `json:"average_amount"`
	MinAmount         decimal.Decimal `json:"min_amount"`
	MaxAmount         decimal.Decimal `json:"max_amount"`
	StandardDeviation float64         `json:"standard_deviation"`
	ReliabilityScore  float64         `json:"reliability_score"`
}

// NewSourceStatistics validates the statistical invariants before returning
// the value object.
func NewSourceStatistics(source string, occurrences int, total, avg, min, max decimal.Decimal, stdDev, reliability float64) (*SourceStatistics, error) {
	if occurrences < 1 {
		return nil, fmt.Errorf("source %q: total occurrences must be positive, got %d", source, occurrences)
	}
	if max.LessThan(min) {
		return nil, fmt.Errorf("source %q: max amount %s is below min amount %s", source, max, min)
	}
	if stdDev < 0 {
		return nil, fmt.Errorf("source %q: standard deviation must be non-negative, got %f", source, stdDev)
	}
	if reliability < 0 || reliability > 1 {
		return nil, fmt.Errorf("source %q: reliability score %f is outside [0,1]", source, reliability)
	}
	return &SourceStatistics{
		Source:            source,
		TotalOccurrences:  occurrences,
		TotalAmount:       total,
		AverageAmount:     avg,
		MinAmount:         min,
		MaxAmount:         max,
		StandardDeviation: stdDev,
		ReliabilityScore:  reliability,
	}, nil
}
