package models

// Period identifies the calendar granularity of a seasonality analysis.
// Only monthly analysis is computed today; the other variants exist for
// consumers that already model quarterly and annual periods.
type Period string

const (
	PeriodMonthly   Period = "monthly"
	PeriodQuarterly Period = "quarterly"
	PeriodAnnual    Period = "annual"
)

// SeasonalityMetrics captures calendar-month peak and trough behavior across
// all income sources combined. Month numbers are 1..12.
type SeasonalityMetrics struct {
	Period              Period  `json:"period"`
	PeakMonths          []int   `json:"peak_months"`
	TroughMonths        []int   `json:"trough_months"`
	VarianceCoefficient float64 `json:"variance_coefficient"`
	ConfidenceScore     float64 `json:"confidence_score"`
}
