package models

import "time"

// IncomeTrendsAnalysis is the composite result of one analysis call.
// DataStartDate and DataEndDate are the bounds of the records actually
// analyzed, not the bounds requested by the caller.
type IncomeTrendsAnalysis struct {
	Patterns                   []IncomePattern     `json:"patterns"`
	Seasonality                *SeasonalityMetrics `json:"seasonality,omitempty"`
	SourceStatistics           []SourceStatistics  `json:"source_statistics"`
	AnalysisDate               time.Time           `json:"analysis_date"`
	DataStartDate              time.Time           `json:"data_start_date"`
	DataEndDate                time.Time           `json:"data_end_date"`
	OverallPredictabilityScore float64             `json:"overall_predictability_score"`
}
