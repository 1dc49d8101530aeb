package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency classifies how often a source pays out.
type Frequency string

const (
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiweekly  Frequency = "biweekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyIrregular Frequency = "irregular"
)

// IncomePattern describes the recurring payment behavior detected for one source.
// NextPredicted is set only when the detection confidence is high enough to
// justify a forecast.
type IncomePattern struct {
	Source          string          `json:"source"`
	Frequency       Frequency       `json:"frequency"`
	AverageAmount   decimal.Decimal `json:"average_amount"`
	ConfidenceScore float64         `json:"confidence_score"`
	LastOccurrence  time.Time       `json:"last_occurrence"`
	NextPredicted   *time.Time      `json:"next_predicted,omitempty"`
}
