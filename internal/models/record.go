package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncomeRecord represents a single dated income event for a source.
// Records are owned by the record store; the analysis only reads them.
type IncomeRecord struct {
	Source string          `json:"source"`
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}
