package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/avolkov/income-trends/internal/models"
	"github.com/shopspring/decimal"
)

// Repository provides read access to stored income records
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// FetchRecords retrieves income records matching the provided filters,
// ordered by date ascending. Nil date bounds and an empty source apply no
// filter. Zero matching rows is not an error.
func (r *Repository) FetchRecords(ctx context.Context, start, end *time.Time, source string) ([]models.IncomeRecord, error) {
	query := `
		SELECT source, received_on, amount
		FROM planning.income_records`
	var (
		conditions []string
		args       []interface{}
	)
	if start != nil {
		args = append(args, *start)
		conditions = append(conditions, fmt.Sprintf("received_on >= $%d", len(args)))
	}
	if end != nil {
		args = append(args, *end)
		conditions = append(conditions, fmt.Sprintf("received_on <= $%d", len(args)))
	}
	if source != "" {
		args = append(args, source)
		conditions = append(conditions, fmt.Sprintf("source = $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += "\n\t\tWHERE " + strings.Join(conditions, " AND ")
	}
	query += "\n\t\tORDER BY received_on ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query income records: %w", err)
	}
	defer rows.Close()

	var records []models.IncomeRecord
	for rows.Next() {
		var (
			record models.IncomeRecord
			amount string
		)
		if err := rows.Scan(&record.Source, &record.Date, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan income record: %w", err)
		}
		record.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("failed to parse amount %q: %w", amount, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read income records: %w", err)
	}
	return records, nil
}
