package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/avolkov/income-trends/internal/models"
	"github.com/sirupsen/logrus"
)

// DefaultMinConfidence is the pattern confidence threshold callers should
// apply when no explicit one is given. The service itself never substitutes
// it: a request's MinConfidence is honored as-is, including 0.
const DefaultMinConfidence = 0.5

var (
	// ErrInvalidRequest indicates a malformed analysis request, detected
	// before any records are fetched.
	ErrInvalidRequest = errors.New("end date must not be before start date")
	// ErrNoDataFound indicates the record store returned no records for the
	// requested filters.
	ErrNoDataFound = errors.New("no income records found for the given criteria")
)

// RecordStore is the external collaborator the analysis reads income records
// from. Implementations must return records matching all provided filters;
// nil date bounds and an empty source mean "no filter".
type RecordStore interface {
	FetchRecords(ctx context.Context, start, end *time.Time, source string) ([]models.IncomeRecord, error)
}

// AnalysisRequest narrows the record set one analysis runs over.
// MinConfidence of 0 keeps every detected pattern.
type AnalysisRequest struct {
	StartDate     *time.Time
	EndDate       *time.Time
	Source        string
	MinConfidence float64
}

// Service runs income-trends analysis over records fetched from a store.
type Service struct {
	store RecordStore
	log   *logrus.Logger
	now   func() time.Time
}

// NewService initializes a new service
func NewService(store RecordStore, log *logrus.Logger) *Service {
	return &Service{store: store, log: log, now: time.Now}
}

// Analyze fetches the records matching the request and computes per-source
// payment patterns and statistics, combined seasonality, and an overall
// predictability score.
func (s *Service) Analyze(ctx context.Context, req AnalysisRequest) (*models.IncomeTrendsAnalysis, error) {
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, ErrInvalidRequest
	}
	records, err := s.store.FetchRecords(ctx, req.StartDate, req.EndDate, req.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch income records: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoDataFound
	}

	groups := groupBySource(records)
	sources := make([]string, 0, len(groups))
	for source := range groups {
		sources = append(sources, source)
	}
	sort.Strings(sources)

	patterns := make([]models.IncomePattern, 0, len(sources))
	statistics := make([]models.SourceStatistics, 0, len(sources))
	for _, source := range sources {
		group := groups[source]
		pattern := detectPattern(source, group)
		stat, err := calculateStatistics(source, group)
		if err != nil {
			return nil, fmt.Errorf("failed to compute statistics: %w", err)
		}
		statistics = append(statistics, *stat)
		// An irregular classification is itself informative ("no pattern"),
		// so it bypasses the confidence filter.
		if pattern.Frequency == models.FrequencyIrregular || pattern.ConfidenceScore >= req.MinConfidence {
			patterns = append(patterns, pattern)
		}
	}

	start, end := dateBounds(records)
	analysis := &models.IncomeTrendsAnalysis{
		Patterns:                   patterns,
		Seasonality:                analyzeSeasonality(records),
		SourceStatistics:           statistics,
		AnalysisDate:               s.now(),
		DataStartDate:              start,
		DataEndDate:                end,
		OverallPredictabilityScore: predictabilityScore(patterns, statistics),
	}

	s.log.Infof("Analyzed %d income records across %d sources", len(records), len(sources))
	return analysis, nil
}

// groupBySource partitions records by source, each group sorted by date
// ascending as the per-source calculations require.
func groupBySource(records []models.IncomeRecord) map[string][]models.IncomeRecord {
	groups := make(map[string][]models.IncomeRecord)
	for _, r := range records {
		groups[r.Source] = append(groups[r.Source], r)
	}
	for _, group := range groups {
		sort.Slice(group, func(i, j int) bool {
			return group[i].Date.Before(group[j].Date)
		})
	}
	return groups
}

func dateBounds(records []models.IncomeRecord) (start, end time.Time) {
	start, end = records[0].Date, records[0].Date
	for _, r := range records[1:] {
		if r.Date.Before(start) {
			start = r.Date
		}
		if r.Date.After(end) {
			end = r.Date
		}
	}
	return start, end
}
