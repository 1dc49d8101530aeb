package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avolkov/income-trends/internal/models"
	"github.com/avolkov/income-trends/internal/service"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	records []models.IncomeRecord
}

func (s *stubStore) FetchRecords(ctx context.Context, start, end *time.Time, source string) ([]models.IncomeRecord, error) {
	return s.records, nil
}

func newTestHandler(records []models.IncomeRecord) *Handler {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	svc := service.NewService(&stubStore{records: records}, logger)
	return NewHandler(svc, logger, service.DefaultMinConfidence)
}

func weeklyRecords(n int) []models.IncomeRecord {
	records := make([]models.IncomeRecord, n)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range records {
		records[i] = models.IncomeRecord{
			Source: "employer",
			Date:   start.AddDate(0, 0, 7*i),
			Amount: decimal.RequireFromString("1000.00"),
		}
	}
	return records
}

func TestIncomeTrendsOK(t *testing.T) {
	h := newTestHandler(weeklyRecords(12))

	req := httptest.NewRequest(http.MethodGet, "/analytics/income-trends?start_date=2024-01-01&end_date=2024-12-31", nil)
	rec := httptest.NewRecorder()
	h.IncomeTrends(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var analysis models.IncomeTrendsAnalysis
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&analysis))
	require.Len(t, analysis.Patterns, 1)
	require.Equal(t, models.FrequencyWeekly, analysis.Patterns[0].Frequency)
	require.Len(t, analysis.SourceStatistics, 1)
	require.NotNil(t, analysis.Seasonality)
}

func TestIncomeTrendsBadRequests(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"malformed start_date", "start_date=jan-1"},
		{"malformed end_date", "end_date=2024-13-45"},
		{"min_confidence not a number", "min_confidence=high"},
		{"min_confidence out of range", "min_confidence=1.5"},
		{"end before start", "start_date=2024-06-01&end_date=2024-01-01"},
	}

	h := newTestHandler(weeklyRecords(12))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/analytics/income-trends?"+tt.query, nil)
			rec := httptest.NewRecorder()
			h.IncomeTrends(rec, req)
			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestIncomeTrendsZeroMinConfidence(t *testing.T) {
	// Gaps alternating 8 and 10 days classify as weekly with confidence
	// below the configured 0.5 default.
	records := make([]models.IncomeRecord, 0, 7)
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		records = append(records, models.IncomeRecord{
			Source: "gig",
			Date:   day,
			Amount: decimal.RequireFromString("300.00"),
		})
		if i%2 == 0 {
			day = day.AddDate(0, 0, 8)
		} else {
			day = day.AddDate(0, 0, 10)
		}
	}
	h := newTestHandler(records)

	decode := func(t *testing.T, query string) models.IncomeTrendsAnalysis {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, "/analytics/income-trends"+query, nil)
		rec := httptest.NewRecorder()
		h.IncomeTrends(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		var analysis models.IncomeTrendsAnalysis
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&analysis))
		return analysis
	}

	t.Run("explicit zero keeps the low-confidence pattern", func(t *testing.T) {
		analysis := decode(t, "?min_confidence=0")
		require.Len(t, analysis.Patterns, 1)
		require.Equal(t, models.FrequencyWeekly, analysis.Patterns[0].Frequency)
		require.Less(t, analysis.Patterns[0].ConfidenceScore, 0.5)
	})

	t.Run("omitted parameter applies the configured default", func(t *testing.T) {
		analysis := decode(t, "")
		require.Empty(t, analysis.Patterns)
		require.Len(t, analysis.SourceStatistics, 1)
	})
}

func TestIncomeTrendsNoData(t *testing.T) {
	h := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/analytics/income-trends", nil)
	rec := httptest.NewRecorder()
	h.IncomeTrends(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
