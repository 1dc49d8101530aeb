package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/avolkov/income-trends/internal/service"
	"github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

type Handler struct {
	svc           *service.Service
	log           *logrus.Logger
	minConfidence float64
}

// NewHandler initializes a new handler. minConfidence is the threshold used
// when a request does not carry one.
func NewHandler(svc *service.Service, log *logrus.Logger, minConfidence float64) *Handler {
	return &Handler{svc: svc, log: log, minConfidence: minConfidence}
}

// IncomeTrends handles GET /analytics/income-trends. Query parameters:
// start_date, end_date (YYYY-MM-DD), source, min_confidence.
func (h *Handler) IncomeTrends(w http.ResponseWriter, r *http.Request) {
	req, err := h.parseRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	analysis, err := h.svc.Analyze(r.Context(), *req)
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, service.ErrNoDataFound):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case err != nil:
		h.log.Errorf("Income trends analysis failed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(analysis); err != nil {
		h.log.Errorf("Failed to encode analysis response: %v", err)
	}
}

func (h *Handler) parseRequest(r *http.Request) (*service.AnalysisRequest, error) {
	req := &service.AnalysisRequest{
		Source:        r.URL.Query().Get("source"),
		MinConfidence: h.minConfidence,
	}

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, errors.New("start_date must be formatted as YYYY-MM-DD")
		}
		req.StartDate = &date
	}
	if raw := r.URL.Query().Get("end_date"); raw != "" {
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, errors.New("end_date must be formatted as YYYY-MM-DD")
		}
		req.EndDate = &date
	}
	if raw := r.URL.Query().Get("min_confidence"); raw != "" {
		minConfidence, err := strconv.ParseFloat(raw, 64)
		if err != nil || minConfidence < 0 || minConfidence > 1 {
			return nil, errors.New("min_confidence must be a number within [0,1]")
		}
		req.MinConfidence = minConfidence
	}

	return req, nil
}
