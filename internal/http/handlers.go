package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"caredash/internal/charts"
	applog "caredash/internal/log"
	"caredash/internal/metrics"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	logger := applog.FromContext(r.Context())
	if s.templates == nil {
		logger.Error("Templates not loaded", applog.FieldPath, r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	data := struct {
		Title        string
		TotalRecords int
		MeanBilling  string
	}{
		Title:        s.layout.Title,
		TotalRecords: s.layout.Summary.TotalRecords,
		MeanBilling:  s.layout.Summary.MeanBilling,
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		logger.Error("Index template execution failed", applog.FieldError, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleLayout returns the static control and slot description derived from
// the loaded table.
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, s.layout)
}

// handleChart maps /api/charts/{slot} plus the current control values to one
// chart spec. Specs are cached per (slot, controls); the table never changes,
// so cached entries stay valid for their whole TTL.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	logger := applog.FromContext(r.Context())

	slot := strings.TrimPrefix(r.URL.Path, "/api/charts/")
	if slot == "" || strings.Contains(slot, "/") {
		http.NotFound(w, r)
		return
	}

	cv, err := parseControlValues(r.URL.Query(), s.layout.BillingSlider.Default)
	if err != nil {
		logger.Warn("Bad chart request", applog.FieldChart, slot, applog.FieldError, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	key := cv.cacheKey(slot)
	if spec, found := s.specCache.Get(key); found {
		metrics.ChartCacheHits.Inc()
		logger.Debug("Chart cache hit", applog.FieldChart, slot, applog.FieldCacheKey, key)
		writeJSON(w, spec)
		return
	}

	start := time.Now()
	var spec charts.Spec
	switch slot {
	case charts.SlotAgeDistribution:
		spec = s.dashboard.AgeDistribution(cv.Gender)
	case charts.SlotConditionDistribution:
		spec = s.dashboard.ConditionDistribution(cv.Gender)
	case charts.SlotInsuranceComparison:
		spec = s.dashboard.InsuranceComparison(cv.Gender)
	case charts.SlotBillingDistribution:
		spec = s.dashboard.BillingDistribution(cv.Gender, cv.Billing)
	case charts.SlotAdmissionTrends:
		spec = s.dashboard.AdmissionTrends(cv.ChartType, cv.Condition)
	default:
		http.NotFound(w, r)
		return
	}
	metrics.ChartCacheMisses.Inc()
	metrics.ChartRenderSeconds.WithLabelValues(slot).Observe(time.Since(start).Seconds())

	s.specCache.Set(key, spec)
	writeJSON(w, spec)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Encode response failed", applog.FieldError, err)
	}
}
