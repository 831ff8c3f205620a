package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"caredash/internal/charts"
	"caredash/internal/core"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	rows := []core.Record{
		core.NewRecord(30, "Male", "Diabetes", "Aetna", core.ParseAmount("100"), core.ParseDate("2023-01-05")),
		core.NewRecord(45, "Female", "Asthma", "Cigna", core.ParseAmount("200"), core.ParseDate("2023-02-20")),
		core.NewRecord(62, "Male", "Asthma", "Cigna", core.ParseAmount("300"), core.ParseDate("2023-03-02")),
	}
	table := core.NewTable(rows)
	srv := NewServer(":0", charts.NewDashboard(table), charts.BuildLayout(table), nil, Options{})
	t.Cleanup(func() {
		srv.rateLimiter.stop()
		close(srv.stopCacheCleanup)
	})
	return srv
}

func get(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	srv.Server.Handler.ServeHTTP(rr, req)
	return rr
}

func TestIndexAndHealth(t *testing.T) {
	srv := testServer(t)

	rr := get(t, srv, "/")
	if rr.Code != http.StatusOK {
		t.Fatalf("index status=%d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Healthcare Dashboard") {
		t.Fatal("index body missing heading")
	}
	if !strings.Contains(rr.Body.String(), "Total Records: 3") {
		t.Fatal("index body missing record count")
	}

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		if rr := get(t, srv, path); rr.Code != http.StatusOK {
			t.Fatalf("%s status=%d", path, rr.Code)
		}
	}
}

func TestIndexNotFoundForUnknownPath(t *testing.T) {
	srv := testServer(t)
	if rr := get(t, srv, "/nope"); rr.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want 404", rr.Code)
	}
}

func TestSecurityHeaders(t *testing.T) {
	rr := get(t, testServer(t), "/")
	if rr.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatal("missing X-Content-Type-Options")
	}
	if rr.Header().Get("Content-Security-Policy") == "" {
		t.Fatal("missing Content-Security-Policy")
	}
}

func TestLayoutEndpoint(t *testing.T) {
	srv := testServer(t)
	rr := get(t, srv, "/api/layout")
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d", rr.Code)
	}

	var layout charts.Layout
	if err := json.Unmarshal(rr.Body.Bytes(), &layout); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if layout.Summary.TotalRecords != 3 {
		t.Fatalf("total records=%d", layout.Summary.TotalRecords)
	}
	if len(layout.GenderOptions) != 2 || len(layout.Slots) != 5 {
		t.Fatalf("layout=%+v", layout)
	}
	if layout.BillingSlider.Default != 200 {
		t.Fatalf("slider default=%v, want median 200", layout.BillingSlider.Default)
	}

	rr = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/layout", nil)
	srv.Server.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST status=%d, want 405", rr.Code)
	}
}

func TestChartEndpoint(t *testing.T) {
	srv := testServer(t)

	rr := get(t, srv, "/api/charts/age-distribution?gender=Male")
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	var spec charts.Spec
	if err := json.Unmarshal(rr.Body.Bytes(), &spec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if spec.Empty || len(spec.Series) != 1 || spec.Series[0].Name != "Male" {
		t.Fatalf("spec=%+v", spec)
	}
}

func TestChartEndpointEmptyResult(t *testing.T) {
	rr := get(t, testServer(t), "/api/charts/billing-distribution?billing=1")
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d", rr.Code)
	}
	var spec charts.Spec
	if err := json.Unmarshal(rr.Body.Bytes(), &spec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !spec.Empty {
		t.Fatal("expected explicit empty spec, not an error")
	}
}

func TestChartEndpointTrendsSorted(t *testing.T) {
	rr := get(t, testServer(t), "/api/charts/admission-trends?type=bar")
	var spec charts.Spec
	if err := json.Unmarshal(rr.Body.Bytes(), &spec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if spec.Kind != charts.KindBar {
		t.Fatalf("kind=%s", spec.Kind)
	}
	want := []string{"2023-01", "2023-02", "2023-03"}
	if len(spec.Series) != 1 || strings.Join(spec.Series[0].X, ",") != strings.Join(want, ",") {
		t.Fatalf("buckets=%v, want %v", spec.Series, want)
	}
}

func TestChartEndpointErrors(t *testing.T) {
	srv := testServer(t)
	cases := []struct {
		path string
		want int
	}{
		{"/api/charts/unknown-slot", http.StatusNotFound},
		{"/api/charts/", http.StatusNotFound},
		{"/api/charts/age-distribution/extra", http.StatusNotFound},
		{"/api/charts/billing-distribution?billing=lots", http.StatusBadRequest},
		{"/api/charts/admission-trends?type=scatter", http.StatusBadRequest},
	}
	for _, tc := range cases {
		if rr := get(t, srv, tc.path); rr.Code != tc.want {
			t.Fatalf("%s: status=%d, want %d", tc.path, rr.Code, tc.want)
		}
	}
}

func TestChartEndpointCaches(t *testing.T) {
	srv := testServer(t)
	first := get(t, srv, "/api/charts/condition-distribution?gender=Female")
	if srv.specCache.Len() != 1 {
		t.Fatalf("cache size=%d, want 1", srv.specCache.Len())
	}
	second := get(t, srv, "/api/charts/condition-distribution?gender=Female")
	if first.Body.String() != second.Body.String() {
		t.Fatal("cached response differs from rendered response")
	}
}

func TestRateLimiting(t *testing.T) {
	srv := testServer(t)
	var last int
	for i := 0; i < requestsPerMinute+1; i++ {
		last = get(t, srv, "/api/charts/age-distribution").Code
	}
	if last != http.StatusTooManyRequests {
		t.Fatalf("status=%d, want 429 after limit exceeded", last)
	}
}
