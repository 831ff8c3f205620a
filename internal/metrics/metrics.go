// Package metrics exposes the Prometheus collectors for the dashboard.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestsTotal counts HTTP requests by route and response status.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "caredash_http_requests_total",
		Help: "HTTP requests served, by path, method and status code.",
	}, []string{"path", "method", "status"})

	// ChartRenderSeconds observes time spent building a chart spec,
	// cache misses only.
	ChartRenderSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "caredash_chart_render_seconds",
		Help:    "Time spent filtering and aggregating one chart spec.",
		Buckets: prometheus.DefBuckets,
	}, []string{"chart"})

	// ChartCacheHits and ChartCacheMisses track the chart-spec LRU.
	ChartCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "caredash_chart_cache_hits_total",
		Help: "Chart specs served from the in-process cache.",
	})
	ChartCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "caredash_chart_cache_misses_total",
		Help: "Chart specs rebuilt on a cache miss.",
	})

	// DatasetRows reports the row count of the loaded table.
	DatasetRows = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "caredash_dataset_rows",
		Help: "Rows in the loaded dataset, including rows with missing fields.",
	})
)

// Handler serves the default Prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
