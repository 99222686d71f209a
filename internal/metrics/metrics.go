// Package metrics exposes Prometheus instrumentation for the feed service.
// Register happens implicitly through promauto; Handler() serves the
// scrape endpoint at GET /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Queries counts engine evaluations by record kind and outcome.
var Queries = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "screenfeed_queries_total",
	Help: "Catalog queries evaluated, by record kind and outcome.",
}, []string{"kind", "status"})

// QueryDuration observes engine evaluation latency by record kind.
var QueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "screenfeed_query_duration_seconds",
	Help:    "Catalog query evaluation latency.",
	Buckets: prometheus.DefBuckets,
}, []string{"kind"})

// HTTPRequests counts HTTP requests by method, route and status code.
var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "screenfeed_http_requests_total",
	Help: "Total HTTP requests handled.",
}, []string{"method", "route", "status"})

// HTTPDuration observes HTTP latency by route.
var HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "screenfeed_http_request_duration_seconds",
	Help:    "HTTP request latency by route.",
	Buckets: prometheus.DefBuckets,
}, []string{"route"})

// CatalogRecords reports the loaded snapshot size by kind.
var CatalogRecords = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "screenfeed_catalog_records",
	Help: "Records in the loaded catalog snapshot, by kind.",
}, []string{"kind"})

// Handler returns the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveQuery records one engine evaluation.
func ObserveQuery(kind string, err error, elapsed time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	Queries.WithLabelValues(kind, status).Inc()
	QueryDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

// ObserveHTTP records one handled HTTP request.
func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}
