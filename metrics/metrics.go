// Package metrics provides centralized Prometheus metrics for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Calculation metrics track engine usage and outcomes.
var (
	// CalculationsTotal counts calculations by outcome ("ok" or an error code).
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "holdcalc_calculations_total",
			Help: "Total number of duration calculations",
		},
		[]string{"status"},
	)

	// CountableWords observes the unique countable word count per calculation.
	CountableWords = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "holdcalc_countable_words",
			Help:    "Unique countable words per calculation",
			Buckets: prometheus.LinearBuckets(0, 5, 12),
		},
	)

	// HoldSeconds observes the resulting total hold duration in seconds.
	HoldSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "holdcalc_hold_seconds",
			Help:    "Total hold duration per calculation in seconds",
			Buckets: prometheus.LinearBuckets(0, 2, 10),
		},
	)
)

// HTTP metrics track request patterns and performance.
var (
	// HTTPRequestsTotal counts HTTP requests by method, path, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "holdcalc_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "holdcalc_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
