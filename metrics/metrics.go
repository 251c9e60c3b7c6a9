// Package metrics provides Prometheus metrics collection for the childcare API.
// It exports HTTP server metrics plus a few domain counters:
//   - http_request_total: Counter with method, path, and status labels
//   - http_request_duration_seconds: Histogram with method and path labels
//   - http_request_in_flight: Gauge for concurrent requests
//   - children_registered_total / schedules_generated_total / doses_recorded_total
//
// All metrics are automatically registered with the Prometheus default registry
// during package initialization.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_request_in_flight",
			Help: "Current in-flight requests",
		},
	)

	RateLimiterBucketsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rate_limiter_buckets_total",
			Help: "Total number of rate limiter buckets (IPs seen recently)",
		},
	)

	ChildrenRegisteredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "children_registered_total",
			Help: "Total children registered this session",
		},
	)

	SchedulesGeneratedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "schedules_generated_total",
			Help: "Total vaccination schedules generated",
		},
	)

	DosesRecordedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "doses_recorded_total",
			Help: "Dose log status changes by action",
		},
		[]string{"action"}, // given or skipped
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestTotals)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(HTTPRequestInFlight)
	prometheus.MustRegister(RateLimiterBucketsTotal)
	prometheus.MustRegister(ChildrenRegisteredTotal)
	prometheus.MustRegister(SchedulesGeneratedTotal)
	prometheus.MustRegister(DosesRecordedTotal)
}
