// Package metrics holds the prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for provider attempts and flow runs.
const (
	OutcomeFound    = "found"
	OutcomeNoData   = "no_data"
	OutcomeError    = "error"
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
)

var (
	ProviderAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "earnings_provider_attempts_total",
			Help: "Earnings provider lookups by provider and outcome",
		},
		[]string{"provider", "outcome"}, // outcome: found|no_data|error
	)

	ProviderLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "earnings_provider_latency_seconds",
			Help:    "Earnings provider request latency in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"provider"},
	)

	Lookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "earnings_lookups_total",
			Help: "Lookups across the whole provider chain",
		},
		[]string{"outcome", "source"}, // outcome: found|not_found|error
	)

	StoreOperations = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "earnings_store_operation_seconds",
			Help:    "Event document store operation latency in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"operation", "status"}, // operation: read|write, status: success|error
	)

	FlowRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "earnings_add_flow_runs_total",
			Help: "Add-event flow runs by final state",
		},
		[]string{"state"},
	)

	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "earnings_http_requests_total",
			Help: "HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "earnings_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// Registry is the registry every collector above is registered with.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(
		ProviderAttempts,
		ProviderLatency,
		Lookups,
		StoreOperations,
		FlowRuns,
		HTTPRequests,
		HTTPDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler serves the registry in the prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
