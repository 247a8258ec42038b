// Package metrics registers the engine's Prometheus collectors on the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeApplied = "applied"
	OutcomeFailed  = "failed"
)

var (
	// RequestsTotal tracks total HTTP requests
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// RequestDuration tracks HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Compensations counts compensating writes by operation and outcome.
	// A "failed" outcome needs manual reconciliation.
	Compensations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_compensations_total",
			Help: "Compensating writes issued after a failed recheck or second write",
		},
		[]string{"operation", "outcome"},
	)

	// CapacityRejections tracks requests refused for capacity or quota reasons.
	CapacityRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_capacity_rejections_total",
			Help: "Requests rejected by a capacity, quota or hold check",
		},
		[]string{"operation", "code"},
	)

	// SweeperReleased counts records released by the expiry sweeper.
	SweeperReleased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_sweeper_released_total",
			Help: "Lapsed records released by the expiry sweeper",
		},
		[]string{"resource"},
	)

	// CapacityCacheRequests tracks display cache lookups (hit, miss, error).
	CapacityCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "capacity_cache_requests_total",
			Help: "Display capacity cache lookups",
		},
		[]string{"result"},
	)

	// CircuitBreakerState tracks circuit breaker state (0=closed, 1=open, 2=half-open)
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
		},
		[]string{"circuit_name"},
	)
)
