package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// HTTPRequestsTotal counts served HTTP requests by route pattern and status.
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "campusai",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests, labeled by method, route pattern and status code.",
	}, []string{"method", "route", "status"})

	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "campusai",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Time spent serving HTTP requests.",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
	}, []string{"method", "route"})

	// AIRequestsTotal counts assistant tasks by outcome (ok, invalid, failed).
	AIRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "campusai",
		Subsystem: "ai",
		Name:      "requests_total",
		Help:      "Total number of assistant tasks, labeled by task kind and result.",
	}, []string{"task", "result"})

	// AIGenerationDurationSeconds is the provider round trip per task, measured around the gateway call.
	AIGenerationDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "campusai",
		Subsystem: "ai",
		Name:      "generation_duration_seconds",
		Help:      "Time spent waiting on the generative model for one task.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 60},
	}, []string{"task"})

	GatewayErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "campusai",
		Subsystem: "gateway",
		Name:      "errors_total",
		Help:      "Total number of model gateway failures, labeled by internal reason.",
	}, []string{"reason"})
)

// Register registers the service metrics with the default Prometheus registry.
// Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			HTTPRequestsTotal,
			HTTPRequestDurationSeconds,
			AIRequestsTotal,
			AIGenerationDurationSeconds,
			GatewayErrorsTotal,
		)
	})
}
