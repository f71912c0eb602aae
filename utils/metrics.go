package utils

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	MetricsRegistry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "menu_app",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "menu_app",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "menu_app",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"method", "path"},
	)

	menuOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "menu_app",
			Subsystem: "menu",
			Name:      "operations_total",
			Help:      "Menu store operations by result.",
		},
		[]string{"operation", "result"},
	)
)

func init() {
	MetricsRegistry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		menuOperations,
		prometheus.NewGoCollector(),
	)
}

// MetricsHandler exposes the registry in the Prometheus text format.
func MetricsHandler() http.Handler {
	return promhttp.HandlerFor(MetricsRegistry, promhttp.HandlerOpts{})
}

func TrackInFlight(delta float64) {
	httpInFlight.Add(delta)
}

func ObserveRequest(method, path, status string, seconds float64) {
	httpRequests.WithLabelValues(method, path, status).Inc()
	httpDuration.WithLabelValues(method, path).Observe(seconds)
}

// RecordMenuOperation counts add/remove/clear calls. result is "ok" or an error class.
func RecordMenuOperation(operation, result string) {
	menuOperations.WithLabelValues(operation, result).Inc()
}
