package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics of the API transport.
type Metrics struct {
	CallsTotal    *prometheus.CounterVec
	CallDuration  *prometheus.HistogramVec
	CarrierErrors *prometheus.CounterVec
}

// NewMetrics creates and registers Prometheus metrics. Call once per process;
// promauto panics on double registration.
func NewMetrics() *Metrics {
	return &Metrics{
		CallsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "novapost_api_calls_total",
				Help: "Total number of API calls by model, method, and status",
			},
			[]string{"model", "method", "status"},
		),
		CallDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "novapost_api_call_duration_seconds",
				Help:    "API call duration in seconds by model and method",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"model", "method"},
		),
		CarrierErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "novapost_carrier_errors_total",
				Help: "Total carrier-rejected API calls by model and method",
			},
			[]string{"model", "method"},
		),
	}
}

// RecordCall records one API round trip.
func (m *Metrics) RecordCall(model, method, status string, seconds float64) {
	m.CallsTotal.WithLabelValues(model, method, status).Inc()
	m.CallDuration.WithLabelValues(model, method).Observe(seconds)
}

// RecordError records a carrier rejection.
func (m *Metrics) RecordError(model, method string) {
	m.CarrierErrors.WithLabelValues(model, method).Inc()
}
