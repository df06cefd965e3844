// Package metrics records request counts and latencies for backend calls.
// Each Metrics value owns its registry, so a CLI run or a test can gather
// exactly the series it produced.
package metrics

import (
	"io"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "providerkeys"

// Metrics holds the collectors for backend traffic.
type Metrics struct {
	registry *prometheus.Registry

	// RequestsTotal counts backend requests by endpoint, method and status.
	// Transport failures are recorded with status "error".
	RequestsTotal *prometheus.CounterVec

	// RequestDuration measures backend request latency.
	RequestDuration *prometheus.HistogramVec

	// ActiveProviders is the number of providers with at least one secret set,
	// as of the last successful lookup.
	ActiveProviders prometheus.Gauge
}

// New creates a Metrics with its own registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "backend_requests_total",
				Help:      "Total number of backend requests (by endpoint, method and status).",
			},
			[]string{"endpoint", "method", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "backend_request_duration_seconds",
				Help:      "Duration of backend requests in seconds.",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 15), // 1ms → ~16s
			},
			[]string{"endpoint", "method"},
		),
		ActiveProviders: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "active_providers",
				Help:      "Providers with at least one secret set at the last successful lookup.",
			},
		),
	}
	m.registry.MustRegister(m.RequestsTotal, m.RequestDuration, m.ActiveProviders)
	return m
}

// ObserveRequest records one backend request. status is the HTTP status code,
// or 0 when the request never got a response.
func (m *Metrics) ObserveRequest(endpoint, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.RequestsTotal.WithLabelValues(endpoint, method, label).Inc()
	m.RequestDuration.WithLabelValues(endpoint, method).Observe(elapsed.Seconds())
}

// SetActiveProviders records the size of the last active provider list.
func (m *Metrics) SetActiveProviders(n int) {
	if m == nil {
		return
	}
	m.ActiveProviders.Set(float64(n))
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteText writes all gathered metrics in the Prometheus text exposition format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
