// Package metrics exposes the engine's prometheus counters. All record
// methods are nil-safe so the engine can run without metrics in tests.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the counters of the decision engine.
type Metrics struct {
	registry    *prometheus.Registry
	requests    *prometheus.CounterVec
	clicks      *prometheus.CounterVec
	impressions prometheus.Counter
}

// New creates a metrics set on a private registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "admarket",
			Name:      "ad_requests_total",
			Help:      "Ad requests by fill outcome.",
		}, []string{"outcome"}),
		clicks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "admarket",
			Name:      "clicks_total",
			Help:      "Adjudicated clicks by status and reject reason.",
		}, []string{"status", "reason"}),
		impressions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "admarket",
			Name:      "impressions_total",
			Help:      "Recorded impression events.",
		}),
	}
}

// RecordRequest counts an ad request outcome (filled or a no-fill reason).
func (m *Metrics) RecordRequest(outcome string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(outcome).Inc()
}

// RecordClick counts an adjudicated click.
func (m *Metrics) RecordClick(status, reason string) {
	if m == nil {
		return
	}
	if reason == "" {
		reason = "none"
	}
	m.clicks.WithLabelValues(status, reason).Inc()
}

// RecordImpression counts a recorded impression.
func (m *Metrics) RecordImpression() {
	if m == nil {
		return
	}
	m.impressions.Inc()
}

// Handler serves the registry in prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
