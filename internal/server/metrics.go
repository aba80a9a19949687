package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the server's Prometheus collectors. Each Server owns
// its registry so that tests can build servers independently.
type metrics struct {
	registry *prometheus.Registry

	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	resolutions *prometheus.CounterVec
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &metrics{
		registry: reg,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "shonamorph_http_requests_total",
			Help: "HTTP requests by path and status code.",
		}, []string{"path", "code"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "shonamorph_http_request_duration_seconds",
			Help:    "HTTP request latency by path.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path"}),
		resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "shonamorph_resolutions_total",
			Help: "Noun-class resolutions by outcome (resolved, unresolved, error).",
		}, []string{"outcome"}),
	}
}

func (m *metrics) observeResolution(resolved bool) {
	if resolved {
		m.resolutions.WithLabelValues("resolved").Inc()
	} else {
		m.resolutions.WithLabelValues("unresolved").Inc()
	}
}
