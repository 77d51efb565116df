// Package metrics exposes the Prometheus instrumentation for the API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles all Prometheus metrics behind a private registry so
// multiple collectors can coexist in tests.
type Collector struct {
	registry *prometheus.Registry

	// Request metrics
	RequestDuration *prometheus.HistogramVec
	RequestCount    *prometheus.CounterVec

	// Domain metrics
	ConsultationsTotal   prometheus.Counter
	ConsultationFailures prometheus.Counter
	PrinciplesServed     prometheus.Counter
	GoldenProgressions   prometheus.Counter
}

// NewCollector creates and registers all metrics.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),

		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "endpoint", "status"},
		),
		RequestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests processed",
			},
			[]string{"method", "endpoint", "status"},
		),
		ConsultationsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "council_consultations_total",
				Help: "Total council consultations completed",
			},
		),
		ConsultationFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "council_consultation_failures_total",
				Help: "Total council consultations that failed",
			},
		),
		PrinciplesServed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "principles_requests_total",
				Help: "Total principle listing requests served",
			},
		),
		GoldenProgressions: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "golden_progressions_total",
				Help: "Total golden ratio progression calculations served",
			},
		),
	}

	c.registry.MustRegister(
		c.RequestDuration,
		c.RequestCount,
		c.ConsultationsTotal,
		c.ConsultationFailures,
		c.PrinciplesServed,
		c.GoldenProgressions,
	)

	return c
}

// Handler returns the Prometheus exposition handler for this collector.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
