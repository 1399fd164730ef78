package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector registers and records all Prometheus metrics for the proxy:
// the dispatch pipeline, the rate limiter, and upstream provider calls.
type Collector struct {
	registry *prometheus.Registry

	// dispatchesTotal counts completed dispatches by operation and outcome.
	dispatchesTotal *prometheus.CounterVec

	// dispatchDuration is the end-to-end dispatch latency histogram.
	dispatchDuration *prometheus.HistogramVec

	// rateLimitDenied counts rate limiter denials.
	rateLimitDenied prometheus.Counter

	// upstreamAttempts counts individual provider calls, including retries.
	upstreamAttempts *prometheus.CounterVec

	// upstreamLatency is the per-attempt provider latency histogram.
	upstreamLatency *prometheus.HistogramVec
}

// NewCollector creates a collector registered against the given registry.
// If registry is nil, a fresh one is created.
func NewCollector(registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	c := &Collector{
		registry: registry,
		dispatchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "sportsgate",
				Name:      "dispatches_total",
				Help:      "Total number of dispatched operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
		dispatchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "sportsgate",
				Name:      "dispatch_duration_seconds",
				Help:      "End-to-end dispatch latency in seconds",
				Buckets:   []float64{0.005, 0.025, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"operation"},
		),
		rateLimitDenied: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "sportsgate",
				Name:      "ratelimit_denied_total",
				Help:      "Requests denied by the sliding-window rate limiter",
			},
		),
		upstreamAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "sportsgate",
				Name:      "upstream_attempts_total",
				Help:      "Individual upstream provider calls, retries included",
			},
			[]string{"operation"},
		),
		upstreamLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "sportsgate",
				Name:      "upstream_latency_seconds",
				Help:      "Per-attempt upstream latency in seconds",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"operation"},
		),
	}

	registry.MustRegister(
		c.dispatchesTotal,
		c.dispatchDuration,
		c.rateLimitDenied,
		c.upstreamAttempts,
		c.upstreamLatency,
	)

	return c
}

// RecordDispatch records one completed dispatch.
// Outcome is "success" or the envelope error code.
func (c *Collector) RecordDispatch(operation, outcome string, duration time.Duration) {
	if c == nil {
		return
	}
	c.dispatchesTotal.WithLabelValues(operation, outcome).Inc()
	c.dispatchDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordRateLimitDenial records one rate limiter denial.
func (c *Collector) RecordRateLimitDenial() {
	if c == nil {
		return
	}
	c.rateLimitDenied.Inc()
}

// RecordUpstreamAttempt records one provider call attempt and its latency.
func (c *Collector) RecordUpstreamAttempt(operation string, latency time.Duration) {
	if c == nil {
		return
	}
	c.upstreamAttempts.WithLabelValues(operation).Inc()
	c.upstreamLatency.WithLabelValues(operation).Observe(latency.Seconds())
}

// Handler returns the HTTP handler serving the /metrics endpoint.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
