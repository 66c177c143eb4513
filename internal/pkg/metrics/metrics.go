// Package metrics holds the Prometheus collectors of the sales service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Job run outcomes used as the "result" label of StaleDraftRuns.
const (
	ResultOK     = "ok"
	ResultFailed = "failed"
)

type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	StaleDraftRuns      *prometheus.CounterVec
	StaleDraftsCanceled prometheus.Counter
}

// New creates the collectors and registers them on reg. It panics when a
// collector with the same name is already registered there.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Number of HTTP requests served",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		StaleDraftRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stale_draft_cancellation_runs_total",
				Help: "Number of stale draft sweeps",
			},
			[]string{"result"}, // ok|failed
		),
		StaleDraftsCanceled: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "stale_drafts_canceled_total",
				Help: "Number of draft orders canceled for being stale",
			},
		),
	}

	reg.MustRegister(m.HTTPRequests, m.HTTPRequestDuration, m.StaleDraftRuns, m.StaleDraftsCanceled)
	return m
}
