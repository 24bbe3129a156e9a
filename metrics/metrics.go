// Package metrics exposes Prometheus counters for the migration passes, the
// capture page and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "kympulse"

// Migration operations.
const (
	OpMigrate = "migrate"
	OpLink    = "link"
	OpReset   = "reset"
)

// Capture outcomes.
const (
	CaptureRecorded  = "recorded"
	CaptureDuplicate = "duplicate"
	CaptureSurvey    = "survey"
	CaptureFailed    = "failed"
)

// Manager owns the collectors and the registry they are registered on.
type Manager struct {
	registry *prometheus.Registry

	migrationRuns    *prometheus.CounterVec
	migrationRecords *prometheus.CounterVec
	migrationLatency *prometheus.HistogramVec
	captureEvents    *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// NewManager registers every collector on a fresh registry.
func NewManager() *Manager {
	m := &Manager{
		registry: prometheus.NewRegistry(),
		migrationRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "migration",
			Name:      "runs_total",
			Help:      "Migration passes by operation and outcome.",
		}, []string{"operation", "status"}),
		migrationRecords: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "migration",
			Name:      "records_total",
			Help:      "Records written by migration passes.",
		}, []string{"operation"}),
		migrationLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "migration",
			Name:      "duration_seconds",
			Help:      "Wall time of one migration pass.",
			Buckets:   []float64{0.1, 0.5, 1, 5, 15, 60, 300},
		}, []string{"operation"}),
		captureEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "capture",
			Name:      "events_total",
			Help:      "Capture page outcomes.",
		}, []string{"outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	m.registry.MustRegister(
		m.migrationRuns,
		m.migrationRecords,
		m.migrationLatency,
		m.captureEvents,
		m.httpRequests,
		m.httpDuration,
		collectors.NewGoCollector(),
	)
	return m
}

// ObserveMigration records one finished pass. Records written before a failure
// still count.
func (m *Manager) ObserveMigration(operation string, records int, elapsed time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.migrationRuns.WithLabelValues(operation, status).Inc()
	m.migrationRecords.WithLabelValues(operation).Add(float64(records))
	m.migrationLatency.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveCapture counts one capture page outcome.
func (m *Manager) ObserveCapture(outcome string) {
	m.captureEvents.WithLabelValues(outcome).Inc()
}

// ObserveHTTP records one served request.
func (m *Manager) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}
