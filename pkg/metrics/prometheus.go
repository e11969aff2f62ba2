// Package metrics exposes Prometheus collectors for the HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns a private registry and the collectors registered on it.
type Manager struct {
	namespace         string
	subsystem         string
	histogramBuckets  []float64
	runtimeCollectors bool
	registry          *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpInFlight        prometheus.Gauge
	rateLimited         prometheus.Counter
}

// NewManager creates a Manager with its own registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "item_api",
		subsystem:        "http",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	if m.runtimeCollectors {
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by route, method and status code",
		},
		[]string{"route", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"route", "method", "status_code"},
	)

	m.httpInFlight = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "requests_in_flight",
		Help:      "Number of HTTP requests currently being served",
	})

	m.rateLimited = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rate_limited_total",
		Help:      "Number of requests rejected by the rate limiter",
	})
}

// ObserveRequest records one finished request.
func (m *Manager) ObserveRequest(route, method string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	m.httpRequests.WithLabelValues(route, method, code).Inc()
	m.httpRequestDuration.WithLabelValues(route, method, code).Observe(duration.Seconds())
}

// IncInFlight and DecInFlight bracket a request.
func (m *Manager) IncInFlight() { m.httpInFlight.Inc() }
func (m *Manager) DecInFlight() { m.httpInFlight.Dec() }

// IncRateLimited counts a rejected request.
func (m *Manager) IncRateLimited() { m.rateLimited.Inc() }

// Registry returns the registry backing this Manager.
func (m *Manager) Registry() *prometheus.Registry { return m.registry }

// Handler serves the exposition format for this Manager's registry.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
