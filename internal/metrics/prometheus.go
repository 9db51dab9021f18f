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

// Metrics holds all Prometheus metrics for the service.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	StoreFallbacks  *prometheus.CounterVec
	RFPTransitions  *prometheus.CounterVec
	QuizSubmissions prometheus.Counter
}

// NewMetrics creates the metrics on a fresh registry so that tests can build
// several instances side by side.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nexus",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"route", "method", "status"}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "nexus",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),

		StoreFallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nexus",
			Subsystem: "catalog",
			Name:      "store_fallbacks_total",
			Help:      "Reads served from built-in sample data because the store failed",
		}, []string{"key"}),

		RFPTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nexus",
			Subsystem: "rfp",
			Name:      "transitions_total",
			Help:      "RFP workflow actions applied",
		}, []string{"action"}),

		QuizSubmissions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "nexus",
			Subsystem: "quiz",
			Name:      "submissions_total",
			Help:      "Quiz answer sets scored",
		}),
	}
}

func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

func (m *Metrics) StoreFallback(key string) {
	if m == nil {
		return
	}
	m.StoreFallbacks.WithLabelValues(key).Inc()
}

func (m *Metrics) RFPTransition(action string) {
	if m == nil {
		return
	}
	m.RFPTransitions.WithLabelValues(action).Inc()
}

func (m *Metrics) QuizSubmitted() {
	if m == nil {
		return
	}
	m.QuizSubmissions.Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
