// Package metrics defines the Prometheus collectors of the sales service.
package metrics

import (
	"net/http"

	"sales/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sales"

// OrderMetrics counts automatic lifecycle transitions. It implements
// ports.TransitionObserver.
type OrderMetrics struct {
	Transitions *prometheus.CounterVec
}

func NewOrderMetrics(registerer prometheus.Registerer) *OrderMetrics {
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "orders",
		Name:      "state_transitions_total",
		Help:      "Total number of order state changes made by the state classifier.",
	}, []string{"from", "to"})

	registerer.MustRegister(transitions)
	return &OrderMetrics{Transitions: transitions}
}

func (m *OrderMetrics) ObserveTransition(from, to order.State) {
	m.Transitions.WithLabelValues(string(from), string(to)).Inc()
}

// ServerMetrics holds the HTTP request collectors.
type ServerMetrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
}

func NewServerMetrics(registerer prometheus.Registerer) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"route", "method", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"route", "method"})

	registerer.MustRegister(requests, latency)
	return &ServerMetrics{Requests: requests, LatencyMS: latency}
}

// JobMetrics counts reclassification runs and the orders they changed.
type JobMetrics struct {
	Runs    *prometheus.CounterVec
	Changed prometheus.Counter
}

func NewJobMetrics(registerer prometheus.Registerer) *JobMetrics {
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "jobs",
		Name:      "runs_total",
		Help:      "Total number of background job runs.",
	}, []string{"job", "result"})
	changed := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "jobs",
		Name:      "orders_reclassified_total",
		Help:      "Total number of orders changed by the reclassification job.",
	})

	registerer.MustRegister(runs, changed)
	return &JobMetrics{Runs: runs, Changed: changed}
}

// Handler serves the collectors registered with gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
