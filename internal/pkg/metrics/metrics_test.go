package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderMetrics_ObserveTransition(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := metrics.NewOrderMetrics(registry)

	m.ObserveTransition(order.StateNew, order.StateProcessing)
	m.ObserveTransition(order.StateNew, order.StateProcessing)
	m.ObserveTransition(order.StateProcessing, order.StateComplete)

	assert.InDelta(t, 2, testutil.ToFloat64(m.Transitions.WithLabelValues("new", "processing")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Transitions.WithLabelValues("processing", "complete")), 0)
}

func TestNewOrderMetrics_RegistersOnce(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics.NewOrderMetrics(registry)

	assert.Panics(t, func() { metrics.NewOrderMetrics(registry) })
}

func TestHandler_ExposesRegisteredCollectors(t *testing.T) {
	registry := prometheus.NewRegistry()
	jobs := metrics.NewJobMetrics(registry)
	jobs.Changed.Add(3)

	rec := httptest.NewRecorder()
	metrics.Handler(registry).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sales_jobs_orders_reclassified_total 3")
}
