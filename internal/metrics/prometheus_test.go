package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveRequest("/api/feeds", "GET", 200, time.Millisecond)
	m.StoreFallback("regulatory_feeds")
	m.RFPTransition("next")
	m.QuizSubmitted()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCounters(t *testing.T) {
	m := NewMetrics()

	m.ObserveRequest("/api/feeds", "GET", 200, time.Millisecond)
	m.ObserveRequest("/api/feeds", "GET", 200, time.Millisecond)
	m.StoreFallback("regulatory_feeds")
	m.RFPTransition("next")
	m.QuizSubmitted()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/api/feeds", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreFallbacks.WithLabelValues("regulatory_feeds")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RFPTransitions.WithLabelValues("next")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.QuizSubmissions))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := NewMetrics()
	m.StoreFallback("marketplace_cros")

	server := httptest.NewServer(m.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `nexus_catalog_store_fallbacks_total{key="marketplace_cros"} 1`)
}
