package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	m := New()

	m.ObserveLiveOperation("jump", ResultSuccess)
	m.ObserveLiveOperation("jump", ResultSuccess)
	m.ObserveLiveOperation("skip", ResultPartial)
	m.ObserveCommit(20*time.Millisecond, 3, 1)
	m.ObserveEventTransition("live", ResultSuccess)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.liveOps.WithLabelValues("jump", ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.liveOps.WithLabelValues("skip", ResultPartial)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.itemUpdates.WithLabelValues(ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.itemUpdates.WithLabelValues(ResultFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.eventTransitions.WithLabelValues("live", ResultSuccess)))
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveLiveOperation("jump", ResultSuccess)
		m.ObserveCommit(time.Second, 1, 0)
		m.ObserveEventTransition("live", ResultFailure)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveLiveOperation("complete", ResultSuccess)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `runsheet_live_operations_total{action="complete",result="success"} 1`)
}
