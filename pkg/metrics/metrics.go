// Package metrics holds the Prometheus instrumentation for live operations.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "runsheet"

// Result labels.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultPartial = "partial"
)

// Metrics groups the collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	liveOps          *prometheus.CounterVec
	itemUpdates      *prometheus.CounterVec
	commitDuration   prometheus.Histogram
	eventTransitions *prometheus.CounterVec
}

// New creates the collectors on a private registry that also carries the
// Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{registry: reg}

	m.liveOps = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "live_operations_total",
		Help:      "Live timeline operations by action and result",
	}, []string{"action", "result"})
	m.itemUpdates = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "item_updates_total",
		Help:      "Timeline item writes issued by the commit layer by result",
	}, []string{"result"})
	m.commitDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "commit_duration_seconds",
		Help:      "Time spent writing one batch of timeline item updates",
		Buckets:   prometheus.DefBuckets,
	})
	m.eventTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "event_transitions_total",
		Help:      "Event status transitions by requested status and result",
	}, []string{"status", "result"})

	reg.MustRegister(
		m.liveOps, m.itemUpdates, m.commitDuration, m.eventTransitions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry (used by tests).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveLiveOperation counts one live action.
func (m *Metrics) ObserveLiveOperation(action, result string) {
	if m == nil {
		return
	}
	m.liveOps.WithLabelValues(action, result).Inc()
}

// ObserveCommit records one batch write.
func (m *Metrics) ObserveCommit(d time.Duration, applied, failed int) {
	if m == nil {
		return
	}
	m.commitDuration.Observe(d.Seconds())
	m.itemUpdates.WithLabelValues(ResultSuccess).Add(float64(applied))
	m.itemUpdates.WithLabelValues(ResultFailure).Add(float64(failed))
}

// ObserveEventTransition counts one event status change request.
func (m *Metrics) ObserveEventTransition(status, result string) {
	if m == nil {
		return
	}
	m.eventTransitions.WithLabelValues(status, result).Inc()
}
