package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/imamik/feuerwerk/internal/watcher"
)

// outcomeFatal labels sessions that ended without an outcome.
const outcomeFatal = "fatal"

// Metrics records session metrics on a registry owned by the caller.
type Metrics struct {
	registry *prometheus.Registry

	sessionTotal     *prometheus.CounterVec
	sessionDuration  prometheus.Histogram
	pollsTotal       *prometheus.CounterVec
	teardownFailures prometheus.Counter
}

// NewMetrics creates the session metrics and registers them on reg.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: reg,
		sessionTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "feuerwerk",
				Name:      "session_total",
				Help:      "Total number of load-test sessions by outcome",
			},
			[]string{"outcome"},
		),
		sessionDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "feuerwerk",
				Name:      "session_duration_seconds",
				Help:      "Duration of load-test sessions in seconds",
				Buckets:   prometheus.ExponentialBuckets(5, 2, 10), // 5s to ~42min
			},
		),
		pollsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "feuerwerk",
				Subsystem: "watch",
				Name:      "polls_total",
				Help:      "Total number of pod status polls by result",
			},
			[]string{"result"},
		),
		teardownFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "feuerwerk",
				Name:      "teardown_failures_total",
				Help:      "Total number of workloads that could not be deleted",
			},
		),
	}

	reg.MustRegister(m.sessionTotal, m.sessionDuration, m.pollsTotal, m.teardownFailures)
	return m
}

func (m *Metrics) observeTick(tick watcher.Tick) {
	if m == nil {
		return
	}
	m.pollsTotal.WithLabelValues(string(tick.Result)).Inc()
}

func (m *Metrics) observeSession(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.sessionTotal.WithLabelValues(outcome).Inc()
	m.sessionDuration.Observe(d.Seconds())
}

func (m *Metrics) observeTeardownFailure() {
	if m == nil {
		return
	}
	m.teardownFailures.Inc()
}

// Push sends every metric on the registry to a Pushgateway, grouped by run.
// The request is cancelled with ctx.
func (m *Metrics) Push(ctx context.Context, url, job, run string) error {
	if m == nil || url == "" {
		return nil
	}
	pusher := push.New(url, job).Gatherer(m.registry)
	if run != "" {
		pusher = pusher.Grouping("run", run)
	}
	if err := pusher.PushContext(ctx); err != nil {
		return fmt.Errorf("failed to push metrics to %s: %w", url, err)
	}
	return nil
}
