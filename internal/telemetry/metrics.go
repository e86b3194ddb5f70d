package telemetry

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PhaseMetrics is a prometheus.Collector exposing per-phase scan timings.
// It reuses the constant-metric shape of the teacher's poolstats.Collector
// (one prometheus.Desc per series, populated fresh on every Collect) in
// place of pgxpool connection stats.
type PhaseMetrics struct {
	mu    sync.Mutex
	phase map[string]phaseStat

	durationDesc *prometheus.Desc
	countDesc    *prometheus.Desc
}

type phaseStat struct {
	total time.Duration
	count int
}

// NewPhaseMetrics builds an empty PhaseMetrics collector, registerable on
// any prometheus.Registry.
func NewPhaseMetrics() *PhaseMetrics {
	return &PhaseMetrics{
		phase: make(map[string]phaseStat),
		durationDesc: prometheus.NewDesc(
			"depscan_phase_duration_seconds_total",
			"Cumulative wall-clock time spent in a scan phase.",
			[]string{"phase"}, nil),
		countDesc: prometheus.NewDesc(
			"depscan_phase_invocations_total",
			"Number of times a scan phase ran.",
			[]string{"phase"}, nil),
	}
}

// Observe records one phase invocation's duration.
func (m *PhaseMetrics) Observe(phase string, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.phase[phase]
	s.total += d
	s.count++
	m.phase[phase] = s
}

// Describe implements prometheus.Collector.
func (m *PhaseMetrics) Describe(ch chan<- *prometheus.Desc) {
	prometheus.DescribeByCollect(m, ch)
}

// Collect implements prometheus.Collector.
func (m *PhaseMetrics) Collect(ch chan<- prometheus.Metric) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for phase, s := range m.phase {
		ch <- prometheus.MustNewConstMetric(m.durationDesc, prometheus.CounterValue, s.total.Seconds(), phase)
		ch <- prometheus.MustNewConstMetric(m.countDesc, prometheus.CounterValue, float64(s.count), phase)
	}
}
