package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Run outcomes recorded on RunsTotal
const (
	OutcomeFound   = "found"
	OutcomeNoPath  = "no-path"
	OutcomeStopped = "stopped"
)

// Metrics holds the collectors a session reports to
type Metrics struct {
	StepsTotal        prometheus.Counter
	NodesVisitedTotal prometheus.Counter
	RunsTotal         *prometheus.CounterVec
	RunDuration       prometheus.Histogram
}

// NewMetrics registers the session collectors with reg
// A nil reg creates unregistered collectors
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		StepsTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "pathstep_steps_total",
			Help: "Search steps executed",
		}),
		NodesVisitedTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "pathstep_nodes_visited_total",
			Help: "Cells finalized across all runs",
		}),
		// Labels: algorithm id; "found", "no-path", "stopped"
		RunsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pathstep_runs_total",
			Help: "Completed or aborted runs by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),
		RunDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathstep_run_duration_seconds",
			Help:    "Wall time from run start to termination",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30},
		}),
	}
}

func (m *Metrics) observeStep(visited int) {
	if m == nil {
		return
	}
	m.StepsTotal.Inc()
	m.NodesVisitedTotal.Add(float64(visited))
}

func (m *Metrics) observeRun(algorithm, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.RunsTotal.WithLabelValues(algorithm, outcome).Inc()
	m.RunDuration.Observe(seconds)
}
