// Package metrics exposes prometheus instrumentation for the analysis
// tools: engine timings, comparison outcomes, and simulation volume. The
// computational engines stay metrics-free; callers record around them.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metrics for the reliability tools.
type Registry struct {
	AnalysesTotal        *prometheus.CounterVec
	EngineDuration       *prometheus.HistogramVec
	EngineCutSets        *prometheus.HistogramVec
	ComparisonMismatches prometheus.Counter
	SimulationTrials     prometheus.Counter
	SimulationDuration   prometheus.Histogram

	registry *prometheus.Registry
}

// NewRegistry creates a registry with its own prometheus backing registry.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}

	r.AnalysesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "reliability_analyses_total",
			Help: "Total cut-set analyses run",
		},
		[]string{"engine", "status"},
	)

	r.EngineDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reliability_engine_duration_seconds",
			Help:    "Cut-set engine wall-clock duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0},
		},
		[]string{"engine"},
	)

	r.EngineCutSets = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reliability_engine_cut_sets",
			Help:    "Minimal cut sets found per analysis",
			Buckets: []float64{1, 5, 10, 50, 100, 500},
		},
		[]string{"engine"},
	)

	r.ComparisonMismatches = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "reliability_comparison_mismatches_total",
			Help: "Comparisons where the two engines disagreed",
		},
	)

	r.SimulationTrials = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "reliability_simulation_trials_total",
			Help: "Monte Carlo trials executed",
		},
	)

	r.SimulationDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reliability_simulation_duration_seconds",
			Help:    "Monte Carlo run duration in seconds",
			Buckets: []float64{0.01, 0.1, 1.0, 10.0, 60.0, 300.0},
		},
	)

	return r
}

// PrometheusRegistry exposes the backing registry for scraping.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// RecordEngineRun records one engine execution.
func (r *Registry) RecordEngineRun(engine string, duration time.Duration, cutSets int, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	r.AnalysesTotal.WithLabelValues(engine, status).Inc()
	if err == nil {
		r.EngineDuration.WithLabelValues(engine).Observe(duration.Seconds())
		r.EngineCutSets.WithLabelValues(engine).Observe(float64(cutSets))
	}
}

// RecordComparison records both halves of a comparison run and whether
// the engines agreed.
func (r *Registry) RecordComparison(mocusDuration, bddDuration time.Duration, mocusSets, bddSets int, match bool) {
	r.RecordEngineRun("mocus", mocusDuration, mocusSets, nil)
	r.RecordEngineRun("bdd", bddDuration, bddSets, nil)
	if !match {
		r.ComparisonMismatches.Inc()
	}
}

// RecordSimulation records a completed Monte Carlo run.
func (r *Registry) RecordSimulation(duration time.Duration, trials int) {
	r.SimulationDuration.Observe(duration.Seconds())
	r.SimulationTrials.Add(float64(trials))
}
