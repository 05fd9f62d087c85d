// Package metrics bundles the engine's prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds the generation-side collectors. A nil Recorder is valid
// and records nothing, so callers never branch on metrics being enabled.
type Recorder struct {
	generations prometheus.Counter
	duration    prometheus.Histogram
	fallbacks   prometheus.Counter
	mutations   *prometheus.CounterVec
}

// New creates a Recorder and registers its collectors on reg.
func New(reg *prometheus.Registry) *Recorder {
	r := &Recorder{
		generations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kolam_generations_total",
			Help: "Total number of patterns generated.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name: "kolam_generation_duration_seconds",
			Help: "Time spent generating a pattern.",
		}),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kolam_solver_fallbacks_total",
			Help: "Solver cells filled by the tile-1 fallback instead of a free choice.",
		}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kolam_mutations_total",
			Help: "Total number of mutated patterns by mode.",
		}, []string{"mode"}),
	}
	reg.MustRegister(r.generations, r.duration, r.fallbacks, r.mutations)
	return r
}

// ObserveGeneration records one completed generation.
func (r *Recorder) ObserveGeneration(d time.Duration, fallbacks int) {
	if r == nil {
		return
	}
	r.generations.Inc()
	r.duration.Observe(d.Seconds())
	if fallbacks > 0 {
		r.fallbacks.Add(float64(fallbacks))
	}
}

// ObserveMutation records one applied mutation.
func (r *Recorder) ObserveMutation(mode string) {
	if r == nil {
		return
	}
	r.mutations.WithLabelValues(mode).Inc()
}
