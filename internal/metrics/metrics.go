// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/pathtrace/trace"
)

var (
	RunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pathtrace_runs_total",
		Help: "Total number of algorithm runs, labelled by algorithm.",
	}, []string{"algorithm"})

	RunSteps = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pathtrace_run_steps",
		Help:    "Number of steps recorded per run, labelled by algorithm.",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000},
	}, []string{"algorithm"})

	RunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pathtrace_run_duration_ms",
		Help:    "Algorithm run latency in milliseconds, labelled by algorithm.",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100, 500},
	}, []string{"algorithm"})

	NegativeCycles = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pathtrace_negative_cycles_total",
		Help: "Total number of runs that detected a reachable negative cycle.",
	})

	StoredRuns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pathtrace_stored_runs",
		Help: "Number of runs currently held by the server run store.",
	})

	Evictions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pathtrace_run_evictions_total",
		Help: "Total number of runs evicted from the server run store.",
	})
)

// ObserveRun records one finished run.
func ObserveRun(r trace.Result, elapsed time.Duration) {
	RunsTotal.WithLabelValues(r.Algorithm).Inc()
	RunSteps.WithLabelValues(r.Algorithm).Observe(float64(len(r.Steps)))
	RunDuration.WithLabelValues(r.Algorithm).Observe(float64(elapsed.Microseconds()) / 1000)
	if r.NegativeCycle {
		NegativeCycles.Inc()
	}
}
