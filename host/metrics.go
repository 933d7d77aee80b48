package host

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/temporalgraph/chronosolve/temporal"
)

// Metrics recorded at the worker boundary, never inside the pure solver
// packages. Grounded on the AleutianFOSS example repo's
// services/trace/agent/routing/metrics.go: promauto-registered package vars,
// here one CounterVec labeled by result status, plain counters for discarded
// assertions, stale results and crashes, and a latency histogram.
var (
	solveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chronosolve",
		Subsystem: "host",
		Name:      "solve_total",
		Help:      "Total solve requests completed, by result status.",
	}, []string{"status"})

	discardedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "chronosolve",
		Subsystem: "host",
		Name:      "assertions_discarded_total",
		Help:      "Total assertions discarded across all completed solves.",
	})

	staleResultsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "chronosolve",
		Subsystem: "host",
		Name:      "stale_results_discarded_total",
		Help:      "Total results discarded because their request_id was no longer current.",
	})

	crashesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "chronosolve",
		Subsystem: "host",
		Name:      "worker_crashes_total",
		Help:      "Total times the solve worker recovered from a panic.",
	})

	solveLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "chronosolve",
		Subsystem: "host",
		Name:      "solve_latency_ms",
		Help:      "Wall-clock solve latency in milliseconds, as reported by the result itself.",
		Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	})
)

func recordSolve(result *temporal.Result, discards int) {
	solveTotal.WithLabelValues(string(result.Status)).Inc()
	discardedTotal.Add(float64(discards))
	solveLatency.Observe(result.ElapsedMS)
}

func recordStaleResult() {
	staleResultsTotal.Inc()
}

func recordCrash() {
	crashesTotal.Inc()
}
