package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus collectors on the default registry. Trackers feed the counters;
// the flow engine observes per-run totals on termination.
var (
	searchSteps = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flownet_search_steps_total",
		Help: "Total number of nodes examined by augmenting-path searches.",
	})

	visitedNodes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flownet_visited_nodes_total",
		Help: "Total number of distinct nodes first visited during searches.",
	})

	augmentations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flownet_augmentations_total",
		Help: "Total number of successful augmentations across all runs.",
	})

	flowPushed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flownet_flow_pushed_total",
		Help: "Total flow pushed along augmenting paths across all runs.",
	})

	computations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flownet_computations_total",
		Help: "Completed max-flow computations, labelled by search strategy.",
	}, []string{"strategy"})

	computeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "flownet_compute_duration_seconds",
		Help:    "End-to-end max-flow computation latency in seconds.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	})
)

// ObserveComputation records one completed computation for the given search
// strategy and its end-to-end duration.
func ObserveComputation(strategy string, elapsed time.Duration) {
	computations.WithLabelValues(strategy).Inc()
	computeDuration.Observe(elapsed.Seconds())
}
