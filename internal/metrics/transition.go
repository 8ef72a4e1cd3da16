package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cluster",
		Name:      "transitions_total",
		Help:      "Count of single-hop head transitions.",
	}, []string{"edge", "status"})
	transitionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "cluster",
		Name:      "transition_duration_seconds",
		Help:      "Duration of single-hop head transitions.",
		Buckets:   []float64{1, 10, 30, 60, 120, 180, 300, 600, 900},
	}, []string{"edge", "status"})
	resetsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cluster",
		Name:      "resets_total",
		Help:      "Count of cluster reconciliations by target state.",
	}, []string{"target", "outcome"})
)

// Cluster tracks transitions and reconciliations.
type Cluster struct{}

// NewCluster constructs a cluster collector.
func NewCluster() *Cluster {
	return &Cluster{}
}

// ObserveTransition records a single hop such as "Idle->Initial".
func (Cluster) ObserveTransition(edge string, err error, started time.Time) {
	status := statusOf(err)

	transitionsTotal.WithLabelValues(edge, status).Inc()
	transitionDuration.WithLabelValues(edge, status).Observe(time.Since(started).Seconds())
}

// ObserveReset records the outcome of a reconciliation towards target.
func (Cluster) ObserveReset(target string, err error) {
	if target == "" {
		target = unknown
	}
	resetsTotal.WithLabelValues(target, outcomeOf(err)).Inc()
}
