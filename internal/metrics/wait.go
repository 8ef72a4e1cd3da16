package metrics

import (
	"errors"
	"time"

	"github.com/goodnatureofminers/hydractl/internal/hydra"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	waitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "poll",
		Name:      "waits_total",
		Help:      "Count of polling waits by kind and outcome.",
	}, []string{"kind", "endpoint", "outcome"})
	waitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "poll",
		Name:      "wait_duration_seconds",
		Help:      "Time spent in polling waits.",
		Buckets:   []float64{1, 5, 15, 30, 60, 120, 180, 300, 600},
	}, []string{"kind", "endpoint", "outcome"})
)

// Wait tracks the polling primitives of one endpoint.
type Wait struct {
	endpoint string
}

// NewWait constructs a collector for waits against endpoint.
func NewWait(endpoint string) *Wait {
	if endpoint == "" {
		endpoint = unknown
	}
	return &Wait{endpoint: endpoint}
}

// ObserveWait records how a wait of the given kind ended.
func (m Wait) ObserveWait(kind string, err error, started time.Time) {
	outcome := outcomeOf(err)

	waitsTotal.WithLabelValues(kind, m.endpoint, outcome).Inc()
	waitDuration.WithLabelValues(kind, m.endpoint, outcome).Observe(time.Since(started).Seconds())
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, hydra.ErrTimeout):
		return "timeout"
	case errors.Is(err, hydra.ErrCancelled):
		return "cancelled"
	default:
		return "error"
	}
}
