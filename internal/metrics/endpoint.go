// Package metrics holds the Prometheus collectors of hydractl.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "hydractl"
	unknown   = "unknown"
)

var (
	endpointRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "endpoint",
		Name:      "operations_total",
		Help:      "Count of Hydra and L1 API operations.",
	}, []string{"operation", "api", "endpoint", "status"})
	endpointRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "endpoint",
		Name:      "operation_duration_seconds",
		Help:      "Duration of Hydra and L1 API operations, retries included.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "api", "endpoint", "status"})
)

// Endpoint tracks calls made against one API endpoint.
type Endpoint struct {
	api      string
	endpoint string
}

// NewEndpoint constructs a collector for the given api ("hydra", "l1") and base URL.
func NewEndpoint(api, endpoint string) *Endpoint {
	if api == "" {
		api = unknown
	}
	if endpoint == "" {
		endpoint = unknown
	}
	return &Endpoint{api: api, endpoint: endpoint}
}

// Observe records a single operation outcome and duration.
func (m Endpoint) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)

	endpointRequestsTotal.WithLabelValues(operation, m.api, m.endpoint, status).Inc()
	endpointRequestDuration.WithLabelValues(operation, m.api, m.endpoint, status).Observe(time.Since(started).Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
