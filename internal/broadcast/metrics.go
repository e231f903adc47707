package broadcast

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Broadcast reasons used as metric labels.
const (
	reasonTick      = "tick"
	reasonTrigger   = "trigger"
	reasonSubscribe = "subscribe"
)

// Metrics instruments the hub.
type Metrics struct {
	subscribers prometheus.Gauge
	broadcasts  *prometheus.CounterVec
	failures    prometheus.Counter
	dropped     prometheus.Counter
}

// NewMetrics registers the hub collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		subscribers: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "forex",
			Subsystem: "rate_stream",
			Name:      "subscribers",
			Help:      "Number of connected rate stream subscribers",
		}),
		broadcasts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "forex",
			Subsystem: "rate_stream",
			Name:      "broadcasts_total",
			Help:      "Rate snapshots published, by reason",
		}, []string{"reason"}),
		failures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "forex",
			Subsystem: "rate_stream",
			Name:      "snapshot_failures_total",
			Help:      "Snapshots that could not be loaded from the rate store",
		}),
		dropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "forex",
			Subsystem: "rate_stream",
			Name:      "dropped_snapshots_total",
			Help:      "Queued snapshots discarded for slow subscribers",
		}),
	}
}
