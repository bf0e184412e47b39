// Package prometheus exports event pool activity as Prometheus metrics.
package prometheus

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DefaultRegistry is the default Prometheus registry
	DefaultRegistry = prometheus.NewRegistry()

	// DefaultRegisterer is the default Prometheus registerer
	DefaultRegisterer = prometheus.WrapRegistererWith(prometheus.Labels{"service": "pulse"}, DefaultRegistry)

	metricsOnce sync.Once
	metrics     *Metrics
)

// Metrics holds all Prometheus metrics. Vectors are labeled by pool
// instance ID so several pools in one process stay distinguishable.
type Metrics struct {
	EventsFiredTotal      *prometheus.CounterVec
	EventsDispatchedTotal *prometheus.CounterVec
	EventsClearedTotal    *prometheus.CounterVec
	DispatchDuration      *prometheus.HistogramVec
	DispatchHandlers      *prometheus.HistogramVec
	PendingEvents         *prometheus.GaugeVec
	RegisteredHandlers    *prometheus.GaugeVec
}

// GetMetrics returns the global metrics instance
func GetMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = NewMetrics(DefaultRegisterer)
	})
	return metrics
}

// NewMetrics creates a new metrics collection
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = DefaultRegisterer
	}

	return &Metrics{
		EventsFiredTotal: promauto.With(registerer).NewCounterVec(
			prometheus.CounterOpts{
				Name: "pulse_events_fired_total",
				Help: "Total number of events enqueued with Fire",
			},
			[]string{"pool"},
		),
		EventsDispatchedTotal: promauto.With(registerer).NewCounterVec(
			prometheus.CounterOpts{
				Name: "pulse_events_dispatched_total",
				Help: "Total number of events dispatched to handlers",
			},
			[]string{"pool"},
		),
		EventsClearedTotal: promauto.With(registerer).NewCounterVec(
			prometheus.CounterOpts{
				Name: "pulse_events_cleared_total",
				Help: "Total number of pending events dropped by Clear",
			},
			[]string{"pool"},
		),
		DispatchDuration: promauto.With(registerer).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pulse_dispatch_duration_seconds",
				Help:    "Wall time spent dispatching one event through its handler chain",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"pool"},
		),
		DispatchHandlers: promauto.With(registerer).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pulse_dispatch_handlers",
				Help:    "Number of handlers invoked per dispatched event",
				Buckets: []float64{0, 1, 2, 4, 8, 16, 32},
			},
			[]string{"pool"},
		),
		PendingEvents: promauto.With(registerer).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pulse_pending_events",
				Help: "Current depth of the pending event queue",
			},
			[]string{"pool"},
		),
		RegisteredHandlers: promauto.With(registerer).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pulse_registered_handlers",
				Help: "Current number of registered handlers across all event ids",
			},
			[]string{"pool"},
		),
	}
}
