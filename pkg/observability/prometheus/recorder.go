package prometheus

import (
	"time"

	"github.com/pulseio/pulse/pkg/eventpool"
)

// PoolRecorder implements eventpool.Recorder on top of the shared metrics,
// pinning every observation to one pool's instance ID.
type PoolRecorder struct {
	pool string
	m    *Metrics
}

// NewPoolRecorder creates a recorder for the pool with the given instance
// ID, writing into the global metrics.
func NewPoolRecorder(poolID string) *PoolRecorder {
	return &PoolRecorder{pool: poolID, m: GetMetrics()}
}

// RecorderWith is NewPoolRecorder against a specific metrics collection,
// for tests and multi-registry setups.
func RecorderWith(poolID string, m *Metrics) *PoolRecorder {
	return &PoolRecorder{pool: poolID, m: m}
}

func (r *PoolRecorder) RecordFire(id int) {
	r.m.EventsFiredTotal.WithLabelValues(r.pool).Inc()
}

func (r *PoolRecorder) RecordDispatch(id int, handlers int, d time.Duration) {
	r.m.EventsDispatchedTotal.WithLabelValues(r.pool).Inc()
	r.m.DispatchDuration.WithLabelValues(r.pool).Observe(d.Seconds())
	r.m.DispatchHandlers.WithLabelValues(r.pool).Observe(float64(handlers))
}

func (r *PoolRecorder) RecordPending(depth int) {
	r.m.PendingEvents.WithLabelValues(r.pool).Set(float64(depth))
}

func (r *PoolRecorder) RecordHandlers(total int) {
	r.m.RegisteredHandlers.WithLabelValues(r.pool).Set(float64(total))
}

func (r *PoolRecorder) RecordCleared(n int) {
	r.m.EventsClearedTotal.WithLabelValues(r.pool).Add(float64(n))
}

var _ eventpool.Recorder = (*PoolRecorder)(nil)
