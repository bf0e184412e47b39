package eventpool

import "time"

// Recorder receives pool activity for metrics export. Implementations must
// be safe for use from the goroutines that call Fire; every other method is
// invoked from the drain thread.
//
// pkg/observability/prometheus provides the Prometheus-backed implementation.
type Recorder interface {
	// RecordFire is called once per successfully enqueued event.
	RecordFire(id int)

	// RecordDispatch is called once per dispatched event with the number
	// of handlers invoked and the wall time the dispatch took.
	RecordDispatch(id int, handlers int, d time.Duration)

	// RecordPending reports the pending-queue depth after it changes.
	RecordPending(depth int)

	// RecordHandlers reports the total registered handler count after a
	// subscribe or unsubscribe.
	RecordHandlers(total int)

	// RecordCleared is called by Clear with the number of dropped events.
	RecordCleared(n int)
}

// nopRecorder is the default when no recorder is attached.
type nopRecorder struct{}

func (nopRecorder) RecordFire(id int)                                    {}
func (nopRecorder) RecordDispatch(id int, handlers int, d time.Duration) {}
func (nopRecorder) RecordPending(depth int)                              {}
func (nopRecorder) RecordHandlers(total int)                             {}
func (nopRecorder) RecordCleared(n int)                                  {}
