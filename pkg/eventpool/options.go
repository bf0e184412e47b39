package eventpool

import (
	"github.com/pulseio/pulse/pkg/failfast"
	"github.com/pulseio/pulse/pkg/logging"
)

// Option configures a Pool at construction.
type Option func(*Pool)

// WithRecycler attaches the recycler that takes back dispatched payloads.
// The pool calls Release exactly once per dispatched payload. Without a
// recycler, payload disposal is the producer's business.
func WithRecycler(r Recycler) Option {
	failfast.NotNil(r, "recycler")
	return func(p *Pool) {
		p.recycler = r
	}
}

// WithLogger replaces the pool's logger.
func WithLogger(l logging.Logger) Option {
	failfast.NotNil(l, "logger")
	return func(p *Pool) {
		p.logger = l
	}
}

// WithRecorder attaches a metrics recorder.
func WithRecorder(r Recorder) Option {
	failfast.NotNil(r, "recorder")
	return func(p *Pool) {
		p.recorder = r
	}
}

// WithDefaultHandler sets the fallback handler invoked when an event has no
// registered chain. Equivalent to calling SetDefaultHandler after New.
func WithDefaultHandler(h Handler) Option {
	failfast.NotNil(h, "default handler")
	return func(p *Pool) {
		p.fallback = h
	}
}
