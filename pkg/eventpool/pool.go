package eventpool

import (
	"time"

	"github.com/google/uuid"
	"github.com/pulseio/pulse/pkg/logging"
)

// Pool is an in-process event pool.
//
// Thread-safety follows a single-drain-thread model:
//   - Fire may be called from any goroutine; the pending queue is the only
//     shared state it touches and the queue carries its own lock.
//   - Subscribe, Unsubscribe, FireNow, Update, Clear and Shutdown mutate
//     the registry and cursor state without locking and must run on the
//     goroutine that owns the pool (the one calling Update), or be
//     externally synchronized with it.
type Pool struct {
	id   string
	mode Mode

	chains   map[int]*handlerChain
	total    int
	cursors  map[Event]*handlerNode
	pending  pendingQueue
	fallback Handler

	recycler Recycler
	logger   logging.Logger
	recorder Recorder
}

// New creates a pool with the given mode flags. The mode is immutable for
// the pool's lifetime.
func New(mode Mode, opts ...Option) *Pool {
	p := &Pool{
		id:       uuid.NewString(),
		mode:     mode,
		chains:   make(map[int]*handlerChain),
		cursors:  make(map[Event]*handlerNode),
		logger:   logging.Default(),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ID returns the pool's unique instance identifier, used as the metrics
// label and log prefix.
func (p *Pool) ID() string {
	return p.id
}

// Mode returns the policy flags the pool was created with.
func (p *Pool) Mode() Mode {
	return p.mode
}

// Subscribe registers h for events with the given id. New handlers are
// appended at the chain's tail, so they run after existing ones.
func (p *Pool) Subscribe(id int, h Handler) error {
	if h == nil {
		return errInvalidHandler
	}
	chain := p.chains[id]
	if chain == nil {
		chain = &handlerChain{}
		p.chains[id] = chain
	} else {
		if !p.mode.Has(AllowMultiHandler) {
			return errMultiHandler(id)
		}
		if !p.mode.Has(AllowDuplicateHandler) && chain.find(handlerKey(h)) != nil {
			return errDuplicateHandler(id)
		}
	}
	chain.append(h)
	p.total++
	p.recorder.RecordHandlers(p.total)
	return nil
}

// Unsubscribe removes h from the chain for id. If a dispatch on that chain
// is in flight, its cursor is redirected past the removed handler so the
// walk still visits every remaining handler exactly once.
func (p *Pool) Unsubscribe(id int, h Handler) error {
	if h == nil {
		return errInvalidHandler
	}
	chain := p.chains[id]
	if chain == nil {
		return errHandlerNotFound(id)
	}
	node := chain.find(handlerKey(h))
	if node == nil {
		return errHandlerNotFound(id)
	}
	p.redirectCursors(node)
	chain.remove(node)
	p.total--
	if chain.size == 0 {
		delete(p.chains, id)
	}
	p.recorder.RecordHandlers(p.total)
	return nil
}

// redirectCursors rewrites every live cursor whose next node is the one
// being removed to that node's successor. Redirections are staged in a
// separate map and merged afterward; the cursor map is never mutated while
// it is being scanned.
func (p *Pool) redirectCursors(node *handlerNode) {
	var moved map[Event]*handlerNode
	for e, next := range p.cursors {
		if next == node {
			if moved == nil {
				moved = make(map[Event]*handlerNode)
			}
			moved[e] = node.next
		}
	}
	for e, next := range moved {
		p.cursors[e] = next
	}
}

// Check reports whether h is subscribed to id.
func (p *Pool) Check(id int, h Handler) bool {
	if h == nil {
		return false
	}
	chain := p.chains[id]
	return chain != nil && chain.find(handlerKey(h)) != nil
}

// Count returns the number of handlers subscribed to id; 0 for an unknown id.
func (p *Pool) Count(id int) int {
	if chain := p.chains[id]; chain != nil {
		return chain.size
	}
	return 0
}

// HandlerCount returns the total number of registered handlers across all ids.
func (p *Pool) HandlerCount() int {
	return p.total
}

// EventCount returns the number of fired-but-not-yet-dispatched events.
func (p *Pool) EventCount() int {
	return p.pending.len()
}

// SetDefaultHandler replaces the fallback invoked when an event id has no
// registered chain. The fallback bypasses the mode policies. Nil disables it.
func (p *Pool) SetDefaultHandler(h Handler) {
	p.fallback = h
}

// Fire enqueues the event for dispatch on a later Update call and returns
// immediately. Safe to call from any goroutine, including from a handler
// running inside Update on the drain thread.
func (p *Pool) Fire(sender any, e Event) error {
	if e == nil {
		return errInvalidEvent
	}
	p.pending.enqueue(pendingEvent{sender: sender, event: e})
	p.recorder.RecordFire(e.ID())
	p.recorder.RecordPending(p.pending.len())
	return nil
}

// FireNow dispatches the event synchronously on the calling goroutine,
// bypassing the pending queue. Not safe to call concurrently with Update.
func (p *Pool) FireNow(sender any, e Event) error {
	if e == nil {
		return errInvalidEvent
	}
	return p.dispatch(sender, e)
}

// Update drains the pending queue, dispatching each entry in FIFO order.
// It processes what is queued at the moment of each check and never blocks
// waiting for new entries. A dispatch fault aborts the drain; the remaining
// entries stay queued for the next Update.
func (p *Pool) Update(elapsed, realElapsed time.Duration) error {
	for {
		pe, ok := p.pending.dequeue()
		if !ok {
			return nil
		}
		p.recorder.RecordPending(p.pending.len())
		if err := p.dispatch(pe.sender, pe.event); err != nil {
			return err
		}
	}
}

// dispatch walks the handler chain for e, invoking each handler exactly
// once, then releases the payload to the recycler.
//
// The cursor protocol: before a handler is invoked, its successor is
// written into the cursor map keyed by the payload. The handler may call
// Unsubscribe and mutate the chain under our feet; the cursor — redirected
// by Unsubscribe when needed — is the only resume point read afterward.
func (p *Pool) dispatch(sender any, e Event) error {
	start := time.Now()
	id := e.ID()
	invoked := 0
	unhandled := false

	if chain := p.chains[id]; chain != nil {
		for cur := chain.head; cur != nil; {
			p.cursors[e] = cur.next
			cur.handler(sender, e)
			invoked++
			cur = p.cursors[e]
		}
		delete(p.cursors, e)
	} else if p.fallback != nil {
		p.logger.Debugf("pool %s: event %d handled by default handler", p.id, id)
		p.fallback(sender, e)
		invoked++
	} else if !p.mode.Has(AllowNoHandler) {
		unhandled = true
	}

	// The payload goes back to the recycler before the no-handler fault is
	// raised, so the error path never leaks a payload.
	if p.recycler != nil {
		p.recycler.Release(e)
	}
	p.recorder.RecordDispatch(id, invoked, time.Since(start))
	if unhandled {
		return errNoHandlers(id)
	}
	return nil
}

// Clear drops all pending events without dispatching them and without
// releasing their payloads; disposal of dropped payloads is the caller's
// responsibility.
func (p *Pool) Clear() {
	if n := p.pending.clear(); n > 0 {
		p.logger.Warnf("pool %s: cleared %d pending events", p.id, n)
		p.recorder.RecordCleared(n)
	}
	p.recorder.RecordPending(0)
}

// Shutdown clears the pending queue and discards all handler chains,
// cursor state and the default handler. The pool is reusable afterward,
// as if freshly constructed.
func (p *Pool) Shutdown() {
	p.Clear()
	p.chains = make(map[int]*handlerChain)
	p.cursors = make(map[Event]*handlerNode)
	p.total = 0
	p.fallback = nil
	p.recorder.RecordHandlers(0)
	p.logger.Infof("pool %s: shut down", p.id)
}
