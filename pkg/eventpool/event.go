// Package eventpool implements an in-process publish/subscribe event pool.
//
// Producers raise events by numeric identifier; registered handlers for that
// identifier are invoked in subscription order with the event's sender and
// payload. Delivery is either deferred — Fire enqueues, a later Update drains
// on the owning thread — or immediate via FireNow. Handlers may unsubscribe
// any handler on the chain, including themselves, while a dispatch of that
// very chain is in flight.
package eventpool

// Event is a dispatchable payload, classified by its numeric ID.
//
// Payloads are expected to be pointer-shaped: the pool tracks in-flight
// dispatches by interface identity, and pooled payloads come from a recycler
// that hands out pointers.
type Event interface {
	ID() int
}

// Handler consumes a dispatched event. The sender is whatever the producer
// passed to Fire or FireNow.
//
// Handler identity, used for duplicate detection and unsubscription, is the
// function's code pointer: the same named function or stored func value
// compares equal. Closures instantiated from the same source literal share
// one identity even when they capture different variables.
type Handler func(sender any, e Event)

// Recycler takes back payloads after dispatch. The pool calls Release
// exactly once per dispatched payload, after every handler for it has run.
type Recycler interface {
	Release(e Event)
}

// RecyclerFunc adapts a plain function to the Recycler interface.
type RecyclerFunc func(e Event)

func (f RecyclerFunc) Release(e Event) { f(e) }

// pendingEvent pairs a sender with its payload while it waits in the queue.
type pendingEvent struct {
	sender any
	event  Event
}
