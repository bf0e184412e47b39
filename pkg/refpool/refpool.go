// Package refpool implements a reference pool: typed free lists of
// reusable objects with acquire/release semantics and per-type statistics.
//
// It is the stock implementation of the recycler collaborator the event
// pool releases dispatched payloads to.
package refpool

import (
	"reflect"
	"sync"

	"github.com/pulseio/pulse/pkg/failfast"
)

// Reference is implemented by poolable objects. Reset must return the
// object to its zero state; it is called on release, before the object
// goes back on the free list.
type Reference interface {
	Reset()
}

// Stats is a snapshot of one type's pool counters.
type Stats struct {
	Created  int64
	Acquired int64
	Released int64
	Free     int
}

// InUse returns how many acquired references have not been released.
func (s Stats) InUse() int64 {
	return s.Acquired - s.Released
}

// collection is the free list and counters for a single concrete type.
type collection struct {
	free     []Reference
	created  int64
	acquired int64
	released int64
}

// Pool holds a free list per concrete reference type.
type Pool struct {
	mu          sync.Mutex
	collections map[reflect.Type]*collection

	// strict makes Release panic on a reference that is already on the
	// free list, at the cost of an O(n) scan.
	strict bool
}

// New creates an empty reference pool. With strict enabled, double-release
// is detected and panics instead of corrupting the free list.
func New(strict bool) *Pool {
	return &Pool{
		collections: make(map[reflect.Type]*collection),
		strict:      strict,
	}
}

// Acquire takes a T from the free list, creating one if the list is empty.
// T must be a pointer type.
func Acquire[T Reference](p *Pool) T {
	var zero T
	t := reflect.TypeOf(zero)
	failfast.If(t != nil && t.Kind() == reflect.Ptr, "refpool: %v is not a pointer type", t)

	p.mu.Lock()
	c := p.collection(t)
	c.acquired++
	if n := len(c.free); n > 0 {
		ref := c.free[n-1]
		c.free[n-1] = nil
		c.free = c.free[:n-1]
		p.mu.Unlock()
		return ref.(T)
	}
	c.created++
	p.mu.Unlock()

	return reflect.New(t.Elem()).Interface().(T)
}

// Release resets ref and puts it back on its type's free list.
func (p *Pool) Release(ref Reference) {
	failfast.NotNil(ref, "reference")
	ref.Reset()

	t := reflect.TypeOf(ref)
	p.mu.Lock()
	defer p.mu.Unlock()

	c := p.collection(t)
	if p.strict {
		for _, freed := range c.free {
			failfast.If(freed != ref, "refpool: double release of %v", t)
		}
	}
	c.released++
	c.free = append(c.free, ref)
}

// StatsFor returns the counters for ref's concrete type.
func (p *Pool) StatsFor(ref Reference) Stats {
	p.mu.Lock()
	defer p.mu.Unlock()

	c, ok := p.collections[reflect.TypeOf(ref)]
	if !ok {
		return Stats{}
	}
	return Stats{
		Created:  c.created,
		Acquired: c.acquired,
		Released: c.released,
		Free:     len(c.free),
	}
}

// Drop discards every free list. Outstanding references are unaffected.
func (p *Pool) Drop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, c := range p.collections {
		c.free = nil
	}
}

// collection returns the entry for t, creating it on first use.
// Caller holds p.mu.
func (p *Pool) collection(t reflect.Type) *collection {
	c, ok := p.collections[t]
	if !ok {
		c = &collection{}
		p.collections[t] = c
	}
	return c
}
