package eventpool

import "sync"

// pendingQueue is the mutex-guarded FIFO of fired-but-not-yet-dispatched
// events. Fire may enqueue from any goroutine; only the drain loop in
// Update dequeues.
//
// The mutex is held for single enqueue/dequeue operations only, never
// across a handler invocation. That is what lets a handler running inside
// Update call Fire on the same goroutine without deadlocking — the drain
// loop has already released the lock by the time the handler runs.
type pendingQueue struct {
	mu    sync.Mutex
	items []pendingEvent
	head  int
}

func (q *pendingQueue) enqueue(pe pendingEvent) {
	q.mu.Lock()
	q.items = append(q.items, pe)
	q.mu.Unlock()
}

// dequeue pops the head entry, reporting false when the queue is empty at
// the moment of check.
func (q *pendingQueue) dequeue() (pendingEvent, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.head >= len(q.items) {
		return pendingEvent{}, false
	}
	pe := q.items[q.head]
	q.items[q.head] = pendingEvent{}
	q.head++

	// Reclaim the drained prefix once it dominates the backing slice.
	if q.head > len(q.items)/2 && q.head >= 32 {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return pe, true
}

func (q *pendingQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}

// clear drops every pending entry and returns how many were dropped.
func (q *pendingQueue) clear() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := len(q.items) - q.head
	q.items = nil
	q.head = 0
	return n
}
