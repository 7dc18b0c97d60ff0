package greenroom

import (
	"sync"

	"github.com/gammazero/deque"
)

// readyQueue is the global FIFO of actor identifiers eligible for
// execution. It is backed by a gammazero/deque.Deque, which already
// doubles its backing array on overflow, giving unbounded growth for
// free. cond is signaled on every push and broadcast at shutdown.
type readyQueue struct {
	mu   sync.Mutex
	cond *sync.Cond
	q    deque.Deque[ActorID]
}

func newReadyQueue() *readyQueue {
	rq := &readyQueue{}
	rq.cond = sync.NewCond(&rq.mu)
	return rq
}

// pushLocked enqueues id. Caller must hold rq.mu.
func (rq *readyQueue) pushLocked(id ActorID) {
	rq.q.PushBack(id)
}

// popLocked removes and returns the oldest id. Caller must hold rq.mu
// and have verified the queue is non-empty.
func (rq *readyQueue) popLocked() ActorID {
	return rq.q.PopFront()
}

// lenLocked returns the number of pending ids. Caller must hold rq.mu.
func (rq *readyQueue) lenLocked() int {
	return rq.q.Len()
}
