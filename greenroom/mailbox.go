package greenroom

import (
	"sync"

	"github.com/gammazero/deque"
)

// mailbox is a fixed-capacity FIFO of messages for one actor. push
// never blocks: it reports false once the mailbox is at capacity. pop
// never blocks either; callers only call it when the ready-queue
// protocol has already established non-emptiness.
//
// The backing store is a gammazero/deque.Deque, which is itself a
// doubling circular buffer; the capacity ceiling below is a policy
// this type enforces on top of that, not something the deque does on
// its own.
type mailbox struct {
	mu       sync.Mutex
	q        deque.Deque[message]
	capacity int
}

func newMailbox(capacity int) *mailbox {
	return &mailbox{capacity: capacity}
}

// push enqueues msg, returning false iff the mailbox is already at
// capacity.
func (m *mailbox) push(msg message) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.q.Len() >= m.capacity {
		return false
	}
	m.q.PushBack(msg)
	return true
}

// pop removes and returns the oldest message. Precondition: the
// mailbox is non-empty.
func (m *mailbox) pop() message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.q.PopFront()
}

// empty reports whether the mailbox currently holds no messages.
func (m *mailbox) empty() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.q.Len() == 0
}
