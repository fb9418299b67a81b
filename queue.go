package tickqueue

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// pad is cache-line padding to prevent false sharing between hot atomic
// fields that different goroutines spin on concurrently.
type pad [64]byte

// BoundedQueue is a fixed-capacity multi-producer multi-consumer FIFO
// queue built from a ring of generation-synchronized slots.
//
// Ticket t (a monotonically increasing integer) maps to ring position
// t mod N and generation t div N. Two atomic counters hand out tickets;
// the slot at each position serializes the handoff between whichever
// producer and consumer currently hold that position's ticket for the
// current generation. Capacity N is fixed at construction and never
// resized.
//
// All operations are safe to call concurrently from any number of
// goroutines. Enqueue and Dequeue never allocate once constructed.
type BoundedQueue[T any] struct {
	_          pad
	pushTicket atomix.Uint64
	_          pad
	popTicket  atomix.Uint64
	_          pad
	slots      []*slot[T]
	capacity   uint64
}

// NewQueue creates a BoundedQueue[T] of the given capacity using the spin
// synchronizer variant (busy-wait, no OS blocking primitive). Capacity
// must be >= 1.
//
// Use NewBlockingQueue, or Build with Builder.Blocking(), for a queue
// whose slots park on a condition variable instead of spinning.
func NewQueue[T any](capacity int) *BoundedQueue[T] {
	return Build[T](New(capacity))
}

// NewBlockingQueue creates a BoundedQueue[T] of the given capacity using
// the condition-variable synchronizer variant. Prefer this under
// oversubscription, or when integrating with an event loop that should
// not spend CPU busy-waiting.
func NewBlockingQueue[T any](capacity int) *BoundedQueue[T] {
	return Build[T](New(capacity).Blocking())
}

func newBoundedQueue[T any](capacity int, newSeq func() sequencer) *BoundedQueue[T] {
	if capacity < 1 {
		panic("tickqueue: capacity must be >= 1")
	}
	n := uint64(capacity)
	q := &BoundedQueue[T]{
		slots:    make([]*slot[T], n),
		capacity: n,
	}
	for i := range q.slots {
		q.slots[i] = newSlot[T](newSeq())
	}
	return q
}

// Cap returns the queue's usable capacity N.
func (q *BoundedQueue[T]) Cap() int { return int(q.capacity) }

// Producer returns a handle that can only enqueue into q. The handle is
// cheap to copy and safe to share across any number of goroutines.
func (q *BoundedQueue[T]) Producer() Producer[T] { return producerHandle[T]{q: q} }

// Consumer returns a handle that can only dequeue from q. The handle is
// cheap to copy and safe to share across any number of goroutines.
func (q *BoundedQueue[T]) Consumer() Consumer[T] { return consumerHandle[T]{q: q} }

// Enqueue adds an element to the queue.
//
// The ticket-acquisition phase is non-blocking: it returns ErrWouldBlock
// immediately if the queue is at capacity, rather than retrying
// internally. Once a ticket is obtained, the call may still wait briefly
// inside the target slot for the prior generation's consumer to finish
// releasing it (see slot.push).
func (q *BoundedQueue[T]) Enqueue(elem *T) error {
	ticket, ok := q.obtainPushTicket()
	if !ok {
		return ErrWouldBlock
	}
	s := q.slots[ticket%q.capacity]
	s.push(*elem, ticket/q.capacity)
	return nil
}

// Dequeue removes and returns the oldest unclaimed element.
//
// Returns (zero-value, ErrWouldBlock) immediately if the queue currently
// holds no unclaimed elements. No blocking is performed at this layer;
// callers that want to wait should retry with backoff.
func (q *BoundedQueue[T]) Dequeue() (T, error) {
	ticket, ok := q.obtainPopTicket()
	if !ok {
		var zero T
		return zero, ErrWouldBlock
	}
	s := q.slots[ticket%q.capacity]
	return s.pop(ticket / q.capacity), nil
}

// obtainPushTicket loops loading both counters and attempting a CAS on
// the push counter, exactly following spec.md's push-ticket algorithm:
// a transient push < pop observation (caused by the two loads not being
// a single atomic read) is tolerated by using signed arithmetic for the
// capacity comparison.
func (q *BoundedQueue[T]) obtainPushTicket() (uint64, bool) {
	sw := spin.Wait{}
	for {
		push := q.pushTicket.LoadAcquire()
		pop := q.popTicket.LoadAcquire()

		if int64(push)-int64(pop) >= int64(q.capacity) {
			return 0, false
		}

		if q.pushTicket.CompareAndSwapAcqRel(push, push+1) {
			return push, true
		}
		sw.Once()
	}
}

// obtainPopTicket mirrors obtainPushTicket for the pop side. pop >= push
// (including the benign reordered case pop > push) is treated as "empty,
// try later" rather than an error.
func (q *BoundedQueue[T]) obtainPopTicket() (uint64, bool) {
	sw := spin.Wait{}
	for {
		pop := q.popTicket.LoadAcquire()
		push := q.pushTicket.LoadAcquire()

		if pop >= push {
			return 0, false
		}

		if q.popTicket.CompareAndSwapAcqRel(pop, pop+1) {
			return pop, true
		}
		sw.Once()
	}
}
