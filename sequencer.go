package tickqueue

import (
	"sync"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// sequencer lets one goroutine block until an internal counter reaches a
// target value, and lets another goroutine bump that counter and wake any
// waiters. It is the synchronization primitive a slot uses to serialize
// push/pop across generations.
//
// updateNext is monotonic-per-contract only at the slot layer; a
// sequencer implementation does not itself reject regressions.
type sequencer interface {
	// waitUntil blocks until the counter equals target. timeout <= 0
	// waits forever. Returns ErrUnsupportedTimeout if the implementation
	// cannot honor a finite timeout, or an error if the deadline passes
	// first.
	waitUntil(target uint64, timeout time.Duration) error
	// updateNext sets the counter to value and wakes any waiters.
	updateNext(value uint64)
}

// spinSequencer holds the counter in a single atomic word. Loads use
// acquire ordering, stores use release ordering, and waitUntil spins with
// spin.Wait between attempts rather than parking. It never allocates and
// never yields to the OS scheduler, so it is only appropriate when
// producers and consumers are expected to stay runnable on distinct
// cores.
//
// Finite timeouts are rejected: there is no parking primitive to wait on,
// so "wait up to N" cannot be distinguished from "spin forever, checking
// the clock", which would defeat the point of a spin synchronizer.
type spinSequencer struct {
	seq atomix.Uint64
}

func (s *spinSequencer) waitUntil(target uint64, timeout time.Duration) error {
	if timeout > 0 {
		return ErrUnsupportedTimeout
	}
	sw := spin.Wait{}
	for s.seq.LoadAcquire() != target {
		sw.Once()
	}
	return nil
}

func (s *spinSequencer) updateNext(value uint64) {
	s.seq.StoreRelease(value)
}

// condSequencer protects the counter with a mutex and wakes waiters via a
// condition variable, making it suitable for hosted environments under
// oversubscription or integrating with an event loop. Unlike
// spinSequencer it supports a finite timeout.
type condSequencer struct {
	mu   sync.Mutex
	cond *sync.Cond
	seq  uint64
}

func newCondSequencer() *condSequencer {
	c := &condSequencer{}
	c.cond = sync.NewCond(&c.mu)
	return c
}

func (s *condSequencer) waitUntil(target uint64, timeout time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seq == target {
		return nil
	}

	if timeout <= 0 {
		for s.seq != target {
			s.cond.Wait()
		}
		return nil
	}

	// sync.Cond has no native timed wait, so a timer goroutine broadcasts
	// once the deadline passes. The waiter re-checks the predicate after
	// every wakeup, whether it came from updateNext or the timer.
	timedOut := false
	timer := time.AfterFunc(timeout, func() {
		s.mu.Lock()
		timedOut = true
		s.mu.Unlock()
		s.cond.Broadcast()
	})
	defer timer.Stop()

	for s.seq != target && !timedOut {
		s.cond.Wait()
	}
	if s.seq != target {
		return errTimeout
	}
	return nil
}

func (s *condSequencer) updateNext(value uint64) {
	s.mu.Lock()
	s.seq = value
	s.mu.Unlock()
	s.cond.Broadcast()
}
