// Package tickqueue provides a bounded multi-producer multi-consumer
// queue and a hierarchical timing wheel for deferred event scheduling.
//
// The two primitives are independent and can be used separately: the
// queue moves values between goroutines with backpressure, the wheel
// defers values until a logical tick arrives. Used together, a wheel
// can sit behind a queue's consumer side, turning "deliver this value
// now" into "deliver this value no earlier than tick T".
//
// # Quick Start
//
//	q := tickqueue.NewQueue[Event](1024)
//
//	// Enqueue (non-blocking)
//	ev := Event{}
//	err := q.Enqueue(&ev)
//	if tickqueue.IsWouldBlock(err) {
//	    // queue is full, handle backpressure
//	}
//
//	// Dequeue (non-blocking)
//	got, err := q.Dequeue()
//	if tickqueue.IsWouldBlock(err) {
//	    // queue is empty, try again later
//	}
//
// Builder API for explicit synchronizer selection:
//
//	q := tickqueue.Build[Event](tickqueue.New(1024))           // spin variant
//	q := tickqueue.Build[Event](tickqueue.New(1024).Blocking()) // condvar variant
//
// # Basic Usage
//
// Worker pool (submitters and workers share one queue):
//
//	q := tickqueue.NewQueue[Job](4096)
//
//	for range numWorkers {
//	    go func() {
//	        backoff := iox.Backoff{}
//	        for {
//	            job, err := q.Dequeue()
//	            if err != nil {
//	                backoff.Wait()
//	                continue
//	            }
//	            backoff.Reset()
//	            job.Run()
//	        }
//	    }()
//	}
//
//	func Submit(j Job) error {
//	    return q.Enqueue(&j)
//	}
//
// Use [BoundedQueue.Producer] and [BoundedQueue.Consumer] to hand out a
// narrower capability than the full queue to a component that should
// only push or only pop.
//
// # Synchronizer Variants
//
// A queue's slots are backed by one of two synchronizer implementations,
// selected at construction:
//
//	NewQueue / default Builder        - spin: busy-wait, never parks,
//	                                     no support for timed waits
//	NewBlockingQueue / Builder.Blocking - condition variable: parks the
//	                                     waiting goroutine, supports
//	                                     timed waits internally
//
// Prefer the spin variant when producers and consumers are expected to
// stay runnable on distinct cores; prefer the blocking variant under
// oversubscription, or when pairing the queue with an event loop that
// should not spend CPU busy-waiting.
//
// # Timing Wheel
//
// A [Wheel] schedules values against an abstract integer tick rather
// than wall-clock time; the caller decides what a tick means (a
// monotonic counter, milliseconds since start, a logical round number)
// and drives the wheel forward by calling [Wheel.FastForward].
//
//	w := tickqueue.NewBoundedWheel[Timer](4, 6, 0, 16)
//
//	err := w.Schedule(120, myTimer) // fire on or after tick 120
//
//	// elsewhere, once per tick (or in batches):
//	w.FastForward(currentTick, func(payload Timer, tick uint64) {
//	    payload.Fire()
//	})
//
// [Wheel.MinNextEvent] lets a caller sleep until the next possible event
// instead of fast-forwarding one tick at a time:
//
//	next, ok := w.MinNextEvent()
//	if ok {
//	    sleepUntilTick(next)
//	}
//
// [NewBoundedWheel] allocates its buckets up front and never grows them;
// scheduling into a full bucket returns [ErrBucketFull]. [NewDynamicWheel]
// grows buckets on demand and never returns ErrBucketFull, at the cost of
// allocating during Schedule.
//
// A Wheel is not safe for concurrent use; callers that schedule from many
// goroutines should serialize access themselves, typically by routing
// scheduling requests through a [BoundedQueue] drained by a single
// coordinator goroutine that owns the wheel.
//
// # Error Handling
//
// The queue signals "try again" with [ErrWouldBlock], sourced from
// [code.hybscloud.com/iox] for ecosystem consistency, rather than
// blocking internally:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := q.Enqueue(&item)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if !tickqueue.IsWouldBlock(err) {
//	        return err
//	    }
//	    backoff.Wait()
//	}
//
// For semantic error classification (delegates to iox):
//
//	tickqueue.IsWouldBlock(err)  // true if queue full/empty
//	tickqueue.IsSemantic(err)    // true if control flow signal
//	tickqueue.IsNonFailure(err)  // true if nil or ErrWouldBlock
//
// Wheel-specific errors ([ErrTickInPast], [ErrTickOutOfRange],
// [ErrBucketFull]) are plain sentinel errors rather than iox
// classifications: a wheel's caller typically knows immediately, from
// which sentinel it got back, whether to drop the item, clamp the tick,
// or grow the wheel's configuration, which doesn't fit the
// would-block/semantic split iox provides for the queue's backpressure
// signal.
//
// # Capacity
//
// A queue's capacity is fixed exactly at the value passed to NewQueue,
// NewBlockingQueue, or New — it is not rounded up to a power of 2. The
// ring index and generation are computed with a division and modulus by
// capacity rather than a bitmask, so arbitrary capacities are supported.
//
// Queue length is intentionally not exposed: an accurate count requires
// cross-core synchronization that would cost more than the information
// is usually worth. Track counts in application logic if needed.
//
// # Thread Safety
//
// [BoundedQueue]'s Enqueue and Dequeue, and the handles returned by
// Producer and Consumer, are safe for concurrent use by any number of
// goroutines in any combination.
//
// [Wheel] is not: Schedule, FastForward, MinNextEvent, and Elapsed must
// be called from one goroutine at a time (see "Timing Wheel" above).
//
// # Race Detection
//
// Go's race detector tracks explicit synchronization primitives (mutex,
// channels, WaitGroup) but cannot observe happens-before relationships
// established purely through atomic acquire/release ordering on separate
// variables. The queue's slot handoff is correct under that ordering
// discipline, but some stress tests exercise timing windows the race
// detector misreports as races; those tests skip themselves when
// [RaceEnabled] is true, and the examples are excluded via
// //go:build !race.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit memory
// ordering, and [code.hybscloud.com/spin] for CPU pause instructions
// during busy-waits.
package tickqueue
