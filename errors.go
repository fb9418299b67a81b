package tickqueue

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// For Enqueue: the queue is full (backpressure)
// For Dequeue: the queue is empty (no data available)
//
// ErrWouldBlock is a control flow signal, not a failure. The caller should
// retry the operation later (with backoff or yield) rather than propagating
// the error.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}

// ErrTickInPast is returned by Wheel.Schedule when tick < the wheel's
// current elapsed time. The caller may discard the item or reschedule it
// at a later tick.
var ErrTickInPast = errors.New("tickqueue: tick is before elapsed")

// ErrTickOutOfRange is returned by Wheel.Schedule when tick is too large
// to be represented by the wheel's level/cutoff configuration
// (tick >= 2^(CUTOFF*LEVEL)). This is a contract violation by the caller,
// not a transient condition.
var ErrTickOutOfRange = errors.New("tickqueue: tick exceeds wheel range")

// ErrBucketFull is returned when a bounded bucket has reached the fixed
// capacity it was constructed with. It surfaces through Wheel.Schedule when the target
// bucket is a boundedBucket at capacity.
var ErrBucketFull = errors.New("tickqueue: bucket is full")

// ErrUnsupportedTimeout is returned by the spin synchronizer's waitUntil
// when called with a finite timeout. The spin variant has no parking
// primitive to wait on, so it can only wait forever; callers needing
// bounded waits must use the blocking (condition-variable) synchronizer.
var ErrUnsupportedTimeout = errors.New("tickqueue: spin synchronizer does not support timeouts")

// errTimeout is returned internally by condSequencer.waitUntil when a
// finite timeout elapses before the target sequence value is reached.
var errTimeout = errors.New("tickqueue: wait deadline exceeded")
