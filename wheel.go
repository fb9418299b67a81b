package tickqueue

import "math/bits"

// wheelEntry pairs a scheduled payload with the tick it was scheduled
// for, so a cascaded re-placement (see Wheel.FastForward) and a fired
// delivery both know the original deadline.
type wheelEntry[T any] struct {
	payload T
	tick    uint64
}

// Wheel is a hierarchical timing wheel: a fixed stack of Levels, each
// covering a power-of-two range of ticks, used to schedule deferred
// events at coarse integer time units with amortized O(1) schedule and
// fast-forward.
//
// A Wheel is single-threaded: schedule, fast-forward, and query
// operations are not internally synchronized and must be serialized by
// the caller (typically a single coordinator goroutine that owns the
// wheel outright). This mirrors spec.md §5: the wheel is meant to sit
// behind a queue that collects work from many goroutines and be driven
// by one coordinator.
type Wheel[T any] struct {
	elapsed uint64
	cutoff  uint
	levels  []*level[wheelEntry[T]]
	newBkt  newBucketFunc[wheelEntry[T]]
}

// width is W = 2^cutoff, the bucket count of every level.
func (w *Wheel[T]) width() int { return 1 << w.cutoff }

// newWheel builds a Wheel with levelCount levels of 2^cutoff buckets
// each, starting at the given tick, using newBucket to populate fresh
// buckets (both at construction and whenever a cascade bucket is
// replaced). cutoff must be in 1..6 (so width fits a uint64 bitset);
// levelCount must be >= 1.
func newWheel[T any](levelCount int, cutoff uint, initialTick uint64, newBucket newBucketFunc[wheelEntry[T]]) *Wheel[T] {
	if cutoff < 1 || cutoff > 6 {
		panic("tickqueue: cutoff must be in 1..6")
	}
	if levelCount < 1 {
		panic("tickqueue: levelCount must be >= 1")
	}
	w := &Wheel[T]{
		elapsed: initialTick,
		cutoff:  cutoff,
		levels:  make([]*level[wheelEntry[T]], levelCount),
		newBkt:  newBucket,
	}
	width := w.width()
	for i := range w.levels {
		w.levels[i] = newLevel[wheelEntry[T]](width, newBucket)
	}
	return w
}

// NewBoundedWheel builds a Wheel whose buckets are fixed-capacity arrays
// of bucketCapacity items. Scheduling into a full bucket fails with
// ErrBucketFull, so this variant never allocates once constructed; choose
// it when a worst-case per-bucket occupancy bound is known and dynamic
// memory is unavailable.
func NewBoundedWheel[T any](levelCount int, cutoff uint, initialTick uint64, bucketCapacity int) *Wheel[T] {
	return newWheel[T](levelCount, cutoff, initialTick, func() bucket[wheelEntry[T]] {
		return newBoundedBucket[wheelEntry[T]](bucketCapacity)
	})
}

// NewDynamicWheel builds a Wheel whose buckets grow without bound;
// Schedule never fails with ErrBucketFull. Choose it when per-bucket
// occupancy cannot be bounded ahead of time.
func NewDynamicWheel[T any](levelCount int, cutoff uint, initialTick uint64) *Wheel[T] {
	return newWheel[T](levelCount, cutoff, initialTick, func() bucket[wheelEntry[T]] {
		return newDequeBucket[wheelEntry[T]]()
	})
}

// Elapsed returns the total number of ticks that have already fired.
func (w *Wheel[T]) Elapsed() uint64 { return w.elapsed }

// maxTick is the exclusive upper bound on schedulable ticks, one past the
// highest tick the wheel's level/cutoff configuration can represent.
func (w *Wheel[T]) maxTick() uint64 {
	bitWidth := uint(len(w.levels)) * w.cutoff
	if bitWidth >= 64 {
		return 0 // 2^64 overflows uint64; treat as unbounded.
	}
	return uint64(1) << bitWidth
}

// Schedule places payload so it will be reported on or before
// FastForward(t) for any t >= tick.
//
// Returns ErrTickInPast if tick < Elapsed(), ErrTickOutOfRange if tick is
// too large for the wheel's configuration, or ErrBucketFull if the target
// bucket is a bounded bucket already at capacity.
//
// Per spec.md's resolution of its Open Question (ii): tick == Elapsed()
// is accepted (placed at level 0) and delivered on the next FastForward,
// rather than rejected.
func (w *Wheel[T]) Schedule(tick uint64, payload T) error {
	lvl, idx, err := w.locate(tick)
	if err != nil {
		return err
	}
	return w.levels[lvl].pushAt(idx, wheelEntry[T]{payload: payload, tick: tick})
}

// locate computes the (level, bucket index) pair spec.md §4.5 describes:
// the most-significant bit on which tick and elapsed differ determines
// the level; tick == elapsed is special-cased to level 0.
func (w *Wheel[T]) locate(tick uint64) (lvl, idx int, err error) {
	if tick < w.elapsed {
		return 0, 0, ErrTickInPast
	}
	if maxTick := w.maxTick(); maxTick != 0 && tick >= maxTick {
		return 0, 0, ErrTickOutOfRange
	}

	if tick == w.elapsed {
		return 0, int(tick) & (w.width() - 1), nil
	}

	d := tick ^ w.elapsed
	msb := bits.Len64(d) - 1
	lvl = msb / int(w.cutoff)
	idx = int(tick>>(uint(lvl)*w.cutoff)) & (w.width() - 1)
	return lvl, idx, nil
}

// FastForward advances Elapsed to target, invoking sink(payload, tick)
// for every scheduled item whose tick <= target. target must be >=
// Elapsed(); violating this is a programmer bug, not a recoverable
// condition (spec.md §7).
//
// FastForward(Elapsed(), sink) is a no-op: it delivers nothing and
// returns immediately.
func (w *Wheel[T]) FastForward(target uint64, sink func(payload T, tick uint64)) {
	if target < w.elapsed {
		panic("tickqueue: fast-forward target precedes elapsed")
	}
	if target == w.elapsed {
		return
	}

	deliver := func(e wheelEntry[T]) { sink(e.payload, e.tick) }

	d := w.elapsed ^ target
	top := (bits.Len64(d) - 1) / int(w.cutoff)

	// A target at or past maxTick differs from elapsed above the highest
	// level: every scheduled tick is below maxTick, so everything is due.
	if top >= len(w.levels) {
		for _, l := range w.levels {
			l.drain(deliver)
		}
		w.elapsed = target
		return
	}

	// Every level below top is fully drained: no item there can have a
	// tick greater than target, or it would have been placed at level
	// >= top in the first place.
	for i := 0; i < top; i++ {
		w.levels[i].drain(deliver)
	}

	mask := w.width() - 1
	fromIdx := int(w.elapsed>>(uint(top)*w.cutoff)) & mask
	toIdx := int(target>>(uint(top)*w.cutoff)) & mask

	if toIdx != fromIdx {
		// Every bucket strictly before toIdx at this level is overdue.
		w.levels[top].drainUntil(toIdx, deliver)
	}

	w.elapsed = target

	// The cascade bucket: items that were co-located with the old
	// elapsed position at level top now need to either fire (if their
	// tick has caught up) or move to a finer level now that elapsed has
	// advanced past them.
	cascade := w.levels[top].replaceSlot(toIdx, w.newBkt())
	for {
		e, ok := cascade.pop()
		if !ok {
			break
		}
		if e.tick <= target {
			sink(e.payload, e.tick)
		} else {
			// Schedule cannot fail here: e.tick was already validated in
			// range when first scheduled, and elapsed only increases.
			_ = w.Schedule(e.tick, e.payload)
		}
	}
}

// MinNextEvent returns the earliest tick at which some scheduled event
// might fire. It may underestimate (return a tick earlier than any real
// event) but is never greater than the true next event; a caller that
// fast-forwards to the returned tick will discover the precise time.
// Returns (0, false) if nothing is scheduled.
func (w *Wheel[T]) MinNextEvent() (uint64, bool) {
	left := w.elapsed
	mask := uint64(w.width() - 1)
	for i := range w.levels {
		tail := int(left & mask)
		left >>= w.cutoff

		if ev, ok := w.levels[i].nextEvent(tail); ok {
			high := (left << w.cutoff) | uint64(ev)
			return high << (uint(i) * w.cutoff), true
		}
	}
	return 0, false
}
