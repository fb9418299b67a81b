package tickqueue

import "code.hybscloud.com/atomix"

// slot is a single-cell ring position shared by every generation that
// passes through it. Ticket t visits slot[t % N] at generation t / N; the
// sequencer enforces strict alternation between producer and consumer
// turns within that generation.
//
// For generation g, the sequencer's counter progresses through three
// values in order: 2g (empty, producer's turn), 2g+1 (full, consumer's
// turn), 2g+2 (empty again, equal to generation g+1's starting value).
//
// The occupancy flag is a second guard on top of the sequencer: it is
// set by the producer before the write and cleared by the consumer after
// the read, defending against the pathological case where a consumer of
// generation g is preempted long enough for producers and consumers of
// g+1..g+N/2 to run to completion and the ticket counters to lap the
// ring.
type slot[T any] struct {
	data T
	// occupied is 0 (free) or 1 (held); a Uint64 rather than atomix.Bool
	// because the guard needs a compare-and-swap, and atomix only
	// exposes CompareAndSwap on its integer types.
	occupied atomix.Uint64
	seq      sequencer
}

func newSlot[T any](seq sequencer) *slot[T] {
	return &slot[T]{seq: seq}
}

// push deposits data into the slot for the given generation, blocking
// until the previous generation's consumer has fully released it.
func (s *slot[T]) push(data T, generation uint64) {
	// 1. Wait for the producer's turn.
	_ = s.seq.waitUntil(generation*2, 0)

	// 2. Guard against a slow previous-generation consumer: spin until we
	// win the occupancy flag. AcqRel so the write below can't be
	// reordered before we observe the flag, nor after we store it.
	for !s.occupied.CompareAndSwapAcqRel(0, 1) {
	}

	// 3. Write the payload. The cell is treated as raw storage: no
	// previous value is dropped, matching slot.rs's ptr::write semantics.
	s.data = data

	// 4. Hand off to the consumer.
	s.seq.updateNext(generation*2 + 1)
}

// pop retrieves the payload deposited for the given generation, blocking
// until the producer has finished writing it.
func (s *slot[T]) pop(generation uint64) T {
	// 1. Wait for the consumer's turn.
	_ = s.seq.waitUntil(generation*2+1, 0)

	// 2. Move the payload out. The zero value left behind lets a
	// reference-typed T be garbage collected promptly.
	var zero T
	result := s.data
	s.data = zero

	// 3. Release the occupancy flag for the next generation's producer.
	s.occupied.StoreRelease(0)

	// 4. Open the slot for generation+1's producer.
	s.seq.updateNext(generation*2 + 2)

	return result
}
