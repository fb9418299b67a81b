package tickqueue

// Options configures queue creation: capacity and which sequencer variant
// backs each slot.
type Options struct {
	capacity int
	blocking bool
}

// Builder creates a BoundedQueue[T] with fluent configuration.
//
// Example:
//
//	q := tickqueue.Build[Event](tickqueue.New(1024))
//	q := tickqueue.Build[Event](tickqueue.New(1024).Blocking())
type Builder struct {
	opts Options
}

// New creates a queue builder with the given capacity. Panics if capacity
// < 1.
func New(capacity int) *Builder {
	if capacity < 1 {
		panic("tickqueue: capacity must be >= 1")
	}
	return &Builder{opts: Options{capacity: capacity}}
}

// Blocking selects the condition-variable synchronizer variant for every
// slot, instead of the default spin variant. Prefer this under
// oversubscription or when integrating with an event loop.
func (b *Builder) Blocking() *Builder {
	b.opts.blocking = true
	return b
}

// Build creates a BoundedQueue[T] from the builder's configuration.
//
// Build is a package-level generic function rather than a method because
// Go methods cannot carry their own type parameters.
func Build[T any](b *Builder) *BoundedQueue[T] {
	if b.opts.blocking {
		return newBoundedQueue[T](b.opts.capacity, func() sequencer { return newCondSequencer() })
	}
	return newBoundedQueue[T](b.opts.capacity, func() sequencer { return &spinSequencer{} })
}
