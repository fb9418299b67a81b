package tickqueue_test

import (
	"testing"

	"code.hiventra.io/tickqueue"
)

func TestQueueCap(t *testing.T) {
	q := tickqueue.NewQueue[int](4)
	if got := q.Cap(); got != 4 {
		t.Fatalf("Cap() = %d, want 4", got)
	}
}

// TestQueueFIFOSingleThread is scenario Q1: on a single goroutine, a
// capacity-4 queue preserves strict FIFO order across an enqueue/dequeue
// sequence that wraps the ring.
func TestQueueFIFOSingleThread(t *testing.T) {
	q := tickqueue.NewQueue[int](4)

	push := func(v int) {
		if err := q.Enqueue(&v); err != nil {
			t.Fatalf("Enqueue(%d): %v", v, err)
		}
	}
	pop := func(want int) {
		got, err := q.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue(): %v", err)
		}
		if got != want {
			t.Fatalf("Dequeue() = %d, want %d", got, want)
		}
	}

	push(1)
	push(2)
	push(3)
	pop(1)
	push(4)
	push(5) // wraps: ring index 0 again, generation 1
	pop(2)
	pop(3)
	pop(4)
	pop(5)

	if _, err := q.Dequeue(); !tickqueue.IsWouldBlock(err) {
		t.Fatalf("Dequeue() on empty queue: err = %v, want ErrWouldBlock", err)
	}
}

func TestQueueFullReturnsWouldBlock(t *testing.T) {
	q := tickqueue.NewQueue[int](2)
	a, b := 1, 2
	if err := q.Enqueue(&a); err != nil {
		t.Fatalf("Enqueue(a): %v", err)
	}
	if err := q.Enqueue(&b); err != nil {
		t.Fatalf("Enqueue(b): %v", err)
	}
	c := 3
	if err := q.Enqueue(&c); !tickqueue.IsWouldBlock(err) {
		t.Fatalf("Enqueue on full queue: err = %v, want ErrWouldBlock", err)
	}
}

func TestQueueEmptyReturnsWouldBlock(t *testing.T) {
	q := tickqueue.NewQueue[int](2)
	if _, err := q.Dequeue(); !tickqueue.IsWouldBlock(err) {
		t.Fatalf("Dequeue on empty queue: err = %v, want ErrWouldBlock", err)
	}
}

func TestQueueProducerConsumerHandles(t *testing.T) {
	q := tickqueue.NewQueue[string](2)
	p := q.Producer()
	c := q.Consumer()

	v := "hello"
	if err := p.Enqueue(&v); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	got, err := c.Dequeue()
	if err != nil {
		t.Fatalf("Dequeue: %v", err)
	}
	if got != v {
		t.Fatalf("Dequeue() = %q, want %q", got, v)
	}
}

func TestBlockingQueueBasic(t *testing.T) {
	q := tickqueue.NewBlockingQueue[int](4)
	for i := range 4 {
		v := i
		if err := q.Enqueue(&v); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
	}
	for i := range 4 {
		got, err := q.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue(): %v", err)
		}
		if got != i {
			t.Fatalf("Dequeue() = %d, want %d", got, i)
		}
	}
}

func TestBuilderVariants(t *testing.T) {
	spin := tickqueue.Build[int](tickqueue.New(4))
	if spin.Cap() != 4 {
		t.Fatalf("spin Cap() = %d, want 4", spin.Cap())
	}

	blocking := tickqueue.Build[int](tickqueue.New(4).Blocking())
	if blocking.Cap() != 4 {
		t.Fatalf("blocking Cap() = %d, want 4", blocking.Cap())
	}
}

func TestNewQueuePanicsOnZeroCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("NewQueue(0) did not panic")
		}
	}()
	tickqueue.NewQueue[int](0)
}
