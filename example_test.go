//go:build !race

// This file contains examples that use atomix concurrency primitives.
// These trigger false positives with Go's race detector because atomix
// atomic operations appear as regular memory accesses to the detector.
// The examples are correct; they're excluded from race testing.

package tickqueue_test

import (
	"fmt"
	"sync"

	"code.hybscloud.com/iox"

	"code.hiventra.io/tickqueue"
)

// ExampleNewQueue demonstrates a basic spin-backed queue.
func ExampleNewQueue() {
	q := tickqueue.NewQueue[int](8)

	for i := 1; i <= 5; i++ {
		v := i * 10
		q.Enqueue(&v)
	}

	for range 5 {
		v, _ := q.Dequeue()
		fmt.Println(v)
	}

	// Output:
	// 10
	// 20
	// 30
	// 40
	// 50
}

// ExampleBuild demonstrates the builder API for selecting a synchronizer
// variant.
func ExampleBuild() {
	spin := tickqueue.Build[int](tickqueue.New(64))
	blocking := tickqueue.Build[int](tickqueue.New(64).Blocking())

	fmt.Println("spin capacity:", spin.Cap())
	fmt.Println("blocking capacity:", blocking.Cap())

	// Output:
	// spin capacity: 64
	// blocking capacity: 64
}

// ExampleNewQueue_workerPool demonstrates multiple producers submitting to
// a single shared queue.
func ExampleNewQueue_workerPool() {
	q := tickqueue.NewQueue[string](16)

	var wg sync.WaitGroup
	for p := range 3 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			backoff := iox.Backoff{}
			msg := fmt.Sprintf("msg from producer %d", id)
			for q.Enqueue(&msg) != nil {
				backoff.Wait()
			}
		}(p)
	}
	wg.Wait()

	for {
		msg, err := q.Dequeue()
		if err != nil {
			break
		}
		fmt.Println(msg)
	}

	// Unordered output:
	// msg from producer 0
	// msg from producer 1
	// msg from producer 2
}

// ExampleIsWouldBlock demonstrates classifying the backpressure signal.
func ExampleIsWouldBlock() {
	q := tickqueue.NewQueue[int](1)

	a := 1
	q.Enqueue(&a)

	b := 2
	err := q.Enqueue(&b)
	fmt.Println("would block:", tickqueue.IsWouldBlock(err))

	// Output:
	// would block: true
}

// ExampleWheel demonstrates scheduling and delivering deferred events.
func ExampleWheel() {
	w := tickqueue.NewDynamicWheel[string](4, 4, 0)

	w.Schedule(3, "early")
	w.Schedule(10, "late")

	w.FastForward(5, func(payload string, tick uint64) {
		fmt.Printf("tick %d: %s\n", tick, payload)
	})
	w.FastForward(10, func(payload string, tick uint64) {
		fmt.Printf("tick %d: %s\n", tick, payload)
	})

	// Output:
	// tick 3: early
	// tick 10: late
}
