package sched

import (
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestExecutorDrainReturnsAfterQueuedWork(t *testing.T) {
	e := NewExecutor()

	var mu sync.Mutex
	var order []int
	release := make(chan struct{})

	// Hold the worker so the remaining actions stack up in the queue
	// behind it before anything runs.
	e.Submit(func() { <-release })
	for i := 0; i < 20; i++ {
		i := i
		e.Submit(func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		})
	}
	close(release)

	done := make(chan struct{})
	go func() {
		e.Drain()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("Drain did not return after all actions completed")
	}

	mu.Lock()
	defer mu.Unlock()
	want := make([]int, 20)
	for i := range want {
		want[i] = i
	}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("execution order (-want +got):\n%s", diff)
	}
}

func TestExecutorDrainIdle(t *testing.T) {
	e := NewExecutor()
	done := make(chan struct{})
	go func() {
		e.Drain()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Drain blocked with nothing submitted")
	}
}
