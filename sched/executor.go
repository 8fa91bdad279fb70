// Package sched contains the cooperative tick-paced scheduler and the
// single draw executor. Exactly one worker ever runs draw side effects;
// the renderer's jitter source is not safe under concurrent access.
package sched

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// Executor serializes draw actions onto one dedicated worker in
// submission order. Completion is tracked per submission; the pool's
// own Wait only observes worker exits, not an empty queue.
type Executor struct {
	pool worker.DynamicWorkerPool
	wg   sync.WaitGroup

	mu     sync.Mutex
	nextID int
}

// NewExecutor creates the exclusive draw executor. The pool is fixed at
// a single worker; ordering and exclusivity both depend on that.
func NewExecutor() *Executor {
	e := new(Executor)
	e.pool = worker.NewDynamicWorkerPool(1, 256, 1*time.Second)
	return e
}

// Submit queues an action for the draw worker.
func (e *Executor) Submit(action func()) {
	e.mu.Lock()
	id := e.nextID
	e.nextID++
	e.mu.Unlock()

	e.wg.Add(1)
	e.pool.SubmitTask(worker.Task{
		ID: id,
		Do: func() (any, error) {
			defer e.wg.Done()
			action()
			return nil, nil
		},
	})
}

// Drain blocks until every submitted action has run. Hosts call this
// during shutdown.
func (e *Executor) Drain() {
	e.wg.Wait()
}
