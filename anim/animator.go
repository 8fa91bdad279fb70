// Package anim implements path animators: state machines that convert a
// logical path into a step sequence, apply trimming, and emit batched
// draw work to the scheduler.
package anim

import (
	"fmt"
	"log"
	"sync"

	"github.com/matt-g-everett/partx/geom"
	"github.com/matt-g-everett/partx/render"
	"github.com/matt-g-everett/partx/sched"
	"github.com/matt-g-everett/partx/shape"
)

// State is an animator's lifecycle position.
type State int

const (
	Unscheduled State = iota
	Scheduled
	Running
	Completed
	Aborted
)

func (s State) String() string {
	switch s {
	case Unscheduled:
		return "unscheduled"
	case Scheduled:
		return "scheduled"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Aborted:
		return "aborted"
	}
	return "unknown"
}

// An Animator plays a shape along a path. BeginAnimation is the sole
// entry point; it resolves the step count, allocates exactly one
// schedule, and submits every step's draw work. Duration is advisory
// scheduling metadata in ticks, computed recursively for composites.
type Animator interface {
	BeginAnimation(s *sched.Scheduler, r render.Renderer) error
	Duration() int
	State() State
	Stop()
}

// Trim restricts an animation to a sub-range of its steps. Steps below
// Start still run their evaluation logic against a discarding renderer
// when the animator's trim policy says to keep interceptor state warm;
// End (when positive) stops the step loop before that index.
type Trim struct {
	Start int
	End   int
}

// base carries the timing parameters and scheduling state shared by
// every animator variant.
type base struct {
	delay        int
	processSpeed int
	steps        int
	interval     float64
	trim         Trim
	trimCompute  bool

	mu        sync.Mutex
	state     State
	owner     any
	scheduler *sched.Scheduler
	buffer    []func()
	buffered  int
	queued    bool
}

func newBase(delay int) (base, error) {
	if delay < 0 {
		return base{}, fmt.Errorf("anim: delay must not be negative, got %d", delay)
	}
	return base{delay: delay, processSpeed: 1, trimCompute: true}, nil
}

func (b *base) Delay() int { return b.delay }

// SetProcessSpeed sets how many draw actions are batched per scheduler
// chunk.
func (b *base) SetProcessSpeed(speed int) error {
	if speed < 1 {
		return fmt.Errorf("anim: process speed must be at least 1, got %d", speed)
	}
	b.processSpeed = speed
	return nil
}

// SetRenderSteps fixes the step count, clearing any render interval.
func (b *base) SetRenderSteps(steps int) error {
	if steps < 1 {
		return fmt.Errorf("anim: rendering steps must be at least 1, got %d", steps)
	}
	b.steps = steps
	b.interval = 0
	return nil
}

// SetRenderInterval fixes the arc length per step, clearing any fixed
// step count. The step count is then derived from the path length.
func (b *base) SetRenderInterval(interval float64) error {
	if interval <= 0 {
		return fmt.Errorf("anim: rendering interval must be positive, got %v", interval)
	}
	b.interval = interval
	b.steps = 0
	return nil
}

// SetTrim sets the step sub-range to animate.
func (b *base) SetTrim(trim Trim) error {
	if trim.Start < 0 {
		return fmt.Errorf("anim: trim start must not be negative, got %d", trim.Start)
	}
	b.trim = trim
	return nil
}

// SetTrimCompute controls whether start-trimmed steps still run their
// evaluation logic against a discarding renderer.
func (b *base) SetTrimCompute(compute bool) {
	b.trimCompute = compute
}

func (b *base) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Stop aborts the animation, pulling any pending chunks from the
// scheduler. A chunk already handed to the executor still completes.
func (b *base) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != Scheduled && b.state != Running {
		return
	}
	if b.scheduler != nil && b.owner != nil {
		b.scheduler.Deallocate(b.owner)
	}
	b.state = Aborted
}

// AnimationStarted is the scheduler's first-release notification.
func (b *base) AnimationStarted() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == Scheduled {
		b.state = Running
	}
}

// AnimationFinished is the scheduler's drained-sequence notification.
func (b *base) AnimationFinished() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == Scheduled || b.state == Running {
		b.state = Completed
	}
}

// begin moves the animator to Scheduled, allocating a sequence when any
// of its work needs the scheduler.
func (b *base) begin(owner any, s *sched.Scheduler, needSched bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == Scheduled || b.state == Running {
		return sched.ErrDuplicateSequence
	}
	if needSched {
		if err := s.Allocate(owner); err != nil {
			return err
		}
	}
	b.owner = owner
	b.scheduler = s
	b.state = Scheduled
	b.buffer = nil
	b.buffered = 0
	b.queued = false
	return nil
}

// dispatch hands one step's draw action to the batching layer. A zero
// delay bypasses the scheduler entirely; there is nothing to wait for.
func (b *base) dispatch(action func()) error {
	if b.delay == 0 {
		b.markRunning()
		b.scheduler.Executor().Submit(action)
		return nil
	}
	b.buffer = append(b.buffer, action)
	b.buffered += b.delay
	if len(b.buffer) >= b.processSpeed {
		return b.flush()
	}
	return nil
}

func (b *base) flush() error {
	if len(b.buffer) == 0 {
		return nil
	}
	step := sched.NewStep(b.buffered, b.buffer...)
	b.buffer = nil
	b.buffered = 0
	b.queued = true
	return b.scheduler.Submit(b.owner, step)
}

// finish flushes the final partial chunk, seals the sequence so the
// scheduler may retire it, and settles the state for animators whose
// work never touched the scheduler.
func (b *base) finish() error {
	if b.delay == 0 {
		b.setState(Completed)
		return nil
	}
	if err := b.flush(); err != nil {
		return err
	}
	if !b.queued {
		// Everything was trimmed away; release the registration.
		b.scheduler.Deallocate(b.owner)
		b.setState(Completed)
		return nil
	}
	b.scheduler.Seal(b.owner)
	return nil
}

func (b *base) markRunning() {
	b.mu.Lock()
	if b.state == Scheduled {
		b.state = Running
	}
	b.mu.Unlock()
}

func (b *base) setState(s State) {
	b.mu.Lock()
	b.state = s
	b.mu.Unlock()
}

// resolveSteps applies the dual timing model: a fixed step count wins;
// otherwise the path length is divided by the render interval.
func (b *base) resolveSteps(pathLength float64) int {
	if b.steps > 0 {
		return b.steps
	}
	steps := int(pathLength/b.interval + 0.5)
	if steps < 1 {
		steps = 1
	}
	return steps
}

// run is the shared leaf step loop: trim, evaluate, batch.
func (b *base) run(owner any, s *sched.Scheduler, r render.Renderer, entity shape.Shape, total int, at func(t float64) geom.Vec3) error {
	if err := b.begin(owner, s, b.delay > 0); err != nil {
		return err
	}
	// Defensive copy; a caller mutating the original shape must not
	// alter the in-flight animation.
	entity = entity.Clone()

	for step := 0; step < total; step++ {
		if b.trim.End > 0 && step >= b.trim.End {
			break
		}
		target := r
		if step < b.trim.Start {
			if !b.trimCompute {
				continue
			}
			target = render.Discard
		}
		st := step
		pos := at(shape.Progress(step, total))
		action := func() {
			target.BeforeFrame(st, pos)
			if err := entity.Evaluate(target, st, total, pos); err != nil {
				log.Printf("anim: step %d draw aborted: %v", st, err)
			}
			target.AfterFrame(st, pos)
		}
		if err := b.dispatch(action); err != nil {
			return err
		}
	}
	return b.finish()
}
