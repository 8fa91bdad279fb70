package anim

import (
	"fmt"
	"log"
	"sort"

	"github.com/matt-g-everett/partx/render"
	"github.com/matt-g-everett/partx/sched"
)

// composite is the shared structure of Sequential and Parallel: an
// ordered list of child animators plus one start gap per child, built
// from either a shared delay or a per-child delay list.
type composite struct {
	base
	children []Animator
	gaps     []int
}

func newComposite(shared int, perChild []int, children []Animator) (composite, error) {
	if len(children) == 0 {
		return composite{}, fmt.Errorf("anim: composite requires at least one child animator")
	}
	for i, c := range children {
		if c == nil {
			return composite{}, fmt.Errorf("anim: child animator %d is nil", i)
		}
	}
	gaps := make([]int, len(children))
	if perChild != nil {
		if len(perChild) != len(children) {
			return composite{}, fmt.Errorf("anim: got %d delays for %d child animators", len(perChild), len(children))
		}
		copy(gaps, perChild)
	} else {
		for i := range gaps {
			gaps[i] = shared
		}
	}
	for i, g := range gaps {
		if g < 0 {
			return composite{}, fmt.Errorf("anim: delay for child %d must not be negative, got %d", i, g)
		}
	}
	b, err := newBase(0)
	if err != nil {
		return composite{}, err
	}
	owned := make([]Animator, len(children))
	copy(owned, children)
	return composite{base: b, children: owned, gaps: gaps}, nil
}

// dispatchAt hands a child-start action to the scheduler with a delay
// relative to the previous submission. Zero-delay work that nothing
// precedes goes straight to the executor.
func (c *composite) dispatchAt(rel int, actions ...func()) error {
	if rel == 0 && !c.queued {
		c.markRunning()
		for _, action := range actions {
			c.scheduler.Executor().Submit(action)
		}
		return nil
	}
	c.queued = true
	return c.scheduler.Submit(c.owner, sched.NewStep(rel, actions...))
}

func (c *composite) settle() {
	if !c.queued {
		c.setState(Completed)
		return
	}
	c.scheduler.Seal(c.owner)
}

// Stop aborts the composite's pending child starts and stops every
// child in flight.
func (c *composite) Stop() {
	c.base.Stop()
	for _, child := range c.children {
		child.Stop()
	}
}

func beginChild(child Animator, s *sched.Scheduler, r render.Renderer) func() {
	return func() {
		if err := child.BeginAnimation(s, r); err != nil {
			log.Printf("anim: child animation failed to start: %v", err)
		}
	}
}

// Sequential runs its children one after another: each child starts its
// gap after the previous child's total duration has elapsed.
type Sequential struct {
	composite
}

// NewSequential uses one shared gap between children.
func NewSequential(delay int, children ...Animator) (*Sequential, error) {
	c, err := newComposite(delay, nil, children)
	if err != nil {
		return nil, err
	}
	return &Sequential{composite: c}, nil
}

// NewSequentialDelays uses one gap per child; the list length must
// match the child count.
func NewSequentialDelays(delays []int, children ...Animator) (*Sequential, error) {
	if delays == nil {
		delays = []int{}
	}
	c, err := newComposite(0, delays, children)
	if err != nil {
		return nil, err
	}
	return &Sequential{composite: c}, nil
}

func (a *Sequential) BeginAnimation(s *sched.Scheduler, r render.Renderer) error {
	rel := make([]int, len(a.children))
	needSched := false
	for i := range a.children {
		rel[i] = a.gaps[i]
		if i > 0 {
			rel[i] += a.children[i-1].Duration()
		}
		if rel[i] > 0 {
			needSched = true
		}
	}
	if err := a.begin(a, s, needSched); err != nil {
		return err
	}
	for i, child := range a.children {
		if err := a.dispatchAt(rel[i], beginChild(child, s, r)); err != nil {
			return err
		}
	}
	a.settle()
	return nil
}

func (a *Sequential) Duration() int {
	total := 0
	for i, child := range a.children {
		total += a.gaps[i] + child.Duration()
	}
	return total
}

// Parallel starts all children independently; their timelines overlap,
// each offset only by its own gap.
type Parallel struct {
	composite
}

// NewParallel uses one shared gap for every child.
func NewParallel(delay int, children ...Animator) (*Parallel, error) {
	c, err := newComposite(delay, nil, children)
	if err != nil {
		return nil, err
	}
	return &Parallel{composite: c}, nil
}

// NewParallelDelays uses one gap per child; the list length must match
// the child count.
func NewParallelDelays(delays []int, children ...Animator) (*Parallel, error) {
	if delays == nil {
		delays = []int{}
	}
	c, err := newComposite(0, delays, children)
	if err != nil {
		return nil, err
	}
	return &Parallel{composite: c}, nil
}

func (a *Parallel) BeginAnimation(s *sched.Scheduler, r render.Renderer) error {
	// Children sharing a gap release together in one chunk; chunk
	// delays are deltas between successive distinct gaps.
	order := make([]int, len(a.children))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return a.gaps[order[i]] < a.gaps[order[j]]
	})

	needSched := a.gaps[order[len(order)-1]] > 0
	if err := a.begin(a, s, needSched); err != nil {
		return err
	}

	released := 0
	for k := 0; k < len(order); {
		gap := a.gaps[order[k]]
		var actions []func()
		for k < len(order) && a.gaps[order[k]] == gap {
			actions = append(actions, beginChild(a.children[order[k]], s, r))
			k++
		}
		if err := a.dispatchAt(gap-released, actions...); err != nil {
			return err
		}
		released = gap
	}
	a.settle()
	return nil
}

func (a *Parallel) Duration() int {
	total := 0
	for i, child := range a.children {
		if d := a.gaps[i] + child.Duration(); d > total {
			total = d
		}
	}
	return total
}
