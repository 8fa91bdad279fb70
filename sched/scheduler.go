package sched

import (
	"errors"
	"sync"
)

// ErrDuplicateSequence reports a second allocation for an animator that
// already holds one.
var ErrDuplicateSequence = errors.New("sched: animator already has an allocated sequence")

// ErrMissingSequence reports a step submission for an animator with no
// allocated sequence.
var ErrMissingSequence = errors.New("sched: no sequence allocated for this animator")

// A Dispatcher accepts draw actions for serialized execution. Executor
// is the production implementation.
type Dispatcher interface {
	Submit(action func())
}

// An Observer is told when the scheduler releases an owner's first
// chunk and when its sequence drains. Owners that implement it drive
// their own state machines off these notifications.
type Observer interface {
	AnimationStarted()
	AnimationFinished()
}

type sequence struct {
	owner    any
	steps    []*Step
	begun    bool // at least one step was ever submitted
	sealed   bool // the owner will submit no further steps
	released bool // first chunk has been handed to the executor
}

// Scheduler is a cooperative dispatcher paced by external ticks. Each
// registered animator owns one sequence of delayed chunks; every tick
// releases at most one due chunk per sequence, in registration order,
// onto the executor.
type Scheduler struct {
	exec Dispatcher

	mu    sync.Mutex
	seqs  []*sequence
	index map[any]*sequence
}

// NewScheduler creates a scheduler releasing work onto exec. The host
// owns both lifecycles.
func NewScheduler(exec Dispatcher) *Scheduler {
	s := new(Scheduler)
	s.exec = exec
	s.index = make(map[any]*sequence)
	return s
}

// Executor exposes the draw executor for zero-delay submissions that
// have nothing to wait for.
func (s *Scheduler) Executor() Dispatcher {
	return s.exec
}

// Allocate registers a fresh empty sequence for owner.
func (s *Scheduler) Allocate(owner any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[owner]; ok {
		return ErrDuplicateSequence
	}
	seq := &sequence{owner: owner}
	s.seqs = append(s.seqs, seq)
	s.index[owner] = seq
	return nil
}

// Submit appends a chunk to owner's sequence.
func (s *Scheduler) Submit(owner any, step *Step) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	seq, ok := s.index[owner]
	if !ok {
		return ErrMissingSequence
	}
	seq.steps = append(seq.steps, step)
	seq.begun = true
	return nil
}

// Seal marks owner's sequence complete: no further chunks are coming.
// Only a sealed sequence deallocates when it drains, so a tick landing
// between two of the owner's submissions cannot drop the registration
// mid-animation. Sealing an already drained sequence deallocates it
// immediately.
func (s *Scheduler) Seal(owner any) {
	s.mu.Lock()
	seq, ok := s.index[owner]
	if !ok {
		s.mu.Unlock()
		return
	}
	seq.sealed = true
	drained := seq.begun && len(seq.steps) == 0
	if drained {
		s.remove(owner)
	}
	s.mu.Unlock()

	if drained {
		if ob, ok := owner.(Observer); ok {
			ob.AnimationFinished()
		}
	}
}

// Deallocate drops owner's registration and any pending chunks. Chunks
// already handed to the executor still complete.
func (s *Scheduler) Deallocate(owner any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(owner)
}

func (s *Scheduler) remove(owner any) {
	seq, ok := s.index[owner]
	if !ok {
		return
	}
	delete(s.index, owner)
	for i, q := range s.seqs {
		if q == seq {
			s.seqs = append(s.seqs[:i], s.seqs[i+1:]...)
			break
		}
	}
}

// Processing reports whether any sequence is registered.
func (s *Scheduler) Processing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seqs) > 0
}

// OnTick advances every sequence by one tick, releasing due chunks to
// the executor. Work per tick is bounded: at most one chunk per
// sequence.
func (s *Scheduler) OnTick() {
	s.mu.Lock()

	var due []func()
	var released []*sequence
	var finished []*sequence
	for _, seq := range s.seqs {
		if len(seq.steps) == 0 {
			continue
		}
		head := seq.steps[0]
		if !head.tick() {
			continue
		}
		seq.steps = seq.steps[1:]
		if !seq.released {
			seq.released = true
			released = append(released, seq)
		}
		due = append(due, head.actions...)
		if len(seq.steps) == 0 && seq.begun && seq.sealed {
			finished = append(finished, seq)
		}
	}
	for _, seq := range finished {
		s.remove(seq.owner)
	}
	s.mu.Unlock()

	// Submissions and observers run unlocked: a released action may be
	// a composite child start that re-enters Allocate/Submit, and the
	// executor queue can block when full.
	for _, action := range due {
		s.exec.Submit(action)
	}
	for _, seq := range released {
		if ob, ok := seq.owner.(Observer); ok {
			ob.AnimationStarted()
		}
	}
	for _, seq := range finished {
		if ob, ok := seq.owner.(Observer); ok {
			ob.AnimationFinished()
		}
	}
}
