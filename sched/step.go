package sched

// A Step is one batched chunk of deferred draw actions. Delay counts
// ticks relative to the release of the owner's previous chunk.
type Step struct {
	delay   int
	actions []func()
}

// NewStep builds a chunk from a delay and its actions.
func NewStep(delay int, actions ...func()) *Step {
	return &Step{delay: delay, actions: actions}
}

// tick counts down one tick and reports whether the chunk became due.
func (s *Step) tick() bool {
	s.delay--
	return s.delay <= 0
}
