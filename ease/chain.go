package ease

import "errors"

// ErrCurveResolution reports a malformed piecewise chain: no segments,
// boundaries out of order, or a chain that does not end at 1.
var ErrCurveResolution = errors.New("ease: chain boundaries must increase strictly and end at 1")

// ChainEntry pairs a sub-curve with the upper boundary of the progress
// range it covers.
type ChainEntry[T any] struct {
	Curve Curve[T]
	Until float64
}

// Chained evaluates an ordered list of sub-curves covering (0, 1]
// contiguously. Progress is rescaled into the matching segment, so each
// sub-curve still sees the full [0, 1] range.
type Chained[T any] struct {
	entries []ChainEntry[T]
}

// NewChained validates the segment boundaries eagerly; Compute is total
// afterwards.
func NewChained[T any](entries []ChainEntry[T]) (Chained[T], error) {
	if len(entries) == 0 {
		return Chained[T]{}, ErrCurveResolution
	}
	prev := 0.0
	for _, e := range entries {
		if e.Until <= prev || e.Curve == nil {
			return Chained[T]{}, ErrCurveResolution
		}
		prev = e.Until
	}
	if prev != 1 {
		return Chained[T]{}, ErrCurveResolution
	}
	chain := make([]ChainEntry[T], len(entries))
	copy(chain, entries)
	return Chained[T]{entries: chain}, nil
}

func (c Chained[T]) Compute(t float64) T {
	lower := 0.0
	for _, e := range c.entries {
		if t <= e.Until {
			local := 0.0
			if span := e.Until - lower; span > 0 {
				local = (t - lower) / span
			}
			if local < 0 {
				local = 0
			}
			return e.Curve.Compute(local)
		}
		lower = e.Until
	}
	// t above 1; clamp into the final segment.
	return c.entries[len(c.entries)-1].Curve.Compute(1)
}
