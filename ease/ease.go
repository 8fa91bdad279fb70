// Package ease provides typed easing curves: pure functions mapping
// normalized progress t in [0, 1] to a value. Animators resolve every
// eased shape field once per step.
package ease

// A Curve computes a value from normalized progress. Implementations
// must be total on [0, 1] and free of side effects.
type Curve[T any] interface {
	Compute(t float64) T
}

// Constant is a Curve that ignores t entirely.
type Constant[T any] struct {
	Value T
}

// Fixed wraps a plain value as a Constant curve.
func Fixed[T any](value T) Constant[T] {
	return Constant[T]{Value: value}
}

func (c Constant[T]) Compute(float64) T {
	return c.Value
}

// ConstantOf extracts the value of a Constant curve without evaluating
// it at a particular t. The second return is false for any other curve
// variant.
func ConstantOf[T any](c Curve[T]) (T, bool) {
	if k, ok := c.(Constant[T]); ok {
		return k.Value, true
	}
	var zero T
	return zero, false
}

// ConstantOrElse is ConstantOf with a caller-supplied fallback for
// non-constant curves.
func ConstantOrElse[T any](c Curve[T], fallback func() T) T {
	if v, ok := ConstantOf(c); ok {
		return v
	}
	return fallback()
}
