// Package shape implements the particle shape entities: renderable
// objects whose fields can each be driven by an easing curve, resolved
// once per animation step.
package shape

import (
	"fmt"

	"github.com/matt-g-everett/partx/ease"
	"github.com/matt-g-everett/partx/geom"
	"github.com/matt-g-everett/partx/render"
)

// ParamError reports a shape parameter that resolved to an unusable
// value mid-animation. It aborts only that step's draw.
type ParamError struct {
	Param string
	Value float64
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("shape: %s must be positive, resolved to %v", e.Param, e.Value)
}

// A Shape is a renderable entity. Evaluate resolves every eased field
// at t = step/totalSteps, runs the before-interceptor stack, performs
// the geometry draw calls, then runs the after stack. Shapes hold no
// animator back-reference and may be referenced by several animators.
type Shape interface {
	Evaluate(r render.Renderer, step, totalSteps int, pos geom.Vec3) error

	// Clone duplicates the configuration and attached interceptors.
	Clone() Shape
}

// Progress converts a step index into normalized time.
func Progress(step, totalSteps int) float64 {
	if totalSteps <= 0 {
		return 0
	}
	return float64(step) / float64(totalSteps)
}

// Base carries the fields every shape has. Each may be a constant or a
// full easing curve.
type Base struct {
	Particle render.Particle
	Amount   ease.Curve[int]
	Rotation ease.Curve[geom.Vec3]
	Offset   ease.Curve[geom.Vec3]

	Before []Interceptor
	After  []Interceptor
}

func newBase(p render.Particle, amount int) Base {
	return Base{
		Particle: p,
		Amount:   ease.Fixed(amount),
		Rotation: ease.Fixed(geom.Vec3{}),
		Offset:   ease.Fixed(geom.Vec3{}),
	}
}

// Resolved is the computed frame of the shared fields for one step.
type Resolved struct {
	T        float64
	Amount   int
	Rotation geom.Vec3
	Origin   geom.Vec3
}

func (b *Base) resolve(step, totalSteps int, pos geom.Vec3) (Resolved, error) {
	t := Progress(step, totalSteps)
	amount := b.Amount.Compute(t)
	if amount <= 0 {
		return Resolved{}, &ParamError{Param: "amount", Value: float64(amount)}
	}
	return Resolved{
		T:        t,
		Amount:   amount,
		Rotation: geom.NormalizeRotation(b.Rotation.Compute(t)),
		Origin:   pos.Add(b.Offset.Compute(t)),
	}, nil
}

func (b *Base) cloneBase() Base {
	out := *b
	out.Before = append([]Interceptor(nil), b.Before...)
	out.After = append([]Interceptor(nil), b.After...)
	return out
}

func positive(name string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("shape: %s must be positive, got %v", name, v)
	}
	return nil
}

func positiveCount(name string, v int) error {
	if v <= 0 {
		return fmt.Errorf("shape: %s must be positive, got %d", name, v)
	}
	return nil
}
