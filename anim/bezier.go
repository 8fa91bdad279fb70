package anim

import (
	"fmt"

	"github.com/matt-g-everett/partx/bezier"
	"github.com/matt-g-everett/partx/geom"
	"github.com/matt-g-everett/partx/render"
	"github.com/matt-g-everett/partx/sched"
	"github.com/matt-g-everett/partx/shape"
)

// lengthSamples is the sample count for interval-based step resolution.
const lengthSamples = 100

// Bezier animates a shape along a procedural curve.
type Bezier struct {
	base
	entity shape.Shape
	path   bezier.Curve
}

func newBezier(delay int, entity shape.Shape, path bezier.Curve) (*Bezier, error) {
	b, err := newBase(delay)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, fmt.Errorf("anim: entity must not be nil")
	}
	if path == nil {
		return nil, fmt.Errorf("anim: path must not be nil")
	}
	return &Bezier{base: b, entity: entity, path: path}, nil
}

// NewBezier uses a fixed step count along the curve.
func NewBezier(delay int, entity shape.Shape, steps int, path bezier.Curve) (*Bezier, error) {
	a, err := newBezier(delay, entity, path)
	if err != nil {
		return nil, err
	}
	if err := a.SetRenderSteps(steps); err != nil {
		return nil, err
	}
	return a, nil
}

// NewBezierInterval derives the step count from the estimated curve
// length.
func NewBezierInterval(delay int, entity shape.Shape, interval float64, path bezier.Curve) (*Bezier, error) {
	a, err := newBezier(delay, entity, path)
	if err != nil {
		return nil, err
	}
	if err := a.SetRenderInterval(interval); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Bezier) at(t float64) geom.Vec3 {
	return a.path.Compute(t)
}

func (a *Bezier) BeginAnimation(s *sched.Scheduler, r render.Renderer) error {
	return a.run(a, s, r, a.entity, a.resolveSteps(a.path.Length(lengthSamples)), a.at)
}

func (a *Bezier) Duration() int {
	return a.resolveSteps(a.path.Length(lengthSamples)) * a.delay
}
