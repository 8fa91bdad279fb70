package anim

import (
	"fmt"

	"github.com/matt-g-everett/partx/geom"
	"github.com/matt-g-everett/partx/render"
	"github.com/matt-g-everett/partx/sched"
	"github.com/matt-g-everett/partx/shape"
)

// Point re-draws a shape at a fixed position for a number of steps. Its
// path has no length, so only a fixed step count makes sense.
type Point struct {
	base
	entity shape.Shape
	point  geom.Vec3
}

func NewPoint(delay int, entity shape.Shape, point geom.Vec3, steps int) (*Point, error) {
	b, err := newBase(delay)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, fmt.Errorf("anim: entity must not be nil")
	}
	if err := b.SetRenderSteps(steps); err != nil {
		return nil, err
	}
	return &Point{base: b, entity: entity, point: point}, nil
}

func (a *Point) BeginAnimation(s *sched.Scheduler, r render.Renderer) error {
	point := a.point
	return a.run(a, s, r, a.entity, a.steps, func(float64) geom.Vec3 {
		return point
	})
}

func (a *Point) Duration() int {
	return a.steps * a.delay
}
