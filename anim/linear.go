package anim

import (
	"fmt"

	"github.com/matt-g-everett/partx/geom"
	"github.com/matt-g-everett/partx/render"
	"github.com/matt-g-everett/partx/sched"
	"github.com/matt-g-everett/partx/shape"
)

// Linear animates a shape along consecutive straight segments between
// two or more endpoints.
type Linear struct {
	base
	entity    shape.Shape
	endpoints []geom.Vec3
	segments  []float64
	length    float64
}

func newLinear(delay int, entity shape.Shape, endpoints []geom.Vec3) (*Linear, error) {
	b, err := newBase(delay)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, fmt.Errorf("anim: entity must not be nil")
	}
	if len(endpoints) < 2 {
		return nil, fmt.Errorf("anim: linear path needs at least two endpoints, got %d", len(endpoints))
	}
	points := make([]geom.Vec3, len(endpoints))
	copy(points, endpoints)

	segments := make([]float64, len(points)-1)
	length := 0.0
	for i := range segments {
		segments[i] = points[i].Distance(points[i+1])
		length += segments[i]
	}
	return &Linear{base: b, entity: entity, endpoints: points, segments: segments, length: length}, nil
}

// NewLinear uses a fixed step count.
func NewLinear(delay int, entity shape.Shape, steps int, endpoints ...geom.Vec3) (*Linear, error) {
	a, err := newLinear(delay, entity, endpoints)
	if err != nil {
		return nil, err
	}
	if err := a.SetRenderSteps(steps); err != nil {
		return nil, err
	}
	return a, nil
}

// NewLinearInterval derives the step count from the path length.
func NewLinearInterval(delay int, entity shape.Shape, interval float64, endpoints ...geom.Vec3) (*Linear, error) {
	a, err := newLinear(delay, entity, endpoints)
	if err != nil {
		return nil, err
	}
	if err := a.SetRenderInterval(interval); err != nil {
		return nil, err
	}
	return a, nil
}

// at maps global progress to a point on the polyline.
func (a *Linear) at(t float64) geom.Vec3 {
	remaining := t * a.length
	for i, seg := range a.segments {
		if remaining <= seg || i == len(a.segments)-1 {
			local := 1.0
			if seg > 0 {
				local = remaining / seg
			}
			if local > 1 {
				local = 1
			}
			return a.endpoints[i].Lerp(a.endpoints[i+1], local)
		}
		remaining -= seg
	}
	return a.endpoints[len(a.endpoints)-1]
}

func (a *Linear) BeginAnimation(s *sched.Scheduler, r render.Renderer) error {
	return a.run(a, s, r, a.entity, a.resolveSteps(a.length), a.at)
}

func (a *Linear) Duration() int {
	return a.resolveSteps(a.length) * a.delay
}
