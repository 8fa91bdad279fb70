package anim

import (
	"fmt"
	"math"

	"github.com/matt-g-everett/partx/geom"
	"github.com/matt-g-everett/partx/render"
	"github.com/matt-g-everett/partx/sched"
	"github.com/matt-g-everett/partx/shape"
)

// Orbit animates a shape around an elliptical path centered on a point.
type Orbit struct {
	base
	entity   shape.Shape
	center   geom.Vec3
	radius   float64
	stretch  float64
	rotation geom.Vec3
	offset   float64 // starting angle in radians
}

func newOrbit(delay int, entity shape.Shape, center geom.Vec3, radius, stretch float64) (*Orbit, error) {
	b, err := newBase(delay)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, fmt.Errorf("anim: entity must not be nil")
	}
	if radius <= 0 {
		return nil, fmt.Errorf("anim: orbit radius must be positive, got %v", radius)
	}
	if stretch <= 0 {
		return nil, fmt.Errorf("anim: orbit stretch must be positive, got %v", stretch)
	}
	return &Orbit{base: b, entity: entity, center: center, radius: radius, stretch: stretch}, nil
}

// NewOrbit uses a fixed step count around the ellipse.
func NewOrbit(delay int, entity shape.Shape, center geom.Vec3, radius, stretch float64, steps int) (*Orbit, error) {
	a, err := newOrbit(delay, entity, center, radius, stretch)
	if err != nil {
		return nil, err
	}
	if err := a.SetRenderSteps(steps); err != nil {
		return nil, err
	}
	return a, nil
}

// NewOrbitInterval derives the step count from the estimated
// circumference.
func NewOrbitInterval(delay int, entity shape.Shape, center geom.Vec3, radius, stretch float64, interval float64) (*Orbit, error) {
	a, err := newOrbit(delay, entity, center, radius, stretch)
	if err != nil {
		return nil, err
	}
	if err := a.SetRenderInterval(interval); err != nil {
		return nil, err
	}
	return a, nil
}

// SetRotation tilts the orbital plane.
func (a *Orbit) SetRotation(rotation geom.Vec3) {
	a.rotation = geom.NormalizeRotation(rotation)
}

// SetAngleOffset sets the starting angle.
func (a *Orbit) SetAngleOffset(offset float64) {
	a.offset = offset
}

// circumference uses Ramanujan's approximation.
func (a *Orbit) circumference() float64 {
	x, y := a.radius, a.stretch
	return math.Pi * (3*(x+y) - math.Sqrt((3*x+y)*(x+3*y)))
}

func (a *Orbit) at(t float64) geom.Vec3 {
	angle := a.offset + 2*math.Pi*t
	pos := geom.V(a.radius*math.Cos(angle), a.stretch*math.Sin(angle), 0)
	return pos.Rotate(a.rotation).Add(a.center)
}

func (a *Orbit) BeginAnimation(s *sched.Scheduler, r render.Renderer) error {
	return a.run(a, s, r, a.entity, a.resolveSteps(a.circumference()), a.at)
}

func (a *Orbit) Duration() int {
	return a.resolveSteps(a.circumference()) * a.delay
}
