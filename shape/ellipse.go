package shape

import (
	"github.com/matt-g-everett/partx/ease"
	"github.com/matt-g-everett/partx/geom"
	"github.com/matt-g-everett/partx/render"
)

// Circle draws an evenly spaced ring of particles.
type Circle struct {
	Base
	Radius ease.Curve[float64]
}

func NewCircle(p render.Particle, radius float64, amount int) (*Circle, error) {
	if err := positive("radius", radius); err != nil {
		return nil, err
	}
	if err := positiveCount("amount", amount); err != nil {
		return nil, err
	}
	return &Circle{Base: newBase(p, amount), Radius: ease.Fixed(radius)}, nil
}

func (s *Circle) Evaluate(r render.Renderer, step, totalSteps int, pos geom.Vec3) error {
	ctx, cur := applyStack(s.Before, NewContext(step, totalSteps, pos), s)
	self, ok := cur.(*Circle)
	if !ok {
		return cur.Evaluate(r, step, totalSteps, pos)
	}
	f, err := self.resolve(step, totalSteps, pos)
	if err != nil {
		return err
	}
	radius := self.Radius.Compute(f.T)
	if radius <= 0 {
		return &ParamError{Param: "radius", Value: radius}
	}
	r.DrawEllipse(self.Particle, step, f.Origin, radius, radius, f.Rotation, f.Amount)
	applyStack(self.After, ctx, self)
	return nil
}

func (s *Circle) Clone() Shape {
	out := *s
	out.Base = s.cloneBase()
	return &out
}

// Ellipse draws a stretched ring; Radius spans the x axis and Stretch
// the y axis before rotation.
type Ellipse struct {
	Base
	Radius  ease.Curve[float64]
	Stretch ease.Curve[float64]
}

func NewEllipse(p render.Particle, radius, stretch float64, amount int) (*Ellipse, error) {
	if err := positive("radius", radius); err != nil {
		return nil, err
	}
	if err := positive("stretch", stretch); err != nil {
		return nil, err
	}
	if err := positiveCount("amount", amount); err != nil {
		return nil, err
	}
	return &Ellipse{
		Base:    newBase(p, amount),
		Radius:  ease.Fixed(radius),
		Stretch: ease.Fixed(stretch),
	}, nil
}

func (s *Ellipse) Evaluate(r render.Renderer, step, totalSteps int, pos geom.Vec3) error {
	ctx, cur := applyStack(s.Before, NewContext(step, totalSteps, pos), s)
	self, ok := cur.(*Ellipse)
	if !ok {
		return cur.Evaluate(r, step, totalSteps, pos)
	}
	f, err := self.resolve(step, totalSteps, pos)
	if err != nil {
		return err
	}
	radius := self.Radius.Compute(f.T)
	if radius <= 0 {
		return &ParamError{Param: "radius", Value: radius}
	}
	stretch := self.Stretch.Compute(f.T)
	if stretch <= 0 {
		return &ParamError{Param: "stretch", Value: stretch}
	}
	r.DrawEllipse(self.Particle, step, f.Origin, radius, stretch, f.Rotation, f.Amount)
	applyStack(self.After, ctx, self)
	return nil
}

func (s *Ellipse) Clone() Shape {
	out := *s
	out.Base = s.cloneBase()
	return &out
}
