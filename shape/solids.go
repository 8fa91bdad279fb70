package shape

import (
	"github.com/matt-g-everett/partx/ease"
	"github.com/matt-g-everett/partx/geom"
	"github.com/matt-g-everett/partx/render"
)

// Ellipsoid draws particles over an ellipsoid surface. A sphere is an
// ellipsoid with equal radii.
type Ellipsoid struct {
	Base
	Radii ease.Curve[geom.Vec3]
}

func NewEllipsoid(p render.Particle, radii geom.Vec3, amount int) (*Ellipsoid, error) {
	if err := positive("x radius", radii.X); err != nil {
		return nil, err
	}
	if err := positive("y radius", radii.Y); err != nil {
		return nil, err
	}
	if err := positive("z radius", radii.Z); err != nil {
		return nil, err
	}
	if err := positiveCount("amount", amount); err != nil {
		return nil, err
	}
	return &Ellipsoid{Base: newBase(p, amount), Radii: ease.Fixed(radii)}, nil
}

// NewSphere is NewEllipsoid with one radius.
func NewSphere(p render.Particle, radius float64, amount int) (*Ellipsoid, error) {
	return NewEllipsoid(p, geom.V(radius, radius, radius), amount)
}

func (s *Ellipsoid) Evaluate(r render.Renderer, step, totalSteps int, pos geom.Vec3) error {
	ctx, cur := applyStack(s.Before, NewContext(step, totalSteps, pos), s)
	self, ok := cur.(*Ellipsoid)
	if !ok {
		return cur.Evaluate(r, step, totalSteps, pos)
	}
	f, err := self.resolve(step, totalSteps, pos)
	if err != nil {
		return err
	}
	radii := self.Radii.Compute(f.T)
	if radii.X <= 0 || radii.Y <= 0 || radii.Z <= 0 {
		return &ParamError{Param: "radii", Value: minComponent(radii)}
	}
	r.DrawEllipsoid(self.Particle, step, f.Origin, radii, f.Rotation, f.Amount)
	applyStack(self.After, ctx, self)
	return nil
}

func (s *Ellipsoid) Clone() Shape {
	out := *s
	out.Base = s.cloneBase()
	return &out
}

// Cone draws a cone shell with the apex up the y axis.
type Cone struct {
	Base
	Height ease.Curve[float64]
	Radius ease.Curve[float64]
}

func NewCone(p render.Particle, height, radius float64, amount int) (*Cone, error) {
	if err := positive("height", height); err != nil {
		return nil, err
	}
	if err := positive("radius", radius); err != nil {
		return nil, err
	}
	if err := positiveCount("amount", amount); err != nil {
		return nil, err
	}
	return &Cone{
		Base:   newBase(p, amount),
		Height: ease.Fixed(height),
		Radius: ease.Fixed(radius),
	}, nil
}

func (s *Cone) Evaluate(r render.Renderer, step, totalSteps int, pos geom.Vec3) error {
	ctx, cur := applyStack(s.Before, NewContext(step, totalSteps, pos), s)
	self, ok := cur.(*Cone)
	if !ok {
		return cur.Evaluate(r, step, totalSteps, pos)
	}
	f, err := self.resolve(step, totalSteps, pos)
	if err != nil {
		return err
	}
	height := self.Height.Compute(f.T)
	if height <= 0 {
		return &ParamError{Param: "height", Value: height}
	}
	radius := self.Radius.Compute(f.T)
	if radius <= 0 {
		return &ParamError{Param: "radius", Value: radius}
	}
	r.DrawCone(self.Particle, step, f.Origin, height, radius, f.Rotation, f.Amount)
	applyStack(self.After, ctx, self)
	return nil
}

func (s *Cone) Clone() Shape {
	out := *s
	out.Base = s.cloneBase()
	return &out
}

// Cylinder draws a cylinder shell around the y axis.
type Cylinder struct {
	Base
	Radius ease.Curve[float64]
	Height ease.Curve[float64]
}

func NewCylinder(p render.Particle, radius, height float64, amount int) (*Cylinder, error) {
	if err := positive("radius", radius); err != nil {
		return nil, err
	}
	if err := positive("height", height); err != nil {
		return nil, err
	}
	if err := positiveCount("amount", amount); err != nil {
		return nil, err
	}
	return &Cylinder{
		Base:   newBase(p, amount),
		Radius: ease.Fixed(radius),
		Height: ease.Fixed(height),
	}, nil
}

func (s *Cylinder) Evaluate(r render.Renderer, step, totalSteps int, pos geom.Vec3) error {
	ctx, cur := applyStack(s.Before, NewContext(step, totalSteps, pos), s)
	self, ok := cur.(*Cylinder)
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
	height := self.Height.Compute(f.T)
	if height <= 0 {
		return &ParamError{Param: "height", Value: height}
	}
	r.DrawCylinder(self.Particle, step, f.Origin, radius, height, f.Rotation, f.Amount)
	applyStack(self.After, ctx, self)
	return nil
}

func (s *Cylinder) Clone() Shape {
	out := *s
	out.Base = s.cloneBase()
	return &out
}

func minComponent(v geom.Vec3) float64 {
	m := v.X
	if v.Y < m {
		m = v.Y
	}
	if v.Z < m {
		m = v.Z
	}
	return m
}
