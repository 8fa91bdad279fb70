package shape

import (
	"fmt"

	"github.com/matt-g-everett/partx/bezier"
	"github.com/matt-g-everett/partx/geom"
	"github.com/matt-g-everett/partx/render"
)

// Curve draws amount particles along a procedural path, relative to the
// draw origin.
type Curve struct {
	Base
	Path bezier.Curve
}

func NewCurve(p render.Particle, path bezier.Curve, amount int) (*Curve, error) {
	if path == nil {
		return nil, fmt.Errorf("shape: curve path must not be nil")
	}
	if err := positiveCount("amount", amount); err != nil {
		return nil, err
	}
	return &Curve{Base: newBase(p, amount), Path: path}, nil
}

func (s *Curve) Evaluate(r render.Renderer, step, totalSteps int, pos geom.Vec3) error {
	ctx, cur := applyStack(s.Before, NewContext(step, totalSteps, pos), s)
	self, ok := cur.(*Curve)
	if !ok {
		return cur.Evaluate(r, step, totalSteps, pos)
	}
	f, err := self.resolve(step, totalSteps, pos)
	if err != nil {
		return err
	}
	r.DrawBezier(self.Particle, step, f.Origin, self.Path, f.Rotation, f.Amount)
	applyStack(self.After, ctx, self)
	return nil
}

func (s *Curve) Clone() Shape {
	out := *s
	out.Base = s.cloneBase()
	return &out
}
