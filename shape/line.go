package shape

import (
	"github.com/matt-g-everett/partx/ease"
	"github.com/matt-g-everett/partx/geom"
	"github.com/matt-g-everett/partx/render"
)

// Line draws amount particles between two endpoints, both relative to
// the draw origin and both easeable.
type Line struct {
	Base
	Start ease.Curve[geom.Vec3]
	End   ease.Curve[geom.Vec3]
}

func NewLine(p render.Particle, start, end geom.Vec3, amount int) (*Line, error) {
	if err := positiveCount("amount", amount); err != nil {
		return nil, err
	}
	return &Line{
		Base:  newBase(p, amount),
		Start: ease.Fixed(start),
		End:   ease.Fixed(end),
	}, nil
}

func (s *Line) Evaluate(r render.Renderer, step, totalSteps int, pos geom.Vec3) error {
	ctx, cur := applyStack(s.Before, NewContext(step, totalSteps, pos), s)
	self, ok := cur.(*Line)
	if !ok {
		return cur.Evaluate(r, step, totalSteps, pos)
	}
	f, err := self.resolve(step, totalSteps, pos)
	if err != nil {
		return err
	}
	start := self.Start.Compute(f.T).Rotate(f.Rotation).Add(f.Origin)
	end := self.End.Compute(f.T).Rotate(f.Rotation).Add(f.Origin)
	r.DrawLine(self.Particle, step, start, end, f.Amount)
	applyStack(self.After, ctx, self)
	return nil
}

func (s *Line) Clone() Shape {
	out := *s
	out.Base = s.cloneBase()
	return &out
}
