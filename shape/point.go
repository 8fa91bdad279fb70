package shape

import (
	"github.com/matt-g-everett/partx/geom"
	"github.com/matt-g-everett/partx/render"
)

// Point draws its amount of particles at a single position.
type Point struct {
	Base
}

func NewPoint(p render.Particle, amount int) (*Point, error) {
	if err := positiveCount("amount", amount); err != nil {
		return nil, err
	}
	return &Point{Base: newBase(p, amount)}, nil
}

func (s *Point) Evaluate(r render.Renderer, step, totalSteps int, pos geom.Vec3) error {
	ctx, cur := applyStack(s.Before, NewContext(step, totalSteps, pos), s)
	self, ok := cur.(*Point)
	if !ok {
		return cur.Evaluate(r, step, totalSteps, pos)
	}
	f, err := self.resolve(step, totalSteps, pos)
	if err != nil {
		return err
	}
	for i := 0; i < f.Amount; i++ {
		r.DrawParticle(self.Particle, step, f.Origin)
	}
	applyStack(self.After, ctx, self)
	return nil
}

func (s *Point) Clone() Shape {
	out := *s
	out.Base = s.cloneBase()
	return &out
}
