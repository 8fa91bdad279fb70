package shape

import (
	"fmt"

	"github.com/matt-g-everett/partx/geom"
	"github.com/matt-g-everett/partx/render"
)

// Combiner groups several shapes into one entity. Children share the
// combiner's resolved transform: they are all drawn at the combiner's
// origin for the step. Children are cloned on construction, so later
// mutation of the originals cannot alter the combiner.
type Combiner struct {
	Base
	children []Shape
}

func NewCombiner(children ...Shape) (*Combiner, error) {
	if len(children) == 0 {
		return nil, fmt.Errorf("shape: combiner requires at least one child")
	}
	owned := make([]Shape, len(children))
	for i, c := range children {
		owned[i] = c.Clone()
	}
	return &Combiner{Base: newBase(render.Particle{}, 1), children: owned}, nil
}

// Children returns the combiner's owned shapes.
func (s *Combiner) Children() []Shape {
	return s.children
}

func (s *Combiner) Evaluate(r render.Renderer, step, totalSteps int, pos geom.Vec3) error {
	ctx, cur := applyStack(s.Before, NewContext(step, totalSteps, pos), s)
	self, ok := cur.(*Combiner)
	if !ok {
		return cur.Evaluate(r, step, totalSteps, pos)
	}
	f, err := self.resolve(step, totalSteps, pos)
	if err != nil {
		return err
	}
	for _, child := range self.children {
		if err := child.Evaluate(r, step, totalSteps, f.Origin); err != nil {
			return err
		}
	}
	applyStack(self.After, ctx, self)
	return nil
}

func (s *Combiner) Clone() Shape {
	out := *s
	out.Base = s.cloneBase()
	out.children = make([]Shape, len(s.children))
	for i, c := range s.children {
		out.children[i] = c.Clone()
	}
	return &out
}
