package bezier

import "github.com/matt-g-everett/partx/geom"

// Linear is a straight segment between two points.
type Linear struct {
	P0, P1 geom.Vec3
}

func NewLinear(start, end geom.Vec3) Linear {
	return Linear{P0: start, P1: end}
}

func (l Linear) Start() geom.Vec3 { return l.P0 }
func (l Linear) End() geom.Vec3   { return l.P1 }

func (l Linear) ControlPoints() []geom.Vec3 { return nil }

func (l Linear) Compute(t float64) geom.Vec3 {
	return l.P0.Lerp(l.P1, t)
}

// Length of a segment is exact regardless of the sample count.
func (l Linear) Length(samples int) float64 {
	return l.P0.Distance(l.P1)
}
