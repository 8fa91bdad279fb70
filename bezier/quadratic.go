package bezier

import "github.com/matt-g-everett/partx/geom"

// Quadratic is a second-order curve with one control point.
type Quadratic struct {
	P0, C, P1 geom.Vec3
}

func NewQuadratic(start, end, control geom.Vec3) Quadratic {
	return Quadratic{P0: start, C: control, P1: end}
}

func (q Quadratic) Start() geom.Vec3 { return q.P0 }
func (q Quadratic) End() geom.Vec3   { return q.P1 }

func (q Quadratic) ControlPoints() []geom.Vec3 {
	return []geom.Vec3{q.C}
}

func (q Quadratic) Compute(t float64) geom.Vec3 {
	u := 1 - t
	return q.P0.Mul(u * u).
		Add(q.C.Mul(2 * u * t)).
		Add(q.P1.Mul(t * t))
}

func (q Quadratic) Length(samples int) float64 {
	return chordLength(q, samples)
}
