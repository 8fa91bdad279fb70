package bezier

import "github.com/matt-g-everett/partx/geom"

// Cubic is a third-order curve with two control points.
type Cubic struct {
	P0, C0, C1, P1 geom.Vec3
}

func NewCubic(start, end, control0, control1 geom.Vec3) Cubic {
	return Cubic{P0: start, C0: control0, C1: control1, P1: end}
}

func (c Cubic) Start() geom.Vec3 { return c.P0 }
func (c Cubic) End() geom.Vec3   { return c.P1 }

func (c Cubic) ControlPoints() []geom.Vec3 {
	return []geom.Vec3{c.C0, c.C1}
}

func (c Cubic) Compute(t float64) geom.Vec3 {
	u := 1 - t
	return c.P0.Mul(u * u * u).
		Add(c.C0.Mul(3 * u * u * t)).
		Add(c.C1.Mul(3 * u * t * t)).
		Add(c.P1.Mul(t * t * t))
}

func (c Cubic) Length(samples int) float64 {
	return chordLength(c, samples)
}
