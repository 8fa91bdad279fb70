// Package bezier implements parametric 3D curves used as animation
// paths: linear, quadratic, cubic, and arbitrary-order variants.
package bezier

import "github.com/matt-g-everett/partx/geom"

// A Curve is an immutable parametric path from Start to End. Compute is
// pure and total on [0, 1]; Length estimates arc length by summing the
// chord distances of samples uniformly spaced evaluations, so its
// accuracy depends on the sample count alone.
type Curve interface {
	Start() geom.Vec3
	End() geom.Vec3
	ControlPoints() []geom.Vec3
	Compute(t float64) geom.Vec3
	Length(samples int) float64
}

// chordLength is the sampling estimator shared by every non-linear
// variant.
func chordLength(c Curve, samples int) float64 {
	if samples < 1 {
		samples = 1
	}
	sum := 0.0
	prev := c.Start()
	interval := 1.0 / float64(samples)
	for i := 1; i <= samples; i++ {
		point := c.Compute(interval * float64(i))
		sum += point.Distance(prev)
		prev = point
	}
	return sum
}
