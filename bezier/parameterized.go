package bezier

import "github.com/matt-g-everett/partx/geom"

// Parameterized is a curve of arbitrary order. Compute performs
// iterative control-point reduction (lerping consecutive point pairs by
// t until one point remains), which stays numerically stable for any
// order at O(n^2) cost per evaluation.
type Parameterized struct {
	points []geom.Vec3 // start, controls..., end
}

func NewParameterized(start, end geom.Vec3, controls ...geom.Vec3) Parameterized {
	points := make([]geom.Vec3, 0, len(controls)+2)
	points = append(points, start)
	points = append(points, controls...)
	points = append(points, end)
	return Parameterized{points: points}
}

func (p Parameterized) Start() geom.Vec3 { return p.points[0] }
func (p Parameterized) End() geom.Vec3   { return p.points[len(p.points)-1] }

func (p Parameterized) ControlPoints() []geom.Vec3 {
	controls := make([]geom.Vec3, len(p.points)-2)
	copy(controls, p.points[1:len(p.points)-1])
	return controls
}

func (p Parameterized) Compute(t float64) geom.Vec3 {
	scratch := make([]geom.Vec3, len(p.points))
	copy(scratch, p.points)
	for n := len(scratch); n > 1; n-- {
		for i := 0; i < n-1; i++ {
			scratch[i] = scratch[i].Lerp(scratch[i+1], t)
		}
	}
	return scratch[0]
}

func (p Parameterized) Length(samples int) float64 {
	return chordLength(p, samples)
}
