package ease

import (
	"math"

	fease "github.com/fogleman/ease"

	"github.com/matt-g-everett/partx/geom"
)

// Float interpolates between two scalars, optionally reshaping progress
// with one of the fogleman/ease functions (ease.InOutQuad and friends).
// A nil Shape means linear progress.
type Float struct {
	Start, End float64
	Shape      fease.Function
}

func (f Float) Compute(t float64) float64 {
	if f.Shape != nil {
		t = f.Shape(t)
	}
	return f.Start + (f.End-f.Start)*t
}

// Vector interpolates between two points with a shared shaping function
// across all three components.
type Vector struct {
	Start, End geom.Vec3
	Shape      fease.Function
}

func (v Vector) Compute(t float64) geom.Vec3 {
	if v.Shape != nil {
		t = v.Shape(t)
	}
	return v.Start.Lerp(v.End, t)
}

// Count interpolates between two integer amounts, rounding to the
// nearest whole value.
type Count struct {
	Start, End int
	Shape      fease.Function
}

func (c Count) Compute(t float64) int {
	if c.Shape != nil {
		t = c.Shape(t)
	}
	return int(math.Round(float64(c.Start) + (float64(c.End)-float64(c.Start))*t))
}
