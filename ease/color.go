package ease

import (
	fease "github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"
)

// Color blends between two colors in HCL space.
type Color struct {
	Start, End colorful.Color
	Shape      fease.Function
}

func (c Color) Compute(t float64) colorful.Color {
	if c.Shape != nil {
		t = c.Shape(t)
	}
	return c.Start.BlendHcl(c.End, t).Clamped()
}

// GradientTable stores a look-up table of hues keyed by progress.
type GradientTable []struct {
	Hue float64
	Pos float64
}

// Gradient walks a hue table at fixed saturation and luminance.
type Gradient struct {
	Table      GradientTable
	Saturation float64
	Luminance  float64
}

func (g Gradient) Compute(t float64) colorful.Color {
	tbl := g.Table
	if len(tbl) == 0 {
		return colorful.Color{}
	}
	for i := 0; i < len(tbl)-1; i++ {
		c1 := tbl[i]
		c2 := tbl[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			// We are in between c1 and c2. Go blend them!
			h := (((t - c1.Pos) / (c2.Pos - c1.Pos)) * (c2.Hue - c1.Hue)) + c1.Hue
			return colorful.Hcl(h, g.Saturation, g.Luminance)
		}
	}

	// Nothing found? Means we're at (or past) the last gradient keypoint.
	return colorful.Hcl(tbl[len(tbl)-1].Hue, g.Saturation, g.Luminance)
}
