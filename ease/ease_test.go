package ease

import (
	"errors"
	"math"
	"testing"

	fease "github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/partx/geom"
)

func TestConstantIgnoresProgress(t *testing.T) {
	c := Fixed(42)
	for _, tt := range []float64{0, 0.3, 1} {
		if got := c.Compute(tt); got != 42 {
			t.Errorf("Compute(%v) = %d, want 42", tt, got)
		}
	}
}

func TestConstantOf(t *testing.T) {
	if v, ok := ConstantOf[int](Fixed(7)); !ok || v != 7 {
		t.Errorf("ConstantOf(Fixed(7)) = %d, %v", v, ok)
	}
	if _, ok := ConstantOf[float64](Float{Start: 0, End: 1}); ok {
		t.Error("ConstantOf(Float) reported constant")
	}
	got := ConstantOrElse[float64](Float{Start: 0, End: 1}, func() float64 { return -1 })
	if got != -1 {
		t.Errorf("ConstantOrElse fallback = %v, want -1", got)
	}
}

func TestChainedSegmentSelection(t *testing.T) {
	chain, err := NewChained([]ChainEntry[int]{
		{Curve: Fixed(1), Until: 0.5},
		{Curve: Fixed(2), Until: 1.0},
	})
	if err != nil {
		t.Fatalf("NewChained: %v", err)
	}

	cases := []struct {
		t    float64
		want int
	}{
		{0, 1},
		{0.25, 1},
		{0.5, 1}, // boundary belongs to the first segment
		{0.500001, 2},
		{0.75, 2},
		{1, 2},
	}
	for _, c := range cases {
		if got := chain.Compute(c.t); got != c.want {
			t.Errorf("Compute(%v) = %d, want %d", c.t, got, c.want)
		}
	}
}

func TestChainedRescalesProgress(t *testing.T) {
	chain, err := NewChained([]ChainEntry[float64]{
		{Curve: Float{Start: 0, End: 10}, Until: 0.5},
		{Curve: Float{Start: 10, End: 20}, Until: 1.0},
	})
	if err != nil {
		t.Fatalf("NewChained: %v", err)
	}
	if got := chain.Compute(0.25); math.Abs(got-5) > 1e-9 {
		t.Errorf("Compute(0.25) = %v, want 5", got)
	}
	if got := chain.Compute(0.75); math.Abs(got-15) > 1e-9 {
		t.Errorf("Compute(0.75) = %v, want 15", got)
	}
}

func TestChainedValidation(t *testing.T) {
	cases := []struct {
		name    string
		entries []ChainEntry[int]
	}{
		{"empty", nil},
		{"unordered", []ChainEntry[int]{{Fixed(1), 0.8}, {Fixed(2), 0.5}, {Fixed(3), 1.0}}},
		{"short", []ChainEntry[int]{{Fixed(1), 0.5}}},
		{"zero boundary", []ChainEntry[int]{{Fixed(1), 0}, {Fixed(2), 1.0}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewChained(c.entries); !errors.Is(err, ErrCurveResolution) {
				t.Errorf("NewChained = %v, want ErrCurveResolution", err)
			}
		})
	}
}

func TestFloatShaping(t *testing.T) {
	f := Float{Start: 0, End: 8, Shape: fease.InQuad}
	// InQuad(0.5) = 0.25
	if got := f.Compute(0.5); math.Abs(got-2) > 1e-9 {
		t.Errorf("Compute(0.5) = %v, want 2", got)
	}
	linear := Float{Start: 2, End: 4}
	if got := linear.Compute(0.5); math.Abs(got-3) > 1e-9 {
		t.Errorf("Compute(0.5) = %v, want 3", got)
	}
}

func TestVectorEndpoints(t *testing.T) {
	v := Vector{Start: geom.V(0, 0, 0), End: geom.V(2, 4, 6)}
	if got := v.Compute(0); got != geom.V(0, 0, 0) {
		t.Errorf("Compute(0) = %v", got)
	}
	if got := v.Compute(1); got != geom.V(2, 4, 6) {
		t.Errorf("Compute(1) = %v", got)
	}
	if got := v.Compute(0.5); got != geom.V(1, 2, 3) {
		t.Errorf("Compute(0.5) = %v", got)
	}
}

func TestCountRounds(t *testing.T) {
	c := Count{Start: 0, End: 10}
	if got := c.Compute(0.55); got != 6 {
		t.Errorf("Compute(0.55) = %d, want 6", got)
	}
	if got := c.Compute(0); got != 0 {
		t.Errorf("Compute(0) = %d, want 0", got)
	}
}

func TestGradientBlends(t *testing.T) {
	g := Gradient{
		Table: GradientTable{
			{Hue: 0, Pos: 0},
			{Hue: 180, Pos: 1},
		},
		Saturation: 0.5,
		Luminance:  0.5,
	}
	if got, want := g.Compute(0.5), colorful.Hcl(90, 0.5, 0.5); got != want {
		t.Errorf("Compute(0.5) = %v, want %v", got, want)
	}
	// Past the last keypoint the gradient holds its final hue.
	if got, want := g.Compute(1.5), colorful.Hcl(180, 0.5, 0.5); got != want {
		t.Errorf("Compute(1.5) = %v, want %v", got, want)
	}
}

func TestGradientEmptyTable(t *testing.T) {
	var g Gradient
	if got := g.Compute(0.5); got != (colorful.Color{}) {
		t.Errorf("Compute on an empty table = %v, want the zero color", got)
	}
}
