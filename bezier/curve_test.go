package bezier

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/matt-g-everett/partx/geom"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestEndpoints(t *testing.T) {
	start := geom.V(1, 2, 3)
	end := geom.V(-4, 0, 7)

	curves := map[string]Curve{
		"linear":        NewLinear(start, end),
		"quadratic":     NewQuadratic(start, end, geom.V(0, 10, 0)),
		"cubic":         NewCubic(start, end, geom.V(0, 10, 0), geom.V(5, -2, 1)),
		"parameterized": NewParameterized(start, end, geom.V(0, 10, 0), geom.V(5, -2, 1), geom.V(1, 1, 1)),
	}
	for name, c := range curves {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(start, c.Compute(0), approx); diff != "" {
				t.Errorf("Compute(0) mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(end, c.Compute(1), approx); diff != "" {
				t.Errorf("Compute(1) mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLinearMidpoint(t *testing.T) {
	l := NewLinear(geom.V(0, 0, 0), geom.V(2, 4, 6))
	if diff := cmp.Diff(geom.V(1, 2, 3), l.Compute(0.5), approx); diff != "" {
		t.Errorf("midpoint mismatch (-want +got):\n%s", diff)
	}
	if got := l.Length(1); math.Abs(got-math.Sqrt(56)) > 1e-9 {
		t.Errorf("Length = %v, want sqrt(56)", got)
	}
}

func TestParameterizedMatchesClosedForms(t *testing.T) {
	start := geom.V(0, 0, 0)
	end := geom.V(10, 0, 0)
	c0 := geom.V(2, 8, 0)
	c1 := geom.V(8, -8, 2)

	quad := NewQuadratic(start, end, c0)
	quadGen := NewParameterized(start, end, c0)
	cubic := NewCubic(start, end, c0, c1)
	cubicGen := NewParameterized(start, end, c0, c1)

	for i := 0; i <= 20; i++ {
		tt := float64(i) / 20
		if diff := cmp.Diff(quad.Compute(tt), quadGen.Compute(tt), approx); diff != "" {
			t.Fatalf("quadratic t=%v (-want +got):\n%s", tt, diff)
		}
		if diff := cmp.Diff(cubic.Compute(tt), cubicGen.Compute(tt), approx); diff != "" {
			t.Fatalf("cubic t=%v (-want +got):\n%s", tt, diff)
		}
	}
}

func TestLengthConverges(t *testing.T) {
	c := NewCubic(geom.V(0, 0, 0), geom.V(10, 0, 0), geom.V(0, 5, 0), geom.V(10, 5, 0))
	coarse := c.Length(4)
	fine := c.Length(256)
	finer := c.Length(1024)

	// Chord sampling never overestimates arc length, so refining the
	// sample count can only grow the estimate.
	if coarse > fine || fine > finer {
		t.Errorf("length estimates not monotone: %v, %v, %v", coarse, fine, finer)
	}
	if math.Abs(fine-finer) > 1e-3 {
		t.Errorf("length did not converge: %v vs %v", fine, finer)
	}
	// Never shorter than the straight-line distance.
	if fine < 10 {
		t.Errorf("Length = %v, want >= 10", fine)
	}
}

func TestDegenerateCurveIsAPoint(t *testing.T) {
	p := geom.V(3, 3, 3)
	c := NewCubic(p, p, p, p)
	for _, tt := range []float64{0, 0.5, 1} {
		if diff := cmp.Diff(p, c.Compute(tt), approx); diff != "" {
			t.Errorf("Compute(%v) (-want +got):\n%s", tt, diff)
		}
	}
	if got := c.Length(64); got != 0 {
		t.Errorf("Length = %v, want 0", got)
	}
}

func TestControlPointsCopied(t *testing.T) {
	c0 := geom.V(1, 1, 1)
	p := NewParameterized(geom.V(0, 0, 0), geom.V(2, 2, 2), c0)
	pts := p.ControlPoints()
	pts[0] = geom.V(9, 9, 9)
	if got := p.ControlPoints()[0]; got != c0 {
		t.Errorf("control point mutated through the returned slice: %v", got)
	}
}
