package render

import (
	"math"
	"testing"

	"github.com/matt-g-everett/partx/bezier"
	"github.com/matt-g-everett/partx/geom"
)

type captured struct {
	particle Particle
	step     int
	pos      geom.Vec3
}

func capture(out *[]captured) SinkFunc {
	return func(p Particle, step int, pos geom.Vec3) {
		*out = append(*out, captured{p, step, pos})
	}
}

func TestPointRendererLine(t *testing.T) {
	var got []captured
	r := NewPointRenderer(capture(&got), 0)

	r.DrawLine(Particle{ID: 1}, 4, geom.V(0, 0, 0), geom.V(4, 0, 0), 5)
	if len(got) != 5 {
		t.Fatalf("emitted %d points, want 5", len(got))
	}
	for i, c := range got {
		want := geom.V(float64(i), 0, 0)
		if c.pos.Distance(want) > 1e-9 {
			t.Errorf("point %d = %v, want %v", i, c.pos, want)
		}
		if c.step != 4 {
			t.Errorf("point %d step = %d, want 4", i, c.step)
		}
	}
}

func TestPointRendererEllipseLiesOnRing(t *testing.T) {
	var got []captured
	r := NewPointRenderer(capture(&got), 0)

	center := geom.V(10, 5, -2)
	r.DrawEllipse(Particle{}, 0, center, 3, 3, geom.V(0, 0, 0), 16)
	if len(got) != 16 {
		t.Fatalf("emitted %d points, want 16", len(got))
	}
	for i, c := range got {
		if d := c.pos.Distance(center); math.Abs(d-3) > 1e-9 {
			t.Errorf("point %d distance = %v, want 3", i, d)
		}
		if c.pos.Z != center.Z {
			t.Errorf("point %d left the ellipse plane: %v", i, c.pos)
		}
	}
}

func TestPointRendererEllipsoidOnSurface(t *testing.T) {
	var got []captured
	r := NewPointRenderer(capture(&got), 0)

	r.DrawEllipsoid(Particle{}, 0, geom.V(0, 0, 0), geom.V(2, 2, 2), geom.V(0, 0, 0), 64)
	if len(got) != 64 {
		t.Fatalf("emitted %d points, want 64", len(got))
	}
	for i, c := range got {
		if d := c.pos.Length(); math.Abs(d-2) > 1e-9 {
			t.Errorf("point %d radius = %v, want 2", i, d)
		}
	}
}

func TestPointRendererBezierFollowsCurve(t *testing.T) {
	var got []captured
	r := NewPointRenderer(capture(&got), 0)

	curve := bezier.NewLinear(geom.V(0, 0, 0), geom.V(10, 0, 0))
	origin := geom.V(0, 5, 0)
	r.DrawBezier(Particle{}, 0, origin, curve, geom.V(0, 0, 0), 10)
	if len(got) != 10 {
		t.Fatalf("emitted %d points, want 10", len(got))
	}
	if got[0].pos != origin {
		t.Errorf("first point = %v, want %v", got[0].pos, origin)
	}
	for i := 1; i < len(got); i++ {
		if got[i].pos.X <= got[i-1].pos.X {
			t.Errorf("points not monotone along the curve at %d", i)
		}
	}
}

func TestPointRendererConeWithinBounds(t *testing.T) {
	var got []captured
	r := NewPointRenderer(capture(&got), 0)

	r.DrawCone(Particle{}, 0, geom.V(0, 0, 0), 4, 2, geom.V(0, 0, 0), 40)
	for i, c := range got {
		if c.pos.Y < 0 || c.pos.Y > 4 {
			t.Errorf("point %d outside cone height: %v", i, c.pos)
		}
		lateral := math.Hypot(c.pos.X, c.pos.Z)
		wantRim := 2 * (1 - c.pos.Y/4)
		if math.Abs(lateral-wantRim) > 1e-9 {
			t.Errorf("point %d lateral = %v, want %v", i, lateral, wantRim)
		}
	}
}

func TestPointRendererCylinderOnShell(t *testing.T) {
	var got []captured
	r := NewPointRenderer(capture(&got), 0)

	r.DrawCylinder(Particle{}, 0, geom.V(0, 0, 0), 1.5, 3, geom.V(0, 0, 0), 40)
	for i, c := range got {
		lateral := math.Hypot(c.pos.X, c.pos.Z)
		if math.Abs(lateral-1.5) > 1e-9 {
			t.Errorf("point %d lateral = %v, want 1.5", i, lateral)
		}
		if c.pos.Y < 0 || c.pos.Y > 3 {
			t.Errorf("point %d outside cylinder height: %v", i, c.pos)
		}
	}
}

func TestPointRendererJitterScatters(t *testing.T) {
	var plain, jittered []captured
	NewPointRenderer(capture(&plain), 0).DrawParticle(Particle{}, 0, geom.V(1, 1, 1))
	NewPointRenderer(capture(&jittered), 0.5).DrawParticle(Particle{}, 0, geom.V(1, 1, 1))

	if plain[0].pos != geom.V(1, 1, 1) {
		t.Errorf("unjittered point moved: %v", plain[0].pos)
	}
	if jittered[0].pos == geom.V(1, 1, 1) {
		t.Error("jittered point did not move")
	}
	if jittered[0].pos.Distance(geom.V(1, 1, 1)) > 0.5 {
		t.Errorf("jitter exceeds amplitude: %v", jittered[0].pos)
	}
}
