package render

import (
	"math"
	"math/rand"

	"github.com/matt-g-everett/partx/bezier"
	"github.com/matt-g-everett/partx/geom"
)

// golden ratio plus one, used to spread points over spheres and shells
const sqrt5Plus1 = 3.23606

// SinkFunc receives every expanded particle point.
type SinkFunc func(p Particle, step int, pos geom.Vec3)

// PointRenderer expands every primitive into individual particle
// points and hands them to a sink. The jitter source is shared mutable
// state; it is only ever touched from the draw executor.
type PointRenderer struct {
	sink      SinkFunc
	jitter    *rand.Rand
	jitterAmp float64
}

// NewPointRenderer creates a PointRenderer over a sink. jitterAmp of
// zero disables point scatter.
func NewPointRenderer(sink SinkFunc, jitterAmp float64) *PointRenderer {
	r := new(PointRenderer)
	r.sink = sink
	r.jitter = rand.New(rand.NewSource(1))
	r.jitterAmp = jitterAmp
	return r
}

func (r *PointRenderer) emit(p Particle, step int, pos geom.Vec3) {
	if r.jitterAmp > 0 {
		pos = pos.Add(geom.V(
			(r.jitter.Float64()-0.5)*r.jitterAmp,
			(r.jitter.Float64()-0.5)*r.jitterAmp,
			(r.jitter.Float64()-0.5)*r.jitterAmp,
		))
	}
	r.sink(p, step, pos)
}

func (r *PointRenderer) DrawParticle(p Particle, step int, pos geom.Vec3) {
	r.emit(p, step, pos)
}

func (r *PointRenderer) DrawLine(p Particle, step int, start, end geom.Vec3, amount int) {
	if amount == 1 {
		r.emit(p, step, start)
		return
	}
	delta := end.Sub(start).Mul(1 / float64(amount-1))
	curr := start
	for i := 0; i < amount; i++ {
		r.emit(p, step, curr)
		curr = curr.Add(delta)
	}
}

func (r *PointRenderer) DrawEllipse(p Particle, step int, center geom.Vec3, radius, stretch float64, rotation geom.Vec3, amount int) {
	interval := 2 * math.Pi / float64(amount)
	for i := 0; i < amount; i++ {
		angle := interval * float64(i)
		pos := geom.V(radius*math.Cos(angle), stretch*math.Sin(angle), 0)
		r.emit(p, step, pos.Rotate(rotation).Add(center))
	}
}

func (r *PointRenderer) DrawEllipsoid(p Particle, step int, center, radii, rotation geom.Vec3, amount int) {
	for i := 0; i < amount; i++ {
		// Offset into the real-number distribution
		k := float64(i) + 0.5
		// Project the point on a unit sphere first
		phi := math.Acos(1 - 2*k/float64(amount))
		theta := math.Pi * k * sqrt5Plus1
		sinPhi := math.Sin(phi)
		pos := geom.V(math.Cos(theta)*sinPhi, math.Sin(theta)*sinPhi, math.Cos(phi))
		r.emit(p, step, pos.Scale(radii).Rotate(rotation).Add(center))
	}
}

func (r *PointRenderer) DrawBezier(p Particle, step int, origin geom.Vec3, curve bezier.Curve, rotation geom.Vec3, amount int) {
	interval := 1.0 / float64(amount)
	for i := 0; i < amount; i++ {
		pos := curve.Compute(interval * float64(i))
		r.emit(p, step, pos.Rotate(rotation).Add(origin))
	}
}

func (r *PointRenderer) DrawCone(p Particle, step int, center geom.Vec3, height, radius float64, rotation geom.Vec3, amount int) {
	for i := 0; i < amount; i++ {
		k := float64(i) + 0.5
		frac := k / float64(amount)
		theta := math.Pi * k * sqrt5Plus1
		rim := radius * (1 - frac)
		pos := geom.V(rim*math.Cos(theta), height*frac, rim*math.Sin(theta))
		r.emit(p, step, pos.Rotate(rotation).Add(center))
	}
}

func (r *PointRenderer) DrawCylinder(p Particle, step int, center geom.Vec3, radius, height float64, rotation geom.Vec3, amount int) {
	for i := 0; i < amount; i++ {
		k := float64(i) + 0.5
		theta := math.Pi * k * sqrt5Plus1
		pos := geom.V(radius*math.Cos(theta), height*k/float64(amount), radius*math.Sin(theta))
		r.emit(p, step, pos.Rotate(rotation).Add(center))
	}
}

func (r *PointRenderer) BeforeFrame(step int, origin geom.Vec3) {}
func (r *PointRenderer) AfterFrame(step int, origin geom.Vec3)  {}
