// Package render defines the renderer collaborator boundary: one
// primitive call per shape family, plus frame bracket hooks. A renderer
// either expands primitives to particle points in-process, or encodes
// them as instructions for a remote sink.
package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/partx/bezier"
	"github.com/matt-g-everett/partx/geom"
)

// Particle describes what gets drawn at each point: a renderer-facing
// type id and a color.
type Particle struct {
	ID    uint8
	Color colorful.Color
}

// Renderer is the capability set shape entities draw against. None of
// the methods are safe for concurrent use; all drawing is funneled
// through a single executor.
type Renderer interface {
	DrawParticle(p Particle, step int, pos geom.Vec3)
	DrawLine(p Particle, step int, start, end geom.Vec3, amount int)
	DrawEllipse(p Particle, step int, center geom.Vec3, radius, stretch float64, rotation geom.Vec3, amount int)
	DrawEllipsoid(p Particle, step int, center, radii, rotation geom.Vec3, amount int)
	DrawBezier(p Particle, step int, origin geom.Vec3, curve bezier.Curve, rotation geom.Vec3, amount int)
	DrawCone(p Particle, step int, center geom.Vec3, height, radius float64, rotation geom.Vec3, amount int)
	DrawCylinder(p Particle, step int, center geom.Vec3, radius, height float64, rotation geom.Vec3, amount int)

	// BeforeFrame and AfterFrame bracket each animation step, so
	// buffering renderers can flush once per frame.
	BeforeFrame(step int, origin geom.Vec3)
	AfterFrame(step int, origin geom.Vec3)
}

// Discard swallows every draw call. Animators use it for trimmed steps
// that must still run their evaluation logic.
var Discard Renderer = discard{}

type discard struct{}

func (discard) DrawParticle(Particle, int, geom.Vec3)                                      {}
func (discard) DrawLine(Particle, int, geom.Vec3, geom.Vec3, int)                          {}
func (discard) DrawEllipse(Particle, int, geom.Vec3, float64, float64, geom.Vec3, int)     {}
func (discard) DrawEllipsoid(Particle, int, geom.Vec3, geom.Vec3, geom.Vec3, int)          {}
func (discard) DrawBezier(Particle, int, geom.Vec3, bezier.Curve, geom.Vec3, int)          {}
func (discard) DrawCone(Particle, int, geom.Vec3, float64, float64, geom.Vec3, int)        {}
func (discard) DrawCylinder(Particle, int, geom.Vec3, float64, float64, geom.Vec3, int)    {}
func (discard) BeforeFrame(int, geom.Vec3)                                                 {}
func (discard) AfterFrame(int, geom.Vec3)                                                  {}
