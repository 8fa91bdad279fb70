package geom

import "math"

// Vec3 is a point or direction in 3D space.
type Vec3 struct {
	X, Y, Z float64
}

// V is shorthand for constructing a Vec3.
func V(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{v.X + u.X, v.Y + u.Y, v.Z + u.Z}
}

func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{v.X - u.X, v.Y - u.Y, v.Z - u.Z}
}

func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Scale multiplies component-wise.
func (v Vec3) Scale(u Vec3) Vec3 {
	return Vec3{v.X * u.X, v.Y * u.Y, v.Z * u.Z}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vec3) Distance(u Vec3) float64 {
	return v.Sub(u).Length()
}

// Lerp interpolates between v and u; t of 0 yields v, t of 1 yields u.
func (v Vec3) Lerp(u Vec3, t float64) Vec3 {
	return Vec3{
		v.X + (u.X-v.X)*t,
		v.Y + (u.Y-v.Y)*t,
		v.Z + (u.Z-v.Z)*t,
	}
}

// Rotate applies an intrinsic Z, then Y, then X Euler rotation, the
// order every renderer primitive uses.
func (v Vec3) Rotate(rotation Vec3) Vec3 {
	sinZ, cosZ := math.Sincos(rotation.Z)
	x := v.X*cosZ - v.Y*sinZ
	y := v.X*sinZ + v.Y*cosZ
	z := v.Z

	sinY, cosY := math.Sincos(rotation.Y)
	x, z = x*cosY+z*sinY, -x*sinY+z*cosY

	sinX, cosX := math.Sincos(rotation.X)
	y, z = y*cosX-z*sinX, y*sinX+z*cosX

	return Vec3{x, y, z}
}

// NormalizeRotation reduces each component modulo a full turn,
// preserving sign, so the result lies in (-2π, 2π). Repeated
// accumulation of angles stays bounded this way.
func NormalizeRotation(rotation Vec3) Vec3 {
	return Vec3{
		math.Mod(rotation.X, 2*math.Pi),
		math.Mod(rotation.Y, 2*math.Pi),
		math.Mod(rotation.Z, 2*math.Pi),
	}
}
