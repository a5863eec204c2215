package geom

import "math"

// Vec3 is a world-space vector. Y is height above the ground plane;
// all targeting and distance math is done on the XZ plane.
type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Len() float64         { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < 1e-10 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t, v.Z + (o.Z-v.Z)*t}
}

// DistXZ returns the euclidean distance on the ground plane.
func DistXZ(a, b Vec3) float64 {
	dx := a.X - b.X
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dz*dz)
}

// DirXZ returns the unit direction from a to b on the ground plane,
// or the zero vector if the points coincide.
func DirXZ(a, b Vec3) Vec3 {
	d := Vec3{b.X - a.X, 0, b.Z - a.Z}
	return d.Normalize()
}

// HeadingXZ returns the facing angle in radians from a toward b
// (0 = +X, counter-clockwise when viewed from above).
func HeadingXZ(a, b Vec3) float64 {
	return math.Atan2(b.Z-a.Z, b.X-a.X)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
