package gamemath

import "math"

// Epsilon is the tolerance used when comparing world coordinates.
const Epsilon = 1e-9

// Vec2 is a 2D vector in world units. Y grows upward.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the 3D cross product.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Unit returns v scaled to length 1. The second result is false for a
// zero-length vector, in which case the zero vector is returned instead of NaN.
func (v Vec2) Unit() (Vec2, bool) {
	l := v.Length()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec2{}, false
	}
	return Vec2{X: v.X / l, Y: v.Y / l}, true
}

// ApproxEqual reports whether both components differ by at most Epsilon.
func (v Vec2) ApproxEqual(o Vec2) bool {
	return math.Abs(v.X-o.X) <= Epsilon && math.Abs(v.Y-o.Y) <= Epsilon
}

// Rotate returns v rotated counter-clockwise by the given angle in degrees.
func (v Vec2) Rotate(degrees float64) Vec2 {
	return v.RotateRad(DegToRad(degrees))
}

// RotateRad returns v rotated counter-clockwise by the given angle in radians.
func (v Vec2) RotateRad(radians float64) Vec2 {
	if radians == 0 {
		return v
	}
	sin, cos := math.Sincos(radians)
	return Vec2{
		X: cos*v.X - sin*v.Y,
		Y: sin*v.X + cos*v.Y,
	}
}

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}
