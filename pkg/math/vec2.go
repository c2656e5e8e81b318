package math

import "golang.org/x/image/math/f32"

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Vec2FromArray builds a Vec2 from its indexed form.
func Vec2FromArray(a f32.Vec2) Vec2 {
	return Vec2{a[0], a[1]}
}

// Array returns the indexed form of v.
func (v Vec2) Array() f32.Vec2 {
	return f32.Vec2{v.X, v.Y}
}

// At returns component i (0 = X, 1 = Y).
func (v Vec2) At(i int) float32 {
	return v.Array()[i]
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// ScaleAdd accumulates a*u into v.
func (v *Vec2) ScaleAdd(a float32, u Vec2) {
	v.X += float32(a * u.X)
	v.Y += float32(a * u.Y)
}

// LinearCombination2 returns a*u + b*w.
func LinearCombination2(a float32, u Vec2, b float32, w Vec2) Vec2 {
	return Vec2{a*u.X + b*w.X, a*u.Y + b*w.Y}
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float32 {
	return float32(v.X*other.X) + float32(v.Y*other.Y)
}

// LengthSquared returns the squared magnitude.
func (v Vec2) LengthSquared() float32 {
	return v.Dot(v)
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// Normalize scales v to unit length in place. A zero vector yields NaN components.
func (v *Vec2) Normalize() {
	*v = v.Scale(1 / v.Length())
}

// Normalized returns a unit-length copy of v.
func (v Vec2) Normalized() Vec2 {
	v.Normalize()
	return v
}

// DistanceSquared returns the squared distance to another point.
func (v Vec2) DistanceSquared(other Vec2) float32 {
	return v.Sub(other).LengthSquared()
}

// Lerp interpolates from v towards 'to'. t is not clamped.
func (v Vec2) Lerp(to Vec2, t float32) Vec2 {
	return Vec2{Lerp(v.X, to.X, t), Lerp(v.Y, to.Y, t)}
}
