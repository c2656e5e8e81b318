package math

import "golang.org/x/image/math/f32"

// Vec4 is a 4-component vector, usually a homogeneous point or direction.
type Vec4 struct {
	X, Y, Z, W float32
}

// Vec4FromArray builds a Vec4 from its indexed form.
func Vec4FromArray(a f32.Vec4) Vec4 {
	return Vec4{a[0], a[1], a[2], a[3]}
}

// Array returns the indexed form of v.
func (v Vec4) Array() f32.Vec4 {
	return f32.Vec4{v.X, v.Y, v.Z, v.W}
}

// At returns component i (0 = X ... 3 = W).
func (v Vec4) At(i int) float32 {
	return v.Array()[i]
}

// Vec3 drops the w component.
func (v Vec4) Vec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Add returns v + other.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Sub returns v - other.
func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Scale returns v * s.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// ScaleAdd accumulates a*u into v.
func (v *Vec4) ScaleAdd(a float32, u Vec4) {
	v.X += float32(a * u.X)
	v.Y += float32(a * u.Y)
	v.Z += float32(a * u.Z)
	v.W += float32(a * u.W)
}

// Dot returns the dot product.
func (v Vec4) Dot(other Vec4) float32 {
	return float32(v.X*other.X) + float32(v.Y*other.Y) + float32(v.Z*other.Z) + float32(v.W*other.W)
}

// LengthSquared returns the squared magnitude.
func (v Vec4) LengthSquared() float32 {
	return v.Dot(v)
}

// Length returns the magnitude.
func (v Vec4) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// Normalize scales v to unit length in place. A zero vector yields NaN components.
func (v *Vec4) Normalize() {
	*v = v.Scale(1 / v.Length())
}

// Normalized returns a unit-length copy of v.
func (v Vec4) Normalized() Vec4 {
	v.Normalize()
	return v
}

// Lerp interpolates from v towards 'to'. t is not clamped.
func (v Vec4) Lerp(to Vec4, t float32) Vec4 {
	return Vec4{
		Lerp(v.X, to.X, t),
		Lerp(v.Y, to.Y, t),
		Lerp(v.Z, to.Z, t),
		Lerp(v.W, to.W, t),
	}
}
