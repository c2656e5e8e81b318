package math

import "golang.org/x/image/math/f32"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Unit axes.
var (
	AxisX = Vec3{1, 0, 0}
	AxisY = Vec3{0, 1, 0}
	AxisZ = Vec3{0, 0, 1}
)

// Vec3FromArray builds a Vec3 from its indexed form.
func Vec3FromArray(a f32.Vec3) Vec3 {
	return Vec3{a[0], a[1], a[2]}
}

// Array returns the indexed form of v.
func (v Vec3) Array() f32.Vec3 {
	return f32.Vec3{v.X, v.Y, v.Z}
}

// At returns component i (0 = X, 1 = Y, 2 = Z).
func (v Vec3) At(i int) float32 {
	return v.Array()[i]
}

// Vec4 extends v with the given w.
func (v Vec3) Vec4(w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// ScaleAdd accumulates a*u into v.
func (v *Vec3) ScaleAdd(a float32, u Vec3) {
	v.X += float32(a * u.X)
	v.Y += float32(a * u.Y)
	v.Z += float32(a * u.Z)
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return float32(v.X*other.X) + float32(v.Y*other.Y) + float32(v.Z*other.Z)
}

// Cross returns the right-handed cross product v x other.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		float32(v.Y*other.Z) - float32(v.Z*other.Y),
		float32(v.Z*other.X) - float32(v.X*other.Z),
		float32(v.X*other.Y) - float32(v.Y*other.X),
	}
}

// LengthSquared returns the squared magnitude.
func (v Vec3) LengthSquared() float32 {
	return v.Dot(v)
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// Normalize scales v to unit length in place. A zero vector yields NaN components.
func (v *Vec3) Normalize() {
	*v = v.Scale(1 / v.Length())
}

// Normalized returns a unit-length copy of v.
func (v Vec3) Normalized() Vec3 {
	v.Normalize()
	return v
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// Lerp interpolates from v towards 'to'. t is not clamped.
func (v Vec3) Lerp(to Vec3, t float32) Vec3 {
	return Vec3{Lerp(v.X, to.X, t), Lerp(v.Y, to.Y, t), Lerp(v.Z, to.Z, t)}
}

// ApproxEqual reports whether every component differs by at most tol.
func (v Vec3) ApproxEqual(other Vec3, tol float32) bool {
	return ApproxEqual(v.X, other.X, tol) &&
		ApproxEqual(v.Y, other.Y, tol) &&
		ApproxEqual(v.Z, other.Z, tol)
}
