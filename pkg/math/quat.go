package math

// Quat is a quaternion with vector part (X, Y, Z) and scalar part W.
// Rotation quaternions are unit length by construction; nothing here renormalizes.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns the identity rotation (0, 0, 0, 1).
func QuatIdentity() Quat {
	return Quat{0, 0, 0, 1}
}

// QuatZero returns the all-zero quaternion.
func QuatZero() Quat {
	return Quat{}
}

// QuatFromParts builds a quaternion from its vector and scalar parts.
func QuatFromParts(v Vec3, s float32) Quat {
	return Quat{v.X, v.Y, v.Z, s}
}

// QuatFromArray builds a quaternion from x, y, z, w.
func QuatFromArray(a [4]float32) Quat {
	return Quat{a[0], a[1], a[2], a[3]}
}

// Array returns x, y, z, w.
func (q Quat) Array() [4]float32 {
	return [4]float32{q.X, q.Y, q.Z, q.W}
}

// Vector returns the vector part.
func (q Quat) Vector() Vec3 {
	return Vec3{q.X, q.Y, q.Z}
}

// Scalar returns the scalar part.
func (q Quat) Scalar() float32 {
	return q.W
}

// Mul returns the Hamilton product q * other.
//
// The vector part is accumulated as cross(qv, ov), then + qs*ov, then + os*qv.
// Callers that compare results bit for bit depend on this order.
func (q Quat) Mul(other Quat) Quat {
	qv, ov := q.Vector(), other.Vector()

	v := qv.Cross(ov)
	v.ScaleAdd(q.W, ov)
	v.ScaleAdd(other.W, qv)
	s := float32(q.W*other.W) - qv.Dot(ov)

	return QuatFromParts(v, s)
}

// Add returns the componentwise sum.
func (q Quat) Add(other Quat) Quat {
	return Quat{q.X + other.X, q.Y + other.Y, q.Z + other.Z, q.W + other.W}
}

// Scale returns q * s.
func (q Quat) Scale(s float32) Quat {
	return Quat{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

// Conjugate negates the vector part.
func (q Quat) Conjugate() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

// Dot returns the 4D inner product.
func (q Quat) Dot(other Quat) float32 {
	return float32(q.X*other.X) + float32(q.Y*other.Y) + float32(q.Z*other.Z) + float32(q.W*other.W)
}

// LengthSquared returns the squared norm.
func (q Quat) LengthSquared() float32 {
	return q.Dot(q)
}

// Length returns the norm.
func (q Quat) Length() float32 {
	return Sqrt(q.LengthSquared())
}

// Normalized returns q scaled to unit length. A zero quaternion yields NaN.
func (q Quat) Normalized() Quat {
	return q.Scale(1 / q.Length())
}

// Rotate applies the rotation q to v (q v q*). q must be unit length.
func (q Quat) Rotate(v Vec3) Vec3 {
	return q.Mul(QuatFromParts(v, 0)).Mul(q.Conjugate()).Vector()
}

// ToMat4 returns the rotation matrix of a unit quaternion.
func (q Quat) ToMat4() Mat4 {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat4{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy), 0,
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx), 0,
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy), 0,
		0, 0, 0, 1,
	}
}

// ApproxEqual reports whether every component differs by at most tol.
func (q Quat) ApproxEqual(other Quat, tol float32) bool {
	return ApproxEqual(q.X, other.X, tol) &&
		ApproxEqual(q.Y, other.Y, tol) &&
		ApproxEqual(q.Z, other.Z, tol) &&
		ApproxEqual(q.W, other.W, tol)
}
