package math

// DualQuat is a dual quaternion Real + e*NonReal with e*e = 0.
//
// A rigid motion has a unit Real part and Real.Dot(NonReal) == 0. The builders in
// this package produce such values and products of them stay rigid.
type DualQuat struct {
	Real    Quat
	NonReal Quat
}

// DualQuatIdentity returns the identity motion.
func DualQuatIdentity() DualQuat {
	return DualQuat{Real: QuatIdentity()}
}

// DualQuatZero returns the all-zero dual quaternion, the neutral element of Add.
func DualQuatZero() DualQuat {
	return DualQuat{}
}

// DualQuatFromArray builds a dual quaternion from real xyzw followed by non-real xyzw.
func DualQuatFromArray(a [8]float32) DualQuat {
	return DualQuat{
		Real:    Quat{a[0], a[1], a[2], a[3]},
		NonReal: Quat{a[4], a[5], a[6], a[7]},
	}
}

// Array returns real xyzw followed by non-real xyzw. This is the layout the
// vertex stage reads.
func (d DualQuat) Array() [8]float32 {
	r, n := d.Real, d.NonReal
	return [8]float32{r.X, r.Y, r.Z, r.W, n.X, n.Y, n.Z, n.W}
}

// Parts returns the real and non-real parts by index.
func (d DualQuat) Parts() [2]Quat {
	return [2]Quat{d.Real, d.NonReal}
}

// Mul returns p * q. Applied to a point, q acts first.
func Mul(p, q DualQuat) DualQuat {
	nonReal := p.Real.Mul(q.NonReal)
	nonReal = nonReal.Add(p.NonReal.Mul(q.Real))
	return DualQuat{
		Real:    p.Real.Mul(q.Real),
		NonReal: nonReal,
	}
}

// Mul3 returns (a * b) * c.
func Mul3(a, b, c DualQuat) DualQuat {
	return Mul(Mul(a, b), c)
}

// Mul4 returns (a * b) * (c * d). The grouping is part of the contract: float
// results differ from the left-associated ((a * b) * c) * d.
func Mul4(a, b, c, d DualQuat) DualQuat {
	return Mul(Mul(a, b), Mul(c, d))
}

// Mul returns d * other.
func (d DualQuat) Mul(other DualQuat) DualQuat {
	return Mul(d, other)
}

// Add returns the componentwise sum.
func (d DualQuat) Add(other DualQuat) DualQuat {
	return DualQuat{d.Real.Add(other.Real), d.NonReal.Add(other.NonReal)}
}

// Scale multiplies both parts by s.
func (d DualQuat) Scale(s float32) DualQuat {
	return DualQuat{d.Real.Scale(s), d.NonReal.Scale(s)}
}

// Conjugate applies the quaternion conjugate to both parts, which inverts a rigid motion.
func (d DualQuat) Conjugate() DualQuat {
	return DualQuat{d.Real.Conjugate(), d.NonReal.Conjugate()}
}

// Normalized divides both parts by the length of the real part.
func (d DualQuat) Normalized() DualQuat {
	return d.Scale(1 / d.Real.Length())
}

// Rotation returns the real part as a rotation.
func (d DualQuat) Rotation() Quat {
	return d.Real
}

// Translation returns the translation of a rigid motion, the vector part of 2*n*conj(r).
func (d DualQuat) Translation() Vec3 {
	return d.NonReal.Mul(d.Real.Conjugate()).Vector().Scale(2)
}

// TransformPoint applies the rotation then the translation to p.
func (d DualQuat) TransformPoint(p Vec3) Vec3 {
	return d.Real.Rotate(p).Add(d.Translation())
}

// TransformVector applies only the rotation to v.
func (d DualQuat) TransformVector(v Vec3) Vec3 {
	return d.Real.Rotate(v)
}

// ToMat4 returns the equivalent rigid transform matrix.
func (d DualQuat) ToMat4() Mat4 {
	m := d.Real.ToMat4()
	t := d.Translation()
	m.Set(0, 3, t.X)
	m.Set(1, 3, t.Y)
	m.Set(2, 3, t.Z)
	return m
}

// ApproxEqual compares both parts componentwise.
func (d DualQuat) ApproxEqual(other DualQuat, tol float32) bool {
	return d.Real.ApproxEqual(other.Real, tol) && d.NonReal.ApproxEqual(other.NonReal, tol)
}
