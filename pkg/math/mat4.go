package math

import "golang.org/x/image/math/f32"

// Mat4 is a 4x4 matrix in row-major order, used with column vectors (M * v).
// Layout: [m0  m1  m2  m3 ]
//
//	[m4  m5  m6  m7 ]
//	[m8  m9  m10 m11]
//	[m12 m13 m14 m15]
type Mat4 [16]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4FromRows builds a matrix from four row vectors.
func Mat4FromRows(r0, r1, r2, r3 Vec4) Mat4 {
	return Mat4{
		r0.X, r0.Y, r0.Z, r0.W,
		r1.X, r1.Y, r1.Z, r1.W,
		r2.X, r2.Y, r2.Z, r2.W,
		r3.X, r3.Y, r3.Z, r3.W,
	}
}

// At returns the element at row, col.
func (m Mat4) At(row, col int) float32 {
	return m[row*4+col]
}

// Set assigns the element at row, col.
func (m *Mat4) Set(row, col int, v float32) {
	m[row*4+col] = v
}

// Row returns row i.
func (m Mat4) Row(i int) Vec4 {
	return Vec4{m[i*4], m[i*4+1], m[i*4+2], m[i*4+3]}
}

// Array returns the matrix as an f32.Mat4, which shares the row-major layout.
func (m Mat4) Array() f32.Mat4 {
	return f32.Mat4(m)
}

// Transpose transposes m in place.
func (m *Mat4) Transpose() {
	for i := 0; i < 4; i++ {
		for j := 0; j < i; j++ {
			m[i*4+j], m[j*4+i] = m[j*4+i], m[i*4+j]
		}
	}
}

// Transposed returns the transpose of m. For orthogonal matrices this is the inverse.
func (m Mat4) Transposed() Mat4 {
	m.Transpose()
	return m
}

// Mul returns m * other.
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += float32(m[i*4+k] * other[k*4+j])
			}
			result[i*4+j] = sum
		}
	}
	return result
}

// MulVec4 returns m * v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m.Row(0).Dot(v),
		m.Row(1).Dot(v),
		m.Row(2).Dot(v),
		m.Row(3).Dot(v),
	}
}

// TransformPoint transforms a 3D point (w = 1) without a perspective divide.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return m.MulVec4(p.Vec4(1)).Vec3()
}

// Inverse returns the inverse of m together with its determinant.
//
// The adjugate is built from all sixteen cofactors and scaled by 1/det with no
// check: a singular matrix produces Inf or NaN entries, so callers that care
// must test the returned determinant. Prefer Transposed for rotations.
func (m Mat4) Inverse() (Mat4, float32) {
	var e Mat4

	e[0] = m[5]*m[10]*m[15] - m[5]*m[11]*m[14] - m[9]*m[6]*m[15] + m[9]*m[7]*m[14] + m[13]*m[6]*m[11] - m[13]*m[7]*m[10]
	e[4] = -m[4]*m[10]*m[15] + m[4]*m[11]*m[14] + m[8]*m[6]*m[15] - m[8]*m[7]*m[14] - m[12]*m[6]*m[11] + m[12]*m[7]*m[10]
	e[8] = m[4]*m[9]*m[15] - m[4]*m[11]*m[13] - m[8]*m[5]*m[15] + m[8]*m[7]*m[13] + m[12]*m[5]*m[11] - m[12]*m[7]*m[9]
	e[12] = -m[4]*m[9]*m[14] + m[4]*m[10]*m[13] + m[8]*m[5]*m[14] - m[8]*m[6]*m[13] - m[12]*m[5]*m[10] + m[12]*m[6]*m[9]

	e[1] = -m[1]*m[10]*m[15] + m[1]*m[11]*m[14] + m[9]*m[2]*m[15] - m[9]*m[3]*m[14] - m[13]*m[2]*m[11] + m[13]*m[3]*m[10]
	e[5] = m[0]*m[10]*m[15] - m[0]*m[11]*m[14] - m[8]*m[2]*m[15] + m[8]*m[3]*m[14] + m[12]*m[2]*m[11] - m[12]*m[3]*m[10]
	e[9] = -m[0]*m[9]*m[15] + m[0]*m[11]*m[13] + m[8]*m[1]*m[15] - m[8]*m[3]*m[13] - m[12]*m[1]*m[11] + m[12]*m[3]*m[9]
	e[13] = m[0]*m[9]*m[14] - m[0]*m[10]*m[13] - m[8]*m[1]*m[14] + m[8]*m[2]*m[13] + m[12]*m[1]*m[10] - m[12]*m[2]*m[9]

	e[2] = m[1]*m[6]*m[15] - m[1]*m[7]*m[14] - m[5]*m[2]*m[15] + m[5]*m[3]*m[14] + m[13]*m[2]*m[7] - m[13]*m[3]*m[6]
	e[6] = -m[0]*m[6]*m[15] + m[0]*m[7]*m[14] + m[4]*m[2]*m[15] - m[4]*m[3]*m[14] - m[12]*m[2]*m[7] + m[12]*m[3]*m[6]
	e[10] = m[0]*m[5]*m[15] - m[0]*m[7]*m[13] - m[4]*m[1]*m[15] + m[4]*m[3]*m[13] + m[12]*m[1]*m[7] - m[12]*m[3]*m[5]
	e[14] = -m[0]*m[5]*m[14] + m[0]*m[6]*m[13] + m[4]*m[1]*m[14] - m[4]*m[2]*m[13] - m[12]*m[1]*m[6] + m[12]*m[2]*m[5]

	e[3] = -m[1]*m[6]*m[11] + m[1]*m[7]*m[10] + m[5]*m[2]*m[11] - m[5]*m[3]*m[10] - m[9]*m[2]*m[7] + m[9]*m[3]*m[6]
	e[7] = m[0]*m[6]*m[11] - m[0]*m[7]*m[10] - m[4]*m[2]*m[11] + m[4]*m[3]*m[10] + m[8]*m[2]*m[7] - m[8]*m[3]*m[6]
	e[11] = -m[0]*m[5]*m[11] + m[0]*m[7]*m[9] + m[4]*m[1]*m[11] - m[4]*m[3]*m[9] - m[8]*m[1]*m[7] + m[8]*m[3]*m[5]
	e[15] = m[0]*m[5]*m[10] - m[0]*m[6]*m[9] - m[4]*m[1]*m[10] + m[4]*m[2]*m[9] + m[8]*m[1]*m[6] - m[8]*m[2]*m[5]

	det := m[0]*e[0] + m[1]*e[4] + m[2]*e[8] + m[3]*e[12]
	invDet := 1 / det

	for i := range e {
		e[i] *= invDet
	}
	return e, det
}

// Determinant returns the determinant by Laplace expansion along the first row.
func (m Mat4) Determinant() float32 {
	var det float32
	sign := float32(1)
	for col := 0; col < 4; col++ {
		det += sign * m[col] * m.minor(0, col)
		sign = -sign
	}
	return det
}

// minor returns the determinant of the 3x3 matrix left after removing row and col.
func (m Mat4) minor(row, col int) float32 {
	var s [9]float32
	n := 0
	for i := 0; i < 4; i++ {
		if i == row {
			continue
		}
		for j := 0; j < 4; j++ {
			if j == col {
				continue
			}
			s[n] = m[i*4+j]
			n++
		}
	}
	return s[0]*(s[4]*s[8]-s[5]*s[7]) -
		s[1]*(s[3]*s[8]-s[5]*s[6]) +
		s[2]*(s[3]*s[7]-s[4]*s[6])
}

// ApproxEqual reports whether every element differs by at most tol.
func (m Mat4) ApproxEqual(other Mat4, tol float32) bool {
	for i := range m {
		if !ApproxEqual(m[i], other[i], tol) {
			return false
		}
	}
	return true
}
