package math

// Scale returns a scaling matrix.
func Scale(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}

// RotateX returns a rotation matrix around the X axis.
func RotateX(angle float32) Mat4 {
	c, s := Cos(angle), Sin(angle)
	return Mat4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns a rotation matrix around the Y axis.
func RotateY(angle float32) Mat4 {
	c, s := Cos(angle), Sin(angle)
	return Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ returns a rotation matrix around the Z axis.
func RotateZ(angle float32) Mat4 {
	c, s := Cos(angle), Sin(angle)
	return Mat4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// LookAt returns a left-handed view matrix looking from eye to target.
// The camera looks down +Z in view space with +Y up.
func LookAt(eye, target, up Vec3) Mat4 {
	forward := target.Sub(eye).Normalized()
	right := up.Cross(forward).Normalized()
	trueUp := forward.Cross(right)

	return Mat4FromRows(
		right.Vec4(-right.Dot(eye)),
		trueUp.Vec4(-trueUp.Dot(eye)),
		forward.Vec4(-forward.Dot(eye)),
		Vec4{0, 0, 0, 1},
	)
}

// Perspective returns a left-handed projection matrix.
// hfov is the horizontal field of view in radians and aspect is width/height.
// After the divide, x and y land in [-1, 1] and depth in [0, 1] with 0 at near.
func Perspective(hfov, aspect, near, far float32) Mat4 {
	w := 1 / Tan(hfov/2)
	h := w * aspect
	q := far / (far - near)
	n := -q * near

	return Mat4{
		w, 0, 0, 0,
		0, h, 0, 0,
		0, 0, q, n,
		0, 0, 1, 0,
	}
}
