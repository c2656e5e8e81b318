package math

// QuatFromAxisAngle returns the rotation by angle radians about axis.
// The axis is used as given; pass a unit vector.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	half := angle / 2
	return QuatFromParts(axis.Scale(Sin(half)), Cos(half))
}

// QuatRotateX returns the rotation by angle radians about +X.
func QuatRotateX(angle float32) Quat {
	half := angle / 2
	return Quat{Sin(half), 0, 0, Cos(half)}
}

// QuatRotateY returns the rotation by angle radians about +Y.
func QuatRotateY(angle float32) Quat {
	half := angle / 2
	return Quat{0, Sin(half), 0, Cos(half)}
}

// QuatRotateZ returns the rotation by angle radians about +Z.
func QuatRotateZ(angle float32) Quat {
	half := angle / 2
	return Quat{0, 0, Sin(half), Cos(half)}
}

// DualQuatFromAxisAngle returns a pure rotation about axis.
func DualQuatFromAxisAngle(axis Vec3, angle float32) DualQuat {
	return DualQuat{Real: QuatFromAxisAngle(axis, angle)}
}

// DualQuatRotateX returns a pure rotation about +X.
func DualQuatRotateX(angle float32) DualQuat {
	return DualQuat{Real: QuatRotateX(angle)}
}

// DualQuatRotateY returns a pure rotation about +Y.
func DualQuatRotateY(angle float32) DualQuat {
	return DualQuat{Real: QuatRotateY(angle)}
}

// DualQuatRotateZ returns a pure rotation about +Z.
func DualQuatRotateZ(angle float32) DualQuat {
	return DualQuat{Real: QuatRotateZ(angle)}
}

// DualQuatTranslate returns a pure translation by t.
func DualQuatTranslate(t Vec3) DualQuat {
	return DualQuat{
		Real:    QuatIdentity(),
		NonReal: QuatFromParts(t.Scale(0.5), 0),
	}
}

// DualQuatTranslateX returns a translation by distance along +X.
func DualQuatTranslateX(distance float32) DualQuat {
	return DualQuat{
		Real:    QuatIdentity(),
		NonReal: Quat{X: distance / 2},
	}
}

// DualQuatTranslateY returns a translation by distance along +Y.
func DualQuatTranslateY(distance float32) DualQuat {
	return DualQuat{
		Real:    QuatIdentity(),
		NonReal: Quat{Y: distance / 2},
	}
}

// DualQuatTranslateZ returns a translation by distance along +Z.
func DualQuatTranslateZ(distance float32) DualQuat {
	return DualQuat{
		Real:    QuatIdentity(),
		NonReal: Quat{Z: distance / 2},
	}
}
