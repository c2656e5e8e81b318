package skin

import "github.com/Faultbox/dqskin/pkg/math"

// NumBones is the number of bones a vertex blends between. Weight slots past it are ignored.
const NumBones = 2

// BlendTransforms blends two bone motions with the given weights (slots X and Y).
//
// Bone 1 is flipped onto the hemisphere of bone 0 before summing so the blend
// takes the short path, and the sum is renormalized back to a rigid motion.
func BlendTransforms(bones [NumBones]math.DualQuat, weights math.Vec4) math.DualQuat {
	w1 := weights.Y
	if bones[0].Real.Dot(bones[1].Real) < 0 {
		w1 = -w1
	}

	blended := bones[0].Scale(weights.X).Add(bones[1].Scale(w1))
	return blended.Normalized()
}

// DeformVertex moves a model-space position and normal by the blended bone motion.
func DeformVertex(bones [NumBones]math.DualQuat, position, normal math.Vec3, weights math.Vec4) (math.Vec3, math.Vec3) {
	motion := BlendTransforms(bones, weights)
	return motion.TransformPoint(position), motion.TransformVector(normal)
}
