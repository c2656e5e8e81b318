package skin

import (
	"testing"

	"github.com/Faultbox/dqskin/pkg/math"
)

func TestBlendTransformsEndpoints(t *testing.T) {
	bones := [2]math.DualQuat{
		math.DualQuatTranslateX(1),
		math.Mul(math.DualQuatTranslateY(2), math.DualQuatRotateZ(0.5)),
	}

	if got := BlendTransforms(bones, math.Vec4{X: 1}); !got.ApproxEqual(bones[0], 1e-6) {
		t.Errorf("full weight on bone 0 = %+v", got)
	}
	if got := BlendTransforms(bones, math.Vec4{Y: 1}); !got.ApproxEqual(bones[1], 1e-6) {
		t.Errorf("full weight on bone 1 = %+v", got)
	}
}

func TestBlendTransformsStaysRigid(t *testing.T) {
	bones := [2]math.DualQuat{
		math.Mul(math.DualQuatTranslateZ(-1), math.DualQuatRotateX(0.3)),
		math.Mul(math.DualQuatTranslate(math.Vec3{X: 1, Y: 2}), math.DualQuatRotateY(2.5)),
	}
	b := DefaultBlend()
	for i := 0; i <= 20; i++ {
		d := BlendTransforms(bones, b.Weights4(float32(i)/20))
		if !math.ApproxEqual(d.Real.Length(), 1, 1e-5) {
			t.Fatalf("blend %d: |real| = %v", i, d.Real.Length())
		}
		if !math.ApproxEqual(d.Real.Dot(d.NonReal), 0, 1e-5) {
			t.Fatalf("blend %d: real.nonreal = %v", i, d.Real.Dot(d.NonReal))
		}
	}
}

func TestBlendTransformsAntipodal(t *testing.T) {
	r := math.DualQuatRotateZ(0.4)
	flipped := r.Scale(-1)

	// q and -q are the same motion; blending them must not cancel out
	got := BlendTransforms([2]math.DualQuat{r, flipped}, math.Vec4{X: 0.5, Y: 0.5})
	if !got.ApproxEqual(r, 1e-6) {
		t.Errorf("blend of q and -q = %+v, want %+v", got, r)
	}
}

func TestDeformVertex(t *testing.T) {
	bones := [2]math.DualQuat{
		math.DualQuatRotateZ(math.Pi / 2),
		math.DualQuatTranslateZ(3),
	}

	pos, normal := DeformVertex(bones, math.AxisX, math.AxisX, math.Vec4{X: 1})
	if !pos.ApproxEqual(math.AxisY, 1e-5) || !normal.ApproxEqual(math.AxisY, 1e-5) {
		t.Errorf("bone 0 deform = %+v, %+v", pos, normal)
	}

	pos, normal = DeformVertex(bones, math.AxisX, math.AxisX, math.Vec4{Y: 1})
	if !pos.ApproxEqual(math.Vec3{X: 1, Z: 3}, 1e-5) || !normal.ApproxEqual(math.AxisX, 1e-5) {
		t.Errorf("bone 1 deform = %+v, %+v", pos, normal)
	}
}
