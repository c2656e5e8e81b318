package animation

import (
	"errors"
	"testing"

	"github.com/Faultbox/dqskin/pkg/math"
)

func newDefault(t *testing.T) *Composer {
	t.Helper()
	c, err := NewComposer(DefaultParams())
	if err != nil {
		t.Fatalf("NewComposer: %v", err)
	}
	return c
}

func TestComposeBalancedGrouping(t *testing.T) {
	c := newDefault(t)
	h := DefaultParams().TubeHeight

	for _, tm := range []float32{0, 0.37, 1.5, 12.25} {
		got := c.Compose(tm)

		d1 := math.DualQuatRotateX(-0.5 * math.Pi)
		d2 := math.DualQuatRotateY(-math.Pi * 0.5)
		d3 := math.DualQuatRotateZ(tm)
		d4 := math.DualQuatTranslateY(-h / 2)
		parent := math.Mul(math.Mul(d4, d2), math.Mul(d1, d3))

		wiggle := math.Mul(
			math.DualQuatRotateX(0.5*math.Pi*math.Sin(1*tm)),
			math.DualQuatRotateZ(0.25*math.Pi*math.Cos(5*tm)),
		)
		rest := math.DualQuatTranslateZ(h / 2)
		unrest := math.DualQuatTranslateZ(-h / 2)
		bone1 := math.Mul(math.Mul(parent, rest), math.Mul(wiggle, unrest))

		if got.Bones[0] != parent {
			t.Errorf("t=%v: bone 0 = %+v, want %+v", tm, got.Bones[0], parent)
		}
		if got.Bones[1] != bone1 {
			t.Errorf("t=%v: bone 1 = %+v, want %+v", tm, got.Bones[1], bone1)
		}
	}
}

func TestComposeDeterministic(t *testing.T) {
	a := newDefault(t)
	b := newDefault(t)
	for i := 0; i < 100; i++ {
		tm := float32(i) * 0.0167
		if a.Compose(tm) != b.Compose(tm) || a.Compose(tm) != a.Compose(tm) {
			t.Fatalf("t=%v: compose is not deterministic", tm)
		}
	}
}

func TestComposeAtZero(t *testing.T) {
	c := newDefault(t)
	tc := c.Compose(0)
	bone0 := tc.Bones[0]

	if got := bone0.TransformVector(math.AxisX); !got.ApproxEqual(math.AxisZ, 1e-5) {
		t.Errorf("bone 0 maps +X to %+v, want +Z", got)
	}
	if got := bone0.TransformVector(math.AxisZ); !got.ApproxEqual(math.AxisY, 1e-5) {
		t.Errorf("bone 0 maps the tube axis to %+v, want +Y", got)
	}
	if got := bone0.TransformPoint(math.Vec3{}); !got.ApproxEqual(math.Vec3{Y: -2}, 1e-5) {
		t.Errorf("tube base lands at %+v, want (0,-2,0)", got)
	}
	if got := bone0.TransformPoint(math.Vec3{Z: 4}); !got.ApproxEqual(math.Vec3{Y: 2}, 1e-5) {
		t.Errorf("tube tip lands at %+v, want (0,2,0)", got)
	}

	// the bend pivots at the midpoint, so bone 1 keeps it in place
	mid := math.Vec3{Z: 2}
	if got, want := tc.Bones[1].TransformPoint(mid), bone0.TransformPoint(mid); !got.ApproxEqual(want, 1e-5) {
		t.Errorf("bone 1 moves the midpoint to %+v, bone 0 to %+v", got, want)
	}
}

func TestComposeStaysRigid(t *testing.T) {
	c := newDefault(t)
	for i := 0; i < 200; i++ {
		tc := c.Compose(float32(i) * 0.05)
		for b, d := range tc.Bones {
			if !math.ApproxEqual(d.Real.Length(), 1, 1e-5) || !math.ApproxEqual(d.Real.Dot(d.NonReal), 0, 1e-5) {
				t.Fatalf("frame %d bone %d is not rigid: %+v", i, b, d)
			}
		}
	}
}

func TestComposeWithoutWiggle(t *testing.T) {
	p := DefaultParams()
	p.WiggleAmplitude = 0
	p.TwistAmplitude = 0
	c, err := NewComposer(p)
	if err != nil {
		t.Fatal(err)
	}

	tc := c.Compose(0.8)
	if !tc.Bones[1].ApproxEqual(tc.Bones[0], 1e-5) {
		t.Errorf("without wiggle both bones should match: %+v vs %+v", tc.Bones[0], tc.Bones[1])
	}
}

func TestSample(t *testing.T) {
	c := newDefault(t)
	frames := c.Sample(1, 0.5, 4)
	if len(frames) != 4 {
		t.Fatalf("len = %d", len(frames))
	}
	if frames[3] != c.Compose(2.5) {
		t.Error("Sample(1, 0.5, 4)[3] should equal Compose(2.5)")
	}
}

func TestNewComposerValidates(t *testing.T) {
	p := DefaultParams()
	p.TubeHeight = 0
	if _, err := NewComposer(p); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("NewComposer error = %v, want ErrInvalidParams", err)
	}
}
