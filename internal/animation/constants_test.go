package animation

import (
	"encoding/binary"
	stdmath "math"
	"testing"

	"github.com/Faultbox/dqskin/pkg/math"
)

func TestConstantsLayout(t *testing.T) {
	tc := TransformConstants{Bones: [NumBones]math.DualQuat{
		{Real: math.Quat{X: 1, Y: 2, Z: 3, W: 4}, NonReal: math.Quat{X: 5, Y: 6, Z: 7, W: 8}},
		{Real: math.Quat{X: 9, Y: 10, Z: 11, W: 12}, NonReal: math.Quat{X: 13, Y: 14, Z: 15, W: 16}},
	}}

	floats := tc.Floats()
	for i, f := range floats {
		if f != float32(i+1) {
			t.Fatalf("Floats()[%d] = %v, want %d", i, f, i+1)
		}
	}

	data := tc.AppendBytes(nil)
	if len(data) != ConstantsSize || ConstantsSize != 64 {
		t.Fatalf("encoded %d bytes, want 64", len(data))
	}
	if got := stdmath.Float32frombits(binary.LittleEndian.Uint32(data[4*12:])); got != 13 {
		t.Errorf("float 12 = %v, want 13", got)
	}

	back, ok := ConstantsFromBytes(data)
	if !ok || back != tc {
		t.Errorf("decoded %+v, %v", back, ok)
	}
	if _, ok := ConstantsFromBytes(data[:10]); ok {
		t.Error("short buffer should not decode")
	}
}

func TestAppendBytesAppends(t *testing.T) {
	tc := newDefault(t).Compose(1)
	prefix := []byte{0xAA}
	data := tc.AppendBytes(prefix)
	if len(data) != 1+ConstantsSize || data[0] != 0xAA {
		t.Errorf("AppendBytes should append after existing bytes")
	}
}
