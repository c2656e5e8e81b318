package animation

import (
	"encoding/binary"
	stdmath "math"

	"github.com/Faultbox/dqskin/pkg/math"
)

// ConstantsSize is the byte size of the per-frame transform buffer.
const ConstantsSize = NumBones * 8 * 4

// TransformConstants is the per-frame payload handed to the vertex stage. It is
// rebuilt every tick and fully replaces the previous value.
type TransformConstants struct {
	Bones [NumBones]math.DualQuat
}

// Floats returns the payload as 16 floats: for each bone, real xyzw then non-real xyzw.
func (tc TransformConstants) Floats() [NumBones * 8]float32 {
	var out [NumBones * 8]float32
	for i, b := range tc.Bones {
		a := b.Array()
		copy(out[i*8:], a[:])
	}
	return out
}

// AppendBytes appends the little-endian encoding of the payload to buf.
func (tc TransformConstants) AppendBytes(buf []byte) []byte {
	for _, f := range tc.Floats() {
		buf = binary.LittleEndian.AppendUint32(buf, stdmath.Float32bits(f))
	}
	return buf
}

// ConstantsFromBytes decodes a buffer written by AppendBytes.
func ConstantsFromBytes(data []byte) (TransformConstants, bool) {
	var tc TransformConstants
	if len(data) < ConstantsSize {
		return tc, false
	}
	for i := range tc.Bones {
		var a [8]float32
		for j := range a {
			a[j] = stdmath.Float32frombits(binary.LittleEndian.Uint32(data[4*(8*i+j):]))
		}
		tc.Bones[i] = math.DualQuatFromArray(a)
	}
	return tc, true
}
