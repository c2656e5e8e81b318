package mesh

import (
	"encoding/binary"
	"errors"
	stdmath "math"
	"testing"

	"github.com/Faultbox/dqskin/internal/skin"
	"github.com/Faultbox/dqskin/pkg/math"
)

func TestVertexBytes(t *testing.T) {
	m := buildDefault(t)

	data, err := m.VertexBytes()
	if err != nil {
		t.Fatalf("VertexBytes: %v", err)
	}
	if len(data) != len(m.Vertices)*VertexStride {
		t.Fatalf("len = %d, want %d", len(data), len(m.Vertices)*VertexStride)
	}

	// vertex 0: position (0.5, 0, 0, 1), normal (1, 0, 0, 1), weights (1, 0, 0, 0)
	readFloat := func(off int) float32 {
		return stdmath.Float32frombits(binary.LittleEndian.Uint32(data[off:]))
	}
	if readFloat(0) != 0.5 || readFloat(12) != 1 {
		t.Errorf("position encoded as %v %v", readFloat(0), readFloat(12))
	}
	if readFloat(16) != 1 || readFloat(32) != 1 || readFloat(36) != 0 {
		t.Errorf("normal/weights encoded as %v %v %v", readFloat(16), readFloat(32), readFloat(36))
	}
	if readFloat(56) != 0 || readFloat(60) != 0 {
		t.Error("padding should be zero")
	}

	back, err := DecodeVertices(data)
	if err != nil {
		t.Fatalf("DecodeVertices: %v", err)
	}
	if len(back) != len(m.Vertices) || back[100] != m.Vertices[100] {
		t.Error("decoded vertices differ")
	}

	if _, err := DecodeVertices(data[:VertexStride+1]); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("short buffer error = %v", err)
	}
}

func TestIndexBytes(t *testing.T) {
	m := buildDefault(t)
	data := m.IndexBytes()
	if len(data) != len(m.Indices)*IndexSize {
		t.Fatalf("len = %d", len(data))
	}
	for i := 0; i < 12; i++ {
		if got := binary.LittleEndian.Uint32(data[4*i:]); got != m.Indices[i] {
			t.Errorf("index %d encoded as %d, want %d", i, got, m.Indices[i])
		}
	}
}

func TestEncodeFlatVertices(t *testing.T) {
	lines, err := BuildBoneLines(2, 4)
	if err != nil {
		t.Fatal(err)
	}
	data, err := EncodeFlatVertices(lines)
	if err != nil {
		t.Fatalf("EncodeFlatVertices: %v", err)
	}
	if len(data) != 4*FlatVertexStride {
		t.Fatalf("len = %d", len(data))
	}
	// third vertex: z = 2, bone 1 weight = 1
	z := stdmath.Float32frombits(binary.LittleEndian.Uint32(data[2*FlatVertexStride+8:]))
	w1 := stdmath.Float32frombits(binary.LittleEndian.Uint32(data[2*FlatVertexStride+20:]))
	if z != 2 || w1 != 1 {
		t.Errorf("third vertex z=%v w1=%v", z, w1)
	}
}

func TestDeformRestPose(t *testing.T) {
	m := buildDefault(t)
	rest := [2]math.DualQuat{math.DualQuatIdentity(), math.DualQuatIdentity()}

	deformed := m.Deform(rest)
	for i, d := range deformed {
		if !d.Position.ApproxEqual(m.Vertices[i].Position.Vec3(), 1e-5) {
			t.Fatalf("vertex %d moved to %+v in rest pose", i, d.Position)
		}
	}
}

func TestDeformRigidBones(t *testing.T) {
	p := DefaultTubeParams()
	m, err := BuildTube(p, skin.DefaultBlend())
	if err != nil {
		t.Fatal(err)
	}
	motion := math.Mul(math.DualQuatTranslateX(3), math.DualQuatRotateY(0.6))
	bones := [2]math.DualQuat{motion, motion}

	deformed := m.Deform(bones)
	for i, d := range deformed {
		want := motion.TransformPoint(m.Vertices[i].Position.Vec3())
		if !d.Position.ApproxEqual(want, 1e-4) {
			t.Fatalf("vertex %d = %+v, want %+v", i, d.Position, want)
		}
		if !math.ApproxEqual(d.Normal.Length(), 1, 1e-4) {
			t.Fatalf("vertex %d normal length %v", i, d.Normal.Length())
		}
	}

	lines, _ := BuildBoneLines(2, p.Height)
	ends := DeformBoneLines(lines, bones)
	if !ends[3].ApproxEqual(motion.TransformPoint(math.Vec3{Z: 4}), 1e-4) {
		t.Errorf("bone tip = %+v", ends[3])
	}

	b := DeformedBounds(deformed)
	if s := b.Size(); s.X <= 0 || s.Y <= 0 || s.Z <= 0 {
		t.Errorf("deformed bounds %+v", b)
	}
}
