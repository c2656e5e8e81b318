package mesh

import (
	"github.com/Faultbox/dqskin/internal/skin"
	"github.com/Faultbox/dqskin/pkg/math"
)

// DeformedVertex is a tube vertex after skinning.
type DeformedVertex struct {
	Position math.Vec3
	Normal   math.Vec3
}

// Deform skins every tube vertex with the given bone motions on the CPU.
// It mirrors the vertex stage and is used to inspect poses offline.
func (m *Mesh) Deform(bones [2]math.DualQuat) []DeformedVertex {
	out := make([]DeformedVertex, len(m.Vertices))
	for i, v := range m.Vertices {
		pos, normal := skin.DeformVertex(bones, v.Position.Vec3(), v.Normal.Vec3(), v.BoneWeights)
		out[i] = DeformedVertex{Position: pos, Normal: normal}
	}
	return out
}

// DeformBoneLines moves the bone line endpoints with their bones.
func DeformBoneLines(lines []FlatVertex, bones [2]math.DualQuat) []math.Vec3 {
	out := make([]math.Vec3, len(lines))
	for i, v := range lines {
		pos, _ := skin.DeformVertex(bones, v.Position.Vec3(), math.Vec3{}, v.BoneWeights)
		out[i] = pos
	}
	return out
}

// DeformedBounds returns the bounding box of a deformed tube.
func DeformedBounds(vertices []DeformedVertex) Bounds {
	bounds := Bounds{
		Min: math.Vec3{X: 1e10, Y: 1e10, Z: 1e10},
		Max: math.Vec3{X: -1e10, Y: -1e10, Z: -1e10},
	}
	for _, v := range vertices {
		updateBounds(&bounds, v.Position)
	}
	return bounds
}
