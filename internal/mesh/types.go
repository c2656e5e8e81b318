// Package mesh builds the skinned tube and its bone lines, and encodes them into
// the vertex and index buffer layouts the skinning vertex stage reads.
package mesh

import (
	"errors"

	"github.com/Faultbox/dqskin/pkg/math"
)

// ErrInvalidParams is returned when tube parameters cannot produce a mesh.
var ErrInvalidParams = errors.New("invalid mesh parameters")

// Vertex is a skinned tube vertex. Field order and the trailing padding match
// the shader input layout; do not reorder.
type Vertex struct {
	Position    math.Vec4 // model space, w = 1
	Normal      math.Vec4
	BoneWeights math.Vec4 // slots 0 and 1 used
	TexCoord    math.Vec2
	_           [2]float32
}

// FlatVertex is an unshaded vertex used for the bone lines.
type FlatVertex struct {
	Position    math.Vec4
	BoneWeights math.Vec4
}

// Byte strides of the two vertex layouts.
const (
	VertexStride     = 64
	FlatVertexStride = 32
	IndexSize        = 4
)

// Mesh holds the tube mesh data ready for upload. It is built once and treated
// as read-only afterwards.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
	Params   TubeParams
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the middle of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Lerp(b.Max, 0.5)
}

// Size returns the box extent along each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// TubeParams describes the tube grid.
type TubeParams struct {
	AxialSegments  int     `yaml:"axial_segments" toml:"axial_segments"`
	RadialSegments int     `yaml:"radial_segments" toml:"radial_segments"`
	Height         float32 `yaml:"height" toml:"height"`
	Radius         float32 `yaml:"radius" toml:"radius"`
	Bones          int     `yaml:"bones" toml:"bones"`
}

// DefaultTubeParams returns the 50 x 30 tube of height 4 and radius 0.5 driven by two bones.
func DefaultTubeParams() TubeParams {
	return TubeParams{
		AxialSegments:  50,
		RadialSegments: 30,
		Height:         4,
		Radius:         0.5,
		Bones:          2,
	}
}

// AxialSlices is the number of vertex rings along the tube.
func (p TubeParams) AxialSlices() int {
	return p.AxialSegments + 1
}

// RadialSlices is the number of vertices per ring. The seam is shared, so it
// equals the number of radial segments.
func (p TubeParams) RadialSlices() int {
	return p.RadialSegments
}

// NumVertices returns the vertex count of the tube grid.
func (p TubeParams) NumVertices() int {
	return p.AxialSlices() * p.RadialSlices()
}

// NumIndices returns the index count: two triangles per quad.
func (p TubeParams) NumIndices() int {
	return p.AxialSegments * p.RadialSegments * 6
}
