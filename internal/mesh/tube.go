package mesh

import (
	"fmt"

	"github.com/Faultbox/dqskin/internal/skin"
	"github.com/Faultbox/dqskin/pkg/math"
)

// Validate checks that the parameters describe a closed tube.
func (p TubeParams) Validate() error {
	switch {
	case p.AxialSegments < 1:
		return fmt.Errorf("%w: axial segments %d < 1", ErrInvalidParams, p.AxialSegments)
	case p.RadialSegments < 3:
		return fmt.Errorf("%w: radial segments %d < 3", ErrInvalidParams, p.RadialSegments)
	case !(p.Height > 0):
		return fmt.Errorf("%w: height %v must be positive", ErrInvalidParams, p.Height)
	case !(p.Radius > 0):
		return fmt.Errorf("%w: radius %v must be positive", ErrInvalidParams, p.Radius)
	case p.Bones != skin.NumBones:
		return fmt.Errorf("%w: bones %d, the tube blends exactly %d", ErrInvalidParams, p.Bones, skin.NumBones)
	}
	return nil
}

// BuildTube creates the tube grid along +Z with bone weights from blend.
//
// Vertex (i, j) sits at index i*RadialSlices + j, at axial position u = i/AxialSegments
// and angle -2*pi*j/RadialSegments.
func BuildTube(p TubeParams, blend skin.Blend) (*Mesh, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	vertices := make([]Vertex, 0, p.NumVertices())

	bounds := Bounds{
		Min: math.Vec3{X: 1e10, Y: 1e10, Z: 1e10},
		Max: math.Vec3{X: -1e10, Y: -1e10, Z: -1e10},
	}

	for i := range p.AxialSlices() {
		u := float32(i) / float32(p.AxialSegments)
		weights := blend.Weights4(u)

		for j := range p.RadialSlices() {
			rho := float32(j) / float32(p.RadialSegments)
			angle := -2 * math.Pi * rho
			c, s := math.Cos(angle), math.Sin(angle)

			v := Vertex{
				Position:    math.Vec4{X: c * p.Radius, Y: s * p.Radius, Z: p.Height * u, W: 1},
				Normal:      math.Vec4{X: c, Y: s, Z: 0, W: 1},
				BoneWeights: weights,
				TexCoord:    math.Vec2{X: wrapTexCoord(rho), Y: u},
			}
			updateBounds(&bounds, v.Position.Vec3())
			vertices = append(vertices, v)
		}
	}

	return &Mesh{
		Vertices: vertices,
		Indices:  buildIndices(p),
		Bounds:   bounds,
		Params:   p,
	}, nil
}

// wrapTexCoord mirrors the texture around the tube so the seam matches.
func wrapTexCoord(rho float32) float32 {
	if rho < 0.5 {
		return 2 * rho
	}
	return 1 - 2*(rho-0.5)
}

// buildIndices emits two triangles per quad, wrapping the last radial segment
// back onto ring vertex 0. Faces wind outward.
func buildIndices(p TubeParams) []uint32 {
	indices := make([]uint32, 0, p.NumIndices())
	radial := p.RadialSlices()

	for a := range p.AxialSegments {
		axialLo, axialHi := a, a+1

		for r := range p.RadialSegments {
			radialLo := math.Remainder(radial, r)
			radialHi := math.Remainder(radial, r+1)

			loLo := uint32(axialLo*radial + radialLo)
			loHi := uint32(axialLo*radial + radialHi)
			hiLo := uint32(axialHi*radial + radialLo)
			hiHi := uint32(axialHi*radial + radialHi)

			indices = append(indices,
				loLo, hiLo, loHi,
				loHi, hiLo, hiHi,
			)
		}
	}
	return indices
}

func updateBounds(b *Bounds, p math.Vec3) {
	b.Min = math.Vec3{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)}
	b.Max = math.Vec3{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)}
}

// Triangle returns the three vertex indices of triangle n.
func (m *Mesh) Triangle(n int) [3]uint32 {
	return [3]uint32{m.Indices[3*n], m.Indices[3*n+1], m.Indices[3*n+2]}
}

// NumTriangles returns the triangle count.
func (m *Mesh) NumTriangles() int {
	return len(m.Indices) / 3
}
