package mesh

import (
	"encoding/binary"
	"fmt"
)

// VertexBytes returns the vertex buffer as little-endian bytes, VertexStride per vertex.
func (m *Mesh) VertexBytes() ([]byte, error) {
	buf, err := binary.Append(make([]byte, 0, len(m.Vertices)*VertexStride), binary.LittleEndian, m.Vertices)
	if err != nil {
		return nil, fmt.Errorf("encode vertices: %w", err)
	}
	return buf, nil
}

// IndexBytes returns the index buffer as little-endian uint32 values.
func (m *Mesh) IndexBytes() []byte {
	buf := make([]byte, 0, len(m.Indices)*IndexSize)
	for _, idx := range m.Indices {
		buf = binary.LittleEndian.AppendUint32(buf, idx)
	}
	return buf
}

// EncodeFlatVertices returns line vertices as little-endian bytes, FlatVertexStride per vertex.
func EncodeFlatVertices(vertices []FlatVertex) ([]byte, error) {
	buf, err := binary.Append(make([]byte, 0, len(vertices)*FlatVertexStride), binary.LittleEndian, vertices)
	if err != nil {
		return nil, fmt.Errorf("encode flat vertices: %w", err)
	}
	return buf, nil
}

// DecodeVertices parses a buffer produced by VertexBytes.
func DecodeVertices(data []byte) ([]Vertex, error) {
	if len(data)%VertexStride != 0 {
		return nil, fmt.Errorf("%w: vertex buffer length %d is not a multiple of %d", ErrInvalidParams, len(data), VertexStride)
	}
	vertices := make([]Vertex, len(data)/VertexStride)
	if _, err := binary.Decode(data, binary.LittleEndian, vertices); err != nil {
		return nil, fmt.Errorf("decode vertices: %w", err)
	}
	return vertices, nil
}
