package mesh

import (
	"fmt"

	"github.com/Faultbox/dqskin/internal/skin"
	"github.com/Faultbox/dqskin/pkg/math"
)

// weightSlots is the number of weight slots in a vertex.
const weightSlots = 4

// BuildBoneLines returns a line segment per bone along the tube axis: bone b
// spans z in [height*b/n, height*(b+1)/n] and is fully weighted to itself.
// Only the skin.NumBones driven bones are accepted.
func BuildBoneLines(numBones int, height float32) ([]FlatVertex, error) {
	if numBones < 1 || numBones > skin.NumBones {
		return nil, fmt.Errorf("%w: bones %d outside [1, %d]", ErrInvalidParams, numBones, skin.NumBones)
	}

	lines := make([]FlatVertex, 2*numBones)
	for b := range numBones {
		loZ := height * float32(b) / float32(numBones)
		hiZ := height * float32(b+1) / float32(numBones)

		var weights [weightSlots]float32
		weights[b] = 1
		w := math.Vec4FromArray(weights)

		lines[2*b] = FlatVertex{Position: math.Vec4{Z: loZ, W: 1}, BoneWeights: w}
		lines[2*b+1] = FlatVertex{Position: math.Vec4{Z: hiZ, W: 1}, BoneWeights: w}
	}
	return lines, nil
}
