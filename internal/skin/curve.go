// Package skin computes per-vertex bone weights along the tube and blends bone
// transforms the way the skinning vertex stage does.
package skin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/dqskin/pkg/math"
)

// Curve selects how weight moves from bone 0 to bone 1 across the blend zone.
type Curve int

const (
	// CurveSmoothstep eases in and out of the blend zone.
	CurveSmoothstep Curve = iota
	// CurveLinear ramps at a constant rate.
	CurveLinear
)

// DefaultHalfWidth is the half-width of the blend zone around the tube midpoint.
const DefaultHalfWidth float32 = 0.25

// ErrInvalidBlend is returned for blend parameters outside their valid range.
var ErrInvalidBlend = errors.New("invalid blend")

var curveNames = map[Curve]string{
	CurveSmoothstep: "smoothstep",
	CurveLinear:     "linear",
}

// String returns the curve name.
func (c Curve) String() string {
	if name, ok := curveNames[c]; ok {
		return name
	}
	return fmt.Sprintf("curve(%d)", int(c))
}

// ParseCurve converts a name ("smoothstep" or "linear") to a Curve.
func ParseCurve(name string) (Curve, error) {
	for c, n := range curveNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown curve %q", ErrInvalidBlend, name)
}

// MarshalText implements encoding.TextMarshaler.
func (c Curve) MarshalText() ([]byte, error) {
	name, ok := curveNames[c]
	if !ok {
		return nil, fmt.Errorf("%w: unknown curve %d", ErrInvalidBlend, int(c))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Curve) UnmarshalText(text []byte) error {
	parsed, err := ParseCurve(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Blend maps a normalized axial position to a pair of bone weights.
// Build it with NewBlend or DefaultBlend. A HalfWidth of zero or less,
// as in the zero value, is a hard switch at the midpoint.
type Blend struct {
	Curve     Curve
	HalfWidth float32
}

// DefaultBlend returns the smoothstep curve over [0.25, 0.75].
func DefaultBlend() Blend {
	return Blend{Curve: CurveSmoothstep, HalfWidth: DefaultHalfWidth}
}

// NewBlend validates the parameters and returns a Blend.
// halfWidth must lie in (0, 0.5].
func NewBlend(curve Curve, halfWidth float32) (Blend, error) {
	if _, ok := curveNames[curve]; !ok {
		return Blend{}, fmt.Errorf("%w: unknown curve %d", ErrInvalidBlend, int(curve))
	}
	if !(halfWidth > 0 && halfWidth <= 0.5) {
		return Blend{}, fmt.Errorf("%w: half-width %v outside (0, 0.5]", ErrInvalidBlend, halfWidth)
	}
	return Blend{Curve: curve, HalfWidth: halfWidth}, nil
}

// Weights returns the (bone 0, bone 1) weights at axial position u in [0, 1].
// The weights are non-negative, sum to one and move monotonically toward bone 1 as u grows.
func (b Blend) Weights(u float32) [2]float32 {
	a := b.HalfWidth
	d := u - 0.5

	if !(a > 0) {
		switch {
		case d < 0:
			return [2]float32{1, 0}
		case d > 0:
			return [2]float32{0, 1}
		}
		return [2]float32{0.5, 0.5}
	}

	switch {
	case d < -a:
		return [2]float32{1, 0}
	case d > a:
		return [2]float32{0, 1}
	}

	if b.Curve == CurveLinear {
		return [2]float32{
			1 - (d+a)/(2*a),
			1 - (-d+a)/(2*a),
		}
	}

	ss1 := math.Smoothstep(a, -a, d)
	ss2 := math.Smoothstep(-a, a, d)
	s := ss1 + ss2
	return [2]float32{ss1 / s, ss2 / s}
}

// Weights4 packs Weights into the four-slot vertex attribute; slots 2 and 3 are zero.
func (b Blend) Weights4(u float32) math.Vec4 {
	w := b.Weights(u)
	return math.Vec4{X: w[0], Y: w[1]}
}
