// Package animation composes the per-frame bone transforms that drive the tube.
package animation

import (
	"errors"
	"fmt"

	"github.com/Faultbox/dqskin/internal/skin"
	"github.com/Faultbox/dqskin/pkg/math"
)

// NumBones is the number of bones driving the tube.
const NumBones = skin.NumBones

// ErrInvalidParams is returned for animation parameters that cannot be composed.
var ErrInvalidParams = errors.New("invalid animation parameters")

// Params controls the procedural motion. Angles are in radians, rates in rad/s.
type Params struct {
	TubeHeight      float32 `yaml:"tube_height" toml:"tube_height"`
	SpinRate        float32 `yaml:"spin_rate" toml:"spin_rate"`
	WiggleAmplitude float32 `yaml:"wiggle_amplitude" toml:"wiggle_amplitude"`
	WiggleFrequency float32 `yaml:"wiggle_frequency" toml:"wiggle_frequency"`
	TwistAmplitude  float32 `yaml:"twist_amplitude" toml:"twist_amplitude"`
	TwistFrequency  float32 `yaml:"twist_frequency" toml:"twist_frequency"`
}

// DefaultParams returns the demo motion: one spin per 2*pi seconds, a quarter-turn
// wiggle at 1 rad/s and an eighth-turn twist at 5 rad/s.
func DefaultParams() Params {
	return Params{
		TubeHeight:      4,
		SpinRate:        1,
		WiggleAmplitude: 0.5 * math.Pi,
		WiggleFrequency: 1,
		TwistAmplitude:  0.25 * math.Pi,
		TwistFrequency:  5,
	}
}

// Validate checks the parameters.
func (p Params) Validate() error {
	if !(p.TubeHeight > 0) {
		return fmt.Errorf("%w: tube height %v must be positive", ErrInvalidParams, p.TubeHeight)
	}
	return nil
}

// Composer builds TransformConstants from elapsed time. It holds no state
// besides its parameters, so equal times give bit-identical results.
type Composer struct {
	params Params
}

// NewComposer creates a composer for the given parameters.
func NewComposer(p Params) (*Composer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Composer{params: p}, nil
}

// Params returns the composer's parameters.
func (c *Composer) Params() Params {
	return c.params
}

// Parent returns the bone 0 motion at time t: spin about the tube axis, then
// stand the tube up so +Z maps to +Y, then center it vertically.
func (c *Composer) Parent(t float32) math.DualQuat {
	p := c.params

	layDown := math.DualQuatRotateX(-0.5 * math.Pi)
	turn := math.DualQuatRotateY(-math.Pi * 0.5)
	spin := math.DualQuatRotateZ(p.SpinRate * t)
	center := math.DualQuatTranslateY(-p.TubeHeight / 2)

	return math.Mul4(center, turn, layDown, spin)
}

// Wiggle returns the bend applied at the tube midpoint at time t.
func (c *Composer) Wiggle(t float32) math.DualQuat {
	p := c.params

	rotation := math.DualQuatRotateX(p.WiggleAmplitude * math.Sin(p.WiggleFrequency*t))
	twist := math.DualQuatRotateZ(p.TwistAmplitude * math.Cos(p.TwistFrequency*t))

	return math.Mul(rotation, twist)
}

// Compose returns both bone transforms at time t in seconds.
//
// Bone 1 bends about the tube midpoint: move the midpoint to the origin, wiggle,
// move back, then follow bone 0. Both products use the balanced four-operand grouping.
func (c *Composer) Compose(t float32) TransformConstants {
	half := c.params.TubeHeight / 2

	parent := c.Parent(t)
	wiggle := c.Wiggle(t)
	rest := math.DualQuatTranslateZ(+half)
	unrest := math.DualQuatTranslateZ(-half)

	return TransformConstants{
		Bones: [NumBones]math.DualQuat{
			parent,
			math.Mul4(parent, rest, wiggle, unrest),
		},
	}
}

// Sample composes n frames starting at t0 spaced dt apart.
func (c *Composer) Sample(t0, dt float32, n int) []TransformConstants {
	frames := make([]TransformConstants, n)
	for i := range frames {
		frames[i] = c.Compose(t0 + float32(i)*dt)
	}
	return frames
}
