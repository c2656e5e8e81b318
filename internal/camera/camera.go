// Package camera provides the orbit camera used to view the tube.
package camera

import (
	"errors"
	"fmt"

	"github.com/Faultbox/dqskin/internal/mesh"
	"github.com/Faultbox/dqskin/pkg/math"
)

// Config holds the camera settings loaded from configuration.
type Config struct {
	Distance      float32 `yaml:"distance" toml:"distance"`
	Yaw           float32 `yaml:"yaw" toml:"yaw"`
	Pitch         float32 `yaml:"pitch" toml:"pitch"`
	HorizontalFOV float32 `yaml:"horizontal_fov" toml:"horizontal_fov"` // degrees
	Near          float32 `yaml:"near" toml:"near"`
	Far           float32 `yaml:"far" toml:"far"`
}

// DefaultConfig places the camera in front of the tube on the -Z side, looking at the origin.
func DefaultConfig() Config {
	return Config{
		Distance:      8,
		Yaw:           math.Pi,
		Pitch:         0.3,
		HorizontalFOV: 90,
		Near:          0.1,
		Far:           100,
	}
}

// ErrInvalidConfig is returned for camera settings that cannot produce a projection.
var ErrInvalidConfig = errors.New("invalid camera config")

// Validate checks the projection and orbit settings.
func (c Config) Validate() error {
	switch {
	case !(c.Distance > 0):
		return fmt.Errorf("%w: distance %v must be positive", ErrInvalidConfig, c.Distance)
	case !(c.HorizontalFOV > 0 && c.HorizontalFOV < 180):
		return fmt.Errorf("%w: horizontal fov %v must be in (0, 180) degrees", ErrInvalidConfig, c.HorizontalFOV)
	case !(c.Near > 0):
		return fmt.Errorf("%w: near plane %v must be positive", ErrInvalidConfig, c.Near)
	case !(c.Far > c.Near):
		return fmt.Errorf("%w: far plane %v must be beyond near plane %v", ErrInvalidConfig, c.Far, c.Near)
	}
	return nil
}

// OrbitCamera orbits around a target point.
type OrbitCamera struct {
	// Point to orbit around
	Target math.Vec3

	// Spherical coordinates
	Distance float32 // Distance from target
	Pitch    float32 // Vertical angle, radians
	Yaw      float32 // Horizontal angle, radians

	// Projection
	HorizontalFOV float32 // radians
	Near          float32
	Far           float32

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates an orbit camera from configuration.
func NewOrbitCamera(cfg Config) *OrbitCamera {
	return &OrbitCamera{
		Distance:        cfg.Distance,
		Pitch:           cfg.Pitch,
		Yaw:             cfg.Yaw,
		HorizontalFOV:   math.DegToRad(cfg.HorizontalFOV),
		Near:            cfg.Near,
		Far:             cfg.Far,
		MinDistance:     1,
		MaxDistance:     50,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	cp := math.Cos(c.Pitch)
	offset := math.Vec3{
		X: c.Distance * cp * math.Sin(c.Yaw),
		Y: c.Distance * math.Sin(c.Pitch),
		Z: c.Distance * cp * math.Cos(c.Yaw),
	}
	return c.Target.Add(offset)
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Target, math.AxisY)
}

// ProjectionMatrix returns the perspective projection for the given width/height ratio.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	return math.Perspective(c.HorizontalFOV, aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *OrbitCamera) ViewProjection(aspect float32) math.Mat4 {
	return c.ProjectionMatrix(aspect).Mul(c.ViewMatrix())
}

// Orbit rotates the camera by a drag delta in pixels.
func (c *OrbitCamera) Orbit(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch = math.Clamp(c.Pitch+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// Zoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) Zoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = math.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// FitToBounds centers the camera on a box and backs off far enough to keep it in view.
func (c *OrbitCamera) FitToBounds(b mesh.Bounds) {
	c.Target = b.Center()

	radius := b.Size().Length() / 2
	c.Distance = radius / math.Tan(c.HorizontalFOV/2) * 1.5
	c.Distance = math.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
}
