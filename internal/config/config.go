// Package config handles skinning demo configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/dqskin/internal/animation"
	"github.com/Faultbox/dqskin/internal/camera"
	"github.com/Faultbox/dqskin/internal/logger"
	"github.com/Faultbox/dqskin/internal/mesh"
	"github.com/Faultbox/dqskin/internal/skin"
	"github.com/Faultbox/dqskin/internal/texture"
)

// ErrInvalid is returned by Validate. The section error is wrapped alongside it.
var ErrInvalid = errors.New("invalid config")

// Config holds all demo settings.
type Config struct {
	Tube      mesh.TubeParams  `yaml:"tube" toml:"tube"`
	Skin      SkinConfig       `yaml:"skin" toml:"skin"`
	Animation animation.Params `yaml:"animation" toml:"animation"`
	Camera    camera.Config    `yaml:"camera" toml:"camera"`
	Graphics  GraphicsConfig   `yaml:"graphics" toml:"graphics"`
	Texture   TextureConfig    `yaml:"texture" toml:"texture"`
	Metrics   MetricsConfig    `yaml:"metrics" toml:"metrics"`
	Logging   logger.Config    `yaml:"logging" toml:"logging"`
}

// SkinConfig selects the weight curve.
type SkinConfig struct {
	Curve     skin.Curve `yaml:"curve" toml:"curve"`
	HalfWidth float32    `yaml:"half_width" toml:"half_width"`
}

// Blend returns the validated blend policy.
func (s SkinConfig) Blend() (skin.Blend, error) {
	return skin.NewBlend(s.Curve, s.HalfWidth)
}

// GraphicsConfig holds frame pacing and viewport settings.
type GraphicsConfig struct {
	Width     int `yaml:"width" toml:"width"`
	Height    int `yaml:"height" toml:"height"`
	FPS       int `yaml:"fps" toml:"fps"`
	MaxFrames int `yaml:"max_frames" toml:"max_frames"` // 0 runs until cancelled

	// Stream receives the 64-byte bone constants of every frame.
	// "-" is stdout, empty disables the stream.
	Stream string `yaml:"stream" toml:"stream"`
}

// Aspect returns width over height.
func (g GraphicsConfig) Aspect() float32 {
	return float32(g.Width) / float32(g.Height)
}

// TextureConfig holds the checker texture settings and its export target.
type TextureConfig struct {
	Checker texture.Config `yaml:"checker" toml:"checker"`
	Output  string         `yaml:"output" toml:"output"`
	Scale   int            `yaml:"scale" toml:"scale"`
}

// MetricsConfig holds the Prometheus endpoint settings.
type MetricsConfig struct {
	Addr string `yaml:"addr" toml:"addr"` // empty disables the endpoint
	Path string `yaml:"path" toml:"path"`
}

// Default returns a Config with the demo's default values.
func Default() *Config {
	tube := mesh.DefaultTubeParams()
	anim := animation.DefaultParams()
	anim.TubeHeight = tube.Height

	return &Config{
		Tube: tube,
		Skin: SkinConfig{
			Curve:     skin.CurveSmoothstep,
			HalfWidth: skin.DefaultHalfWidth,
		},
		Animation: anim,
		Camera:    camera.DefaultConfig(),
		Graphics: GraphicsConfig{
			Width:  1280,
			Height: 720,
			FPS:    60,
		},
		Texture: TextureConfig{
			Checker: texture.DefaultConfig(),
			Output:  "tube.webp",
			Scale:   1,
		},
		Metrics: MetricsConfig{
			Path: "/metrics",
		},
		Logging: logger.DefaultConfig(),
	}
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Tube.Validate(); err != nil {
		return fmt.Errorf("%w: tube: %w", ErrInvalid, err)
	}
	if _, err := c.Skin.Blend(); err != nil {
		return fmt.Errorf("%w: skin: %w", ErrInvalid, err)
	}
	if err := c.Animation.Validate(); err != nil {
		return fmt.Errorf("%w: animation: %w", ErrInvalid, err)
	}
	if c.Animation.TubeHeight != c.Tube.Height {
		return fmt.Errorf("%w: animation tube_height %v differs from tube height %v",
			ErrInvalid, c.Animation.TubeHeight, c.Tube.Height)
	}
	if err := c.Camera.Validate(); err != nil {
		return fmt.Errorf("%w: camera: %w", ErrInvalid, err)
	}
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("%w: graphics: viewport %dx%d must be positive", ErrInvalid, c.Graphics.Width, c.Graphics.Height)
	}
	if c.Graphics.FPS <= 0 {
		return fmt.Errorf("%w: graphics: fps %d must be positive", ErrInvalid, c.Graphics.FPS)
	}
	if c.Graphics.MaxFrames < 0 {
		return fmt.Errorf("%w: graphics: max_frames %d must not be negative", ErrInvalid, c.Graphics.MaxFrames)
	}
	if err := c.Texture.Checker.Validate(); err != nil {
		return fmt.Errorf("%w: texture: %w", ErrInvalid, err)
	}
	if c.Texture.Scale < 1 {
		return fmt.Errorf("%w: texture: scale %d must be at least 1", ErrInvalid, c.Texture.Scale)
	}
	if c.Texture.Output != "" {
		if _, err := texture.FormatFromPath(c.Texture.Output); err != nil {
			return fmt.Errorf("%w: texture: %w", ErrInvalid, err)
		}
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging: %w", ErrInvalid, err)
	}
	return nil
}
