// Package scene runs the frame loop that animates the skinned tube.
package scene

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/Faultbox/dqskin/internal/animation"
	"github.com/Faultbox/dqskin/internal/camera"
	"github.com/Faultbox/dqskin/internal/config"
	"github.com/Faultbox/dqskin/internal/logger"
	"github.com/Faultbox/dqskin/internal/mesh"
	"github.com/Faultbox/dqskin/internal/skin"
	"github.com/Faultbox/dqskin/pkg/math"
)

// ErrInvalidConfig is returned for settings the loop cannot run with.
var ErrInvalidConfig = errors.New("invalid scene config")

// Frame is everything the renderer needs for one tick.
type Frame struct {
	Index          int
	Time           float32 // seconds since the first frame
	Constants      animation.TransformConstants
	ViewProjection math.Mat4
}

// Config holds scene settings.
type Config struct {
	Tube      mesh.TubeParams
	Blend     skin.Blend
	Animation animation.Params
	Camera    camera.Config
	FPS       int
	MaxFrames int // 0 runs until cancelled
	Aspect    float32
}

// FromConfig extracts the scene settings from the application config.
func FromConfig(c *config.Config) (Config, error) {
	blend, err := c.Skin.Blend()
	if err != nil {
		return Config{}, err
	}
	return Config{
		Tube:      c.Tube,
		Blend:     blend,
		Animation: c.Animation,
		Camera:    c.Camera,
		FPS:       c.Graphics.FPS,
		MaxFrames: c.Graphics.MaxFrames,
		Aspect:    c.Graphics.Aspect(),
	}, nil
}

// Scene owns the tube geometry, the camera and the composer. The geometry is
// built once and never changes; only the bone transforms move.
type Scene struct {
	id        uuid.UUID
	cfg       Config
	mesh      *mesh.Mesh
	boneLines []mesh.FlatVertex
	camera    *camera.OrbitCamera
	composer  atomic.Pointer[animation.Composer]
	metrics   *Metrics
	log       *zap.Logger
}

// New builds a scene. Metrics are registered on reg when it is non-nil.
func New(cfg Config, reg prometheus.Registerer) (*Scene, error) {
	if cfg.FPS <= 0 {
		return nil, fmt.Errorf("%w: fps %d must be positive", ErrInvalidConfig, cfg.FPS)
	}
	if cfg.MaxFrames < 0 {
		return nil, fmt.Errorf("%w: max frames %d must not be negative", ErrInvalidConfig, cfg.MaxFrames)
	}
	if !(cfg.Aspect > 0) {
		return nil, fmt.Errorf("%w: aspect %v must be positive", ErrInvalidConfig, cfg.Aspect)
	}
	if cfg.Animation.TubeHeight != cfg.Tube.Height {
		return nil, fmt.Errorf("%w: animation tube height %v differs from tube height %v",
			ErrInvalidConfig, cfg.Animation.TubeHeight, cfg.Tube.Height)
	}

	tube, err := mesh.BuildTube(cfg.Tube, cfg.Blend)
	if err != nil {
		return nil, fmt.Errorf("building tube: %w", err)
	}
	lines, err := mesh.BuildBoneLines(cfg.Tube.Bones, cfg.Tube.Height)
	if err != nil {
		return nil, fmt.Errorf("building bone lines: %w", err)
	}
	composer, err := animation.NewComposer(cfg.Animation)
	if err != nil {
		return nil, err
	}
	metrics, err := NewMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("registering metrics: %w", err)
	}

	id := uuid.New()
	s := &Scene{
		id:        id,
		cfg:       cfg,
		mesh:      tube,
		boneLines: lines,
		camera:    camera.NewOrbitCamera(cfg.Camera),
		metrics:   metrics,
		log:       logger.Named("scene").With(zap.String("session", id.String())),
	}
	s.composer.Store(composer)

	s.log.Info("scene created",
		zap.Int("vertices", len(tube.Vertices)),
		zap.Int("indices", len(tube.Indices)),
		zap.Stringer("curve", cfg.Blend.Curve),
	)
	return s, nil
}

// ID returns the session identifier that tags the scene's log lines.
func (s *Scene) ID() uuid.UUID { return s.id }

// Mesh returns the bind-pose tube.
func (s *Scene) Mesh() *mesh.Mesh { return s.mesh }

// BoneLines returns the bind-pose bone segments.
func (s *Scene) BoneLines() []mesh.FlatVertex { return s.boneLines }

// Camera returns the scene camera.
func (s *Scene) Camera() *camera.OrbitCamera { return s.camera }

// Metrics returns the loop instruments.
func (s *Scene) Metrics() *Metrics { return s.metrics }

// Params returns the animation parameters in use.
func (s *Scene) Params() animation.Params {
	return s.composer.Load().Params()
}

// SetParams swaps the animation parameters. It is safe to call while Run is
// active; the change applies from the next frame. The tube height is fixed by
// the mesh and cannot change.
func (s *Scene) SetParams(p animation.Params) error {
	if p.TubeHeight != s.cfg.Tube.Height {
		return fmt.Errorf("%w: tube height %v cannot change from %v", ErrInvalidConfig, p.TubeHeight, s.cfg.Tube.Height)
	}
	composer, err := animation.NewComposer(p)
	if err != nil {
		return err
	}
	s.composer.Store(composer)
	s.log.Info("animation parameters updated", zap.Any("params", p))
	return nil
}

// Frame composes frame index at time t.
func (s *Scene) Frame(index int, t float32) Frame {
	return Frame{
		Index:          index,
		Time:           t,
		Constants:      s.composer.Load().Compose(t),
		ViewProjection: s.camera.ViewProjection(s.cfg.Aspect),
	}
}

// Run composes and submits frames at the configured rate until ctx is
// cancelled, MaxFrames frames were submitted, or the sink fails.
func (s *Scene) Run(ctx context.Context, sink FrameSink) error {
	interval := time.Second / time.Duration(s.cfg.FPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.log.Info("starting frame loop",
		zap.Int("fps", s.cfg.FPS),
		zap.Int("max_frames", s.cfg.MaxFrames),
	)

	var start time.Time
	frameCount := 0
	fpsTimer := time.Now()

	for index := 0; s.cfg.MaxFrames == 0 || index < s.cfg.MaxFrames; index++ {
		if ctx.Err() != nil {
			s.log.Info("frame loop stopped", zap.Int("frames", index))
			return nil
		}
		if index > 0 {
			select {
			case <-ctx.Done():
				s.log.Info("frame loop stopped", zap.Int("frames", index))
				return nil
			case tick := <-ticker.C:
				if time.Since(tick) > interval {
					s.metrics.LateTicks.Inc()
				}
			}
		}

		now := time.Now()
		if index == 0 {
			start = now
		}
		frame := s.Frame(index, float32(now.Sub(start).Seconds()))
		s.metrics.ComposeSeconds.Observe(time.Since(now).Seconds())

		if err := sink.Submit(frame); err != nil {
			s.metrics.SinkErrors.Inc()
			return fmt.Errorf("submitting frame %d: %w", index, err)
		}
		s.metrics.Frames.Inc()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			s.log.Debug("fps", zap.Int("count", frameCount), zap.Float32("time", frame.Time))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	s.log.Info("frame loop finished", zap.Int("frames", s.cfg.MaxFrames))
	return nil
}
