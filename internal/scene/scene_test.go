package scene

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"

	"github.com/Faultbox/dqskin/internal/animation"
	"github.com/Faultbox/dqskin/internal/config"
	"github.com/Faultbox/dqskin/internal/mesh"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	cfg, err := FromConfig(config.Default())
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	cfg.Tube.AxialSegments = 8
	cfg.Tube.RadialSegments = 6
	cfg.FPS = 1000
	cfg.MaxFrames = 5
	return cfg
}

func newScene(t *testing.T, cfg Config) *Scene {
	t.Helper()
	s, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

var errSinkFull = errors.New("sink full")

type failingSink struct {
	accept int
	got    int
}

func (s *failingSink) Submit(Frame) error {
	if s.got == s.accept {
		return errSinkFull
	}
	s.got++
	return nil
}

type cancelSink struct {
	RecordSink
	after  int
	cancel context.CancelFunc
}

func (s *cancelSink) Submit(f Frame) error {
	_ = s.RecordSink.Submit(f)
	if len(s.Frames) == s.after {
		s.cancel()
	}
	return nil
}

func TestFromConfig(t *testing.T) {
	c := config.Default()
	cfg, err := FromConfig(c)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	if cfg.FPS != c.Graphics.FPS || cfg.MaxFrames != c.Graphics.MaxFrames {
		t.Errorf("pacing not copied: %+v", cfg)
	}
	if cfg.Blend.HalfWidth != c.Skin.HalfWidth || cfg.Blend.Curve != c.Skin.Curve {
		t.Errorf("blend not copied: %+v", cfg.Blend)
	}

	c.Skin.HalfWidth = 0
	if _, err := FromConfig(c); err == nil {
		t.Error("expected error for zero half width")
	}
}

func TestNewValidates(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{"zero fps", func(c *Config) { c.FPS = 0 }, ErrInvalidConfig},
		{"negative frames", func(c *Config) { c.MaxFrames = -1 }, ErrInvalidConfig},
		{"zero aspect", func(c *Config) { c.Aspect = 0 }, ErrInvalidConfig},
		{"height mismatch", func(c *Config) { c.Animation.TubeHeight = 2 }, ErrInvalidConfig},
		{"flat tube", func(c *Config) { c.Tube.RadialSegments = 2 }, mesh.ErrInvalidParams},
		{"three bones", func(c *Config) { c.Tube.Bones = 3 }, mesh.ErrInvalidParams},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.modify(&cfg)
			if _, err := New(cfg, nil); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNewBuildsGeometry(t *testing.T) {
	cfg := testConfig(t)
	s := newScene(t, cfg)

	if got := len(s.Mesh().Vertices); got != cfg.Tube.NumVertices() {
		t.Errorf("vertices = %d, want %d", got, cfg.Tube.NumVertices())
	}
	if got := len(s.BoneLines()); got != 2*animation.NumBones {
		t.Errorf("bone line vertices = %d, want %d", got, 2*animation.NumBones)
	}
	if s.ID().String() == "" {
		t.Error("empty session id")
	}
	other := newScene(t, cfg)
	if s.ID() == other.ID() {
		t.Error("two scenes share a session id")
	}
}

func TestRunSubmitsMaxFrames(t *testing.T) {
	cfg := testConfig(t)
	s := newScene(t, cfg)

	var rec RecordSink
	if err := s.Run(context.Background(), &rec); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(rec.Frames) != cfg.MaxFrames {
		t.Fatalf("frames = %d, want %d", len(rec.Frames), cfg.MaxFrames)
	}
	if rec.Frames[0].Time != 0 {
		t.Errorf("first frame time = %v, want 0", rec.Frames[0].Time)
	}

	composer, err := animation.NewComposer(cfg.Animation)
	if err != nil {
		t.Fatalf("NewComposer: %v", err)
	}
	vp := s.Camera().ViewProjection(cfg.Aspect)
	for i, f := range rec.Frames {
		if f.Index != i {
			t.Errorf("frame %d has index %d", i, f.Index)
		}
		if i > 0 && f.Time < rec.Frames[i-1].Time {
			t.Errorf("frame %d time %v before previous %v", i, f.Time, rec.Frames[i-1].Time)
		}
		if f.Constants != composer.Compose(f.Time) {
			t.Errorf("frame %d constants differ from a fresh composer at t=%v", i, f.Time)
		}
		if f.ViewProjection != vp {
			t.Errorf("frame %d view projection changed", i)
		}
	}

	if got := testutil.ToFloat64(s.Metrics().Frames); got != float64(cfg.MaxFrames) {
		t.Errorf("frames_total = %v, want %d", got, cfg.MaxFrames)
	}
}

func TestRunStopsOnSinkError(t *testing.T) {
	s := newScene(t, testConfig(t))

	sink := &failingSink{accept: 2}
	err := s.Run(context.Background(), sink)
	if !errors.Is(err, errSinkFull) {
		t.Fatalf("expected errSinkFull, got %v", err)
	}
	if sink.got != 2 {
		t.Errorf("accepted %d frames, want 2", sink.got)
	}
	if got := testutil.ToFloat64(s.Metrics().SinkErrors); got != 1 {
		t.Errorf("sink_errors_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(s.Metrics().Frames); got != 2 {
		t.Errorf("frames_total = %v, want 2", got)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	cfg := testConfig(t)
	cfg.MaxFrames = 0
	s := newScene(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sink := &cancelSink{after: 3, cancel: cancel}

	if err := s.Run(ctx, sink); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(sink.Frames) != 3 {
		t.Errorf("frames = %d, want 3", len(sink.Frames))
	}
}

func TestRunCancelledBeforeStart(t *testing.T) {
	s := newScene(t, testConfig(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var rec RecordSink
	if err := s.Run(ctx, &rec); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(rec.Frames) != 0 {
		t.Errorf("frames = %d, want 0", len(rec.Frames))
	}
}

func TestSetParams(t *testing.T) {
	cfg := testConfig(t)
	s := newScene(t, cfg)

	p := s.Params()
	p.SpinRate = 3
	p.WiggleAmplitude = 0
	if err := s.SetParams(p); err != nil {
		t.Fatalf("SetParams: %v", err)
	}
	if s.Params() != p {
		t.Errorf("Params() = %+v, want %+v", s.Params(), p)
	}

	composer, _ := animation.NewComposer(p)
	if got := s.Frame(7, 1.5); got.Constants != composer.Compose(1.5) {
		t.Error("frame does not use the new parameters")
	}

	taller := p
	taller.TubeHeight = cfg.Tube.Height * 2
	if err := s.SetParams(taller); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for a new tube height, got %v", err)
	}
	if s.Params() != p {
		t.Error("rejected params replaced the composer")
	}
}

func TestStreamSink(t *testing.T) {
	s := newScene(t, testConfig(t))

	var buf bytes.Buffer
	sink := NewStreamSink(&buf)
	frames := []Frame{s.Frame(0, 0), s.Frame(1, 0.25), s.Frame(2, 0.5)}
	for _, f := range frames {
		if err := sink.Submit(f); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}

	data := buf.Bytes()
	if len(data) != len(frames)*animation.ConstantsSize {
		t.Fatalf("stream has %d bytes, want %d", len(data), len(frames)*animation.ConstantsSize)
	}
	for i, f := range frames {
		got, ok := animation.ConstantsFromBytes(data[i*animation.ConstantsSize:])
		if !ok {
			t.Fatalf("frame %d: short buffer", i)
		}
		if got != f.Constants {
			t.Errorf("frame %d: decoded %+v, want %+v", i, got, f.Constants)
		}
	}
}

func TestMultiSink(t *testing.T) {
	var a, b RecordSink
	failing := &failingSink{}
	m := MultiSink{&a, failing, &b, NewLogSink(zap.NewNop())}

	err := m.Submit(Frame{Index: 4})
	if !errors.Is(err, errSinkFull) {
		t.Errorf("expected errSinkFull, got %v", err)
	}
	if len(a.Frames) != 1 || len(b.Frames) != 1 {
		t.Errorf("record sinks got %d and %d frames, want 1 each", len(a.Frames), len(b.Frames))
	}
}

func TestMetricsRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	s, err := New(testConfig(t), reg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.Run(context.Background(), &RecordSink{}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	names := make(map[string]bool)
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	for _, want := range []string{
		"dqskin_scene_frames_total",
		"dqskin_scene_late_ticks_total",
		"dqskin_scene_sink_errors_total",
		"dqskin_scene_compose_duration_seconds",
	} {
		if !names[want] {
			t.Errorf("metric %s not registered", want)
		}
	}

	if _, err := New(testConfig(t), reg); err == nil {
		t.Error("expected duplicate registration to fail")
	}
}

func TestMetricsRegistrationRollsBack(t *testing.T) {
	reg := prometheus.NewRegistry()
	taken := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "dqskin",
		Subsystem: "scene",
		Name:      "sink_errors_total",
		Help:      "Already registered by someone else.",
	})
	reg.MustRegister(taken)

	if _, err := NewMetrics(reg); err == nil {
		t.Fatal("expected registration to fail")
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != "dqskin_scene_sink_errors_total" {
			t.Errorf("metric %s left on the registry", mf.GetName())
		}
	}

	reg.Unregister(taken)
	if _, err := NewMetrics(reg); err != nil {
		t.Errorf("registering after the conflict is gone: %v", err)
	}
}
