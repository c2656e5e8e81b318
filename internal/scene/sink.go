package scene

import (
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/Faultbox/dqskin/internal/animation"
)

// FrameSink receives composed frames. Submit must be done with the frame
// before it returns; the loop does not compose the next frame until then.
type FrameSink interface {
	Submit(Frame) error
}

// LogSink logs every frame at debug level.
type LogSink struct {
	log *zap.Logger
}

// NewLogSink creates a sink that writes to log.
func NewLogSink(log *zap.Logger) *LogSink {
	return &LogSink{log: log}
}

// Submit implements FrameSink.
func (s *LogSink) Submit(f Frame) error {
	if ce := s.log.Check(zap.DebugLevel, "frame"); ce != nil {
		b0, b1 := f.Constants.Bones[0].Array(), f.Constants.Bones[1].Array()
		ce.Write(
			zap.Int("index", f.Index),
			zap.Float32("time", f.Time),
			zap.Float32s("bone0", b0[:]),
			zap.Float32s("bone1", b1[:]),
		)
	}
	return nil
}

// StreamSink writes the bone constants of each frame to w, ConstantsSize bytes per frame.
type StreamSink struct {
	w   io.Writer
	buf []byte
}

// NewStreamSink creates a sink that writes to w.
func NewStreamSink(w io.Writer) *StreamSink {
	return &StreamSink{w: w, buf: make([]byte, 0, animation.ConstantsSize)}
}

// Submit implements FrameSink.
func (s *StreamSink) Submit(f Frame) error {
	s.buf = f.Constants.AppendBytes(s.buf[:0])
	_, err := s.w.Write(s.buf)
	return err
}

// RecordSink keeps every frame in memory.
type RecordSink struct {
	Frames []Frame
}

// Submit implements FrameSink.
func (s *RecordSink) Submit(f Frame) error {
	s.Frames = append(s.Frames, f)
	return nil
}

// MultiSink submits each frame to every sink in order and joins their errors.
type MultiSink []FrameSink

// Submit implements FrameSink.
func (m MultiSink) Submit(f Frame) error {
	var errs []error
	for _, s := range m {
		if err := s.Submit(f); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
