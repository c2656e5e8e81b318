package scene

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the frame loop instruments.
type Metrics struct {
	Frames         prometheus.Counter
	LateTicks      prometheus.Counter
	SinkErrors     prometheus.Counter
	ComposeSeconds prometheus.Histogram
}

// NewMetrics creates the instruments and registers them on reg.
// A nil reg leaves them unregistered. If any registration fails, the ones
// that succeeded are removed again so reg is left as it was.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dqskin",
			Subsystem: "scene",
			Name:      "frames_total",
			Help:      "Frames composed and accepted by the sink.",
		}),
		LateTicks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dqskin",
			Subsystem: "scene",
			Name:      "late_ticks_total",
			Help:      "Ticks handled more than one frame interval after they fired.",
		}),
		SinkErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dqskin",
			Subsystem: "scene",
			Name:      "sink_errors_total",
			Help:      "Frames rejected by the sink.",
		}),
		ComposeSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dqskin",
			Subsystem: "scene",
			Name:      "compose_duration_seconds",
			Help:      "Time spent building the bone transforms and camera matrix of a frame.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 10),
		}),
	}

	if reg != nil {
		var registered []prometheus.Collector
		for _, c := range []prometheus.Collector{m.Frames, m.LateTicks, m.SinkErrors, m.ComposeSeconds} {
			if err := reg.Register(c); err != nil {
				for _, r := range registered {
					reg.Unregister(r)
				}
				return nil, err
			}
			registered = append(registered, c)
		}
	}
	return m, nil
}
