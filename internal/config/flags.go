package config

import (
	"flag"

	"github.com/Faultbox/dqskin/internal/skin"
)

var (
	flagConfig      = flag.String("config", "", "Path to config file (.yaml or .toml)")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagFrames      = flag.Int("frames", 0, "Stop after this many frames")
	flagFPS         = flag.Int("fps", 0, "Frame rate")
	flagCurve       = flag.String("curve", "", "Weight curve (smoothstep or linear)")
	flagMetricsAddr = flag.String("metrics-addr", "", "Serve Prometheus metrics on this address")
	flagWatch       = flag.Bool("watch", false, "Reload animation settings when the config file changes")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WatchEnabled reports whether --watch was given.
func WatchEnabled() bool {
	return *flagWatch
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagFrames > 0 {
		cfg.Graphics.MaxFrames = *flagFrames
	}
	if *flagFPS > 0 {
		cfg.Graphics.FPS = *flagFPS
	}
	if *flagCurve != "" {
		curve, err := skin.ParseCurve(*flagCurve)
		if err != nil {
			return err
		}
		cfg.Skin.Curve = curve
	}
	if *flagMetricsAddr != "" {
		cfg.Metrics.Addr = *flagMetricsAddr
	}
	return nil
}
