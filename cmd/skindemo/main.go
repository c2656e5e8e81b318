// Package main is the entry point for the dual-quaternion skinning demo.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Faultbox/dqskin/internal/config"
	"github.com/Faultbox/dqskin/internal/logger"
	"github.com/Faultbox/dqskin/internal/scene"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Setup(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== DQ Skin Demo ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("demo failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("demo finished normally")
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	sceneCfg, err := scene.FromConfig(cfg)
	if err != nil {
		return err
	}
	s, err := scene.New(sceneCfg, reg)
	if err != nil {
		return fmt.Errorf("creating scene: %w", err)
	}

	if cfg.Metrics.Addr != "" {
		srv := serveMetrics(cfg.Metrics, reg)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	if config.WatchEnabled() {
		watchConfig(ctx, s)
	}

	sinks := scene.MultiSink{scene.NewLogSink(logger.Named("frames"))}
	if cfg.Graphics.Stream != "" {
		w, closeStream, err := openStream(cfg.Graphics.Stream)
		if err != nil {
			return err
		}
		defer closeStream()
		sinks = append(sinks, scene.NewStreamSink(w))
	}

	return s.Run(ctx, sinks)
}

func serveMetrics(cfg config.MetricsConfig, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(cfg.Path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("serving metrics", zap.String("addr", cfg.Addr), zap.String("path", cfg.Path))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()
	return srv
}

func watchConfig(ctx context.Context, s *scene.Scene) {
	path := config.ResolvePath()
	if path == "" {
		logger.Warn("--watch given but no config file is in use")
		return
	}

	w, err := config.NewWatcher(path)
	if err != nil {
		logger.Warn("config watch disabled", zap.Error(err))
		return
	}
	go func() {
		_ = w.Run(ctx, func(c *config.Config) {
			if err := logger.SetLevel(c.Logging.Level); err != nil {
				logger.Warn("log level not changed", zap.Error(err))
			}
			if err := s.SetParams(c.Animation); err != nil {
				logger.Warn("animation parameters not changed", zap.Error(err))
			}
		})
	}()
}

func openStream(path string) (io.Writer, func(), error) {
	if path == "-" {
		bw := bufio.NewWriter(os.Stdout)
		return bw, func() {
			if err := bw.Flush(); err != nil {
				logger.Warn("flushing stream", zap.Error(err))
			}
		}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating stream file: %w", err)
	}
	bw := bufio.NewWriter(f)
	return bw, func() {
		if err := bw.Flush(); err != nil {
			logger.Warn("flushing stream", zap.Error(err))
		}
		f.Close()
	}, nil
}
