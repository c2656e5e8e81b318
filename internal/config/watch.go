package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/dqskin/internal/logger"
)

// Watcher reloads a config file whenever it changes on disk.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	log     *zap.Logger
}

// NewWatcher starts watching path. Events that arrive before Run is called are kept.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	// Editors often replace the file, so watch its directory.
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:    abs,
		watcher: fw,
		log:     logger.Named("config"),
	}, nil
}

// Run reloads the file on every write and passes each valid result to onChange.
// Invalid edits are logged and skipped. Run returns when ctx is cancelled.
func (w *Watcher) Run(ctx context.Context, onChange func(*Config)) error {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			cfg, err := LoadFile(w.path)
			if err != nil {
				w.log.Warn("config reload failed", zap.String("path", w.path), zap.Error(err))
				continue
			}
			w.log.Info("config reloaded", zap.String("path", w.path))
			onChange(cfg)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("config watcher error", zap.Error(err))
		}
	}
}

// Watch is NewWatcher followed by Run.
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	w, err := NewWatcher(path)
	if err != nil {
		return err
	}
	return w.Run(ctx, onChange)
}
