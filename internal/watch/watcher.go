// Package watch re-runs batches when files land in the inbox.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/docship/pkg/log"
)

// DefaultDebounceDelay is how long the watcher waits after the last change.
const DefaultDebounceDelay = 500 * time.Millisecond

// Config holds configuration options for the inbox watcher.
type Config struct {
	// Dir is the directory to watch (not recursive).
	Dir string

	// DebounceDelay is the delay to wait after a file change before triggering.
	// Default: 500 milliseconds
	DebounceDelay time.Duration

	// Ignore filters out names that should not trigger a batch. Optional.
	Ignore func(name string) bool
}

// Watcher triggers a callback whenever the watched directory gains files.
type Watcher struct {
	dir      string
	debounce time.Duration
	ignore   func(name string) bool
	logger   log.Logger
}

// New creates a new watcher with the given configuration.
func New(cfg Config, logger log.Logger) *Watcher {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = DefaultDebounceDelay
	}
	if cfg.Ignore == nil {
		cfg.Ignore = func(string) bool { return false }
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Watcher{
		dir:      cfg.Dir,
		debounce: cfg.DebounceDelay,
		ignore:   cfg.Ignore,
		logger:   logger,
	}
}

// Run calls trigger once immediately and then after every burst of
// create/write events. Triggers never overlap. It blocks until ctx is done.
func (w *Watcher) Run(ctx context.Context, trigger func(context.Context)) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	w.logger.Info("watching inbox", log.String("dir", w.dir), log.Duration("debounce", w.debounce))
	trigger(ctx)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if w.ignore(filepath.Base(event.Name)) {
				continue
			}
			pending = time.After(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", log.Err(err))

		case <-pending:
			pending = nil
			if ctx.Err() != nil {
				return nil
			}
			trigger(ctx)
		}
	}
}
