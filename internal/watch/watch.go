// Package watch reports changes to a single note file.
//
// The note's directory is watched rather than the file itself because most
// editors save by writing a temporary file and renaming it over the note,
// which drops a watch placed on the old inode.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce groups the burst of events a single save produces.
const DefaultDebounce = 100 * time.Millisecond

// ErrEmptyPath is returned by New for an empty note path.
var ErrEmptyPath = errors.New("watch path cannot be empty")

// Watcher calls back once per settled change to a file.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger
	fsw      *fsnotify.Watcher
}

// New starts watching path. Events are delivered once Run is called, and
// events that arrive in between are kept. A zero debounce uses
// DefaultDebounce.
func New(path string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{path: abs, debounce: debounce, logger: logger, fsw: fsw}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Run blocks until ctx is done, calling onChange after each settled change.
// Callbacks run on the Run goroutine, one at a time. Run closes the
// watcher before returning.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context)) error {
	defer w.fsw.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("note changed", "path", w.path, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "path", w.path, "error", err)

		case <-fire:
			fire = nil
			onChange(ctx)
		}
	}
}

// Close stops the watcher without Run.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
