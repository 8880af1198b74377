// Package monitor watches a sandbox config file and reports settled changes.
package monitor

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/logging"
)

// DefaultDebounce is how long the file must stay quiet before a change is
// reported. Editors often write a file in several steps.
const DefaultDebounce = 200 * time.Millisecond

// Monitor reports changes to a single file.
type Monitor struct {
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithDebounce sets the quiet period before a change is reported.
func WithDebounce(d time.Duration) Option {
	return func(m *Monitor) {
		m.debounce = d
	}
}

// New starts watching path. The parent directory is watched rather than the
// file, so that editors replacing the file through a rename are still seen.
// Call Close when done.
func New(path string, opts ...Option) (*Monitor, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	m := &Monitor{
		path:     abs,
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(m)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	m.watcher = w

	return m, nil
}

// Path returns the absolute path being watched.
func (m *Monitor) Path() string {
	return m.path
}

// Run calls onChange once per settled burst of writes to the file. It blocks
// until the context is cancelled and returns the context's error.
func (m *Monitor) Run(ctx context.Context, onChange func()) error {
	logging.Debug("watching config file", "path", m.path, "debounce", m.debounce)

	timer := time.NewTimer(m.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Debug("config monitor stopping")
			return ctx.Err()

		case event, ok := <-m.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			if !m.relevant(event) {
				continue
			}
			timer.Reset(m.debounce)

		case err, ok := <-m.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			logging.Warn("config monitor error", "error", err)

		case <-timer.C:
			onChange()
		}
	}
}

// relevant reports whether event may have changed the file's content.
// Removals are skipped: a replacing editor creates the file again.
func (m *Monitor) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != m.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// Close stops watching.
func (m *Monitor) Close() error {
	return m.watcher.Close()
}
