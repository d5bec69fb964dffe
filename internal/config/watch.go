package config

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/model"
)

// DefaultDebounce coalesces the bursts of events editors produce on save
const DefaultDebounce = 250 * time.Millisecond

// ErrWatcherClosed is returned when Close is called twice
var ErrWatcherClosed = errors.New("definition watcher is closed")

// ReloadHandler receives the reloaded definition, or the error that prevented loading it
type ReloadHandler func(ribbon *model.Ribbon, err error)

// DefinitionWatcher reloads a ribbon definition whenever its file changes.
// The parent directory is watched so that editors replacing the file on
// save are followed.
type DefinitionWatcher struct {
	path     string
	debounce time.Duration
	handler  ReloadHandler
	fs       *fsnotify.Watcher
	logger   *slog.Logger

	mu       sync.Mutex
	timer    *time.Timer
	closed   bool
	done     chan struct{}
	inflight sync.WaitGroup
}

// WatcherOption configures a DefinitionWatcher
type WatcherOption func(*DefinitionWatcher)

// WithDebounce sets how long the watcher waits for events to settle
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *DefinitionWatcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger used for watch errors
func WithLogger(logger *slog.Logger) WatcherOption {
	return func(w *DefinitionWatcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WatchDefinition starts watching path and calls handler after every settled change
func WatchDefinition(path string, handler ReloadHandler, opts ...WatcherOption) (*DefinitionWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch definition: %w", err)
	}
	if _, err := FormatForPath(absPath); err != nil {
		return nil, err
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch definition: %w", err)
	}
	if err := fs.Add(filepath.Dir(absPath)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watch definition: %w", err)
	}

	w := &DefinitionWatcher{
		path:     absPath,
		debounce: DefaultDebounce,
		handler:  handler,
		fs:       fs,
		logger:   slog.Default(),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.logger.With("component", "definition-watcher", "path", absPath)

	go w.run()
	return w, nil
}

// Path returns the absolute path of the watched definition
func (w *DefinitionWatcher) Path() string {
	return w.path
}

// Close stops watching. Pending reloads are dropped and a reload already
// running is waited for, so the handler never runs after Close returns.
func (w *DefinitionWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWatcherClosed
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	err := w.fs.Close()
	<-w.done
	w.inflight.Wait()
	return err
}

func (w *DefinitionWatcher) run() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.schedule()
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "error", err)
		}
	}
}

func (w *DefinitionWatcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *DefinitionWatcher) reload() {
	if !w.begin() {
		return
	}
	defer w.inflight.Done()

	ribbon, err := LoadDefinition(w.path)
	if err != nil {
		w.logger.Warn("reload failed", "error", err)
	} else {
		w.logger.Debug("definition reloaded", "tabs", len(ribbon.Tabs))
	}
	if w.handler == nil || w.isClosed() {
		return
	}
	w.handler(ribbon, err)
}

// begin registers a running reload unless the watcher is closed
func (w *DefinitionWatcher) begin() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return false
	}
	w.inflight.Add(1)
	return true
}

func (w *DefinitionWatcher) isClosed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}
