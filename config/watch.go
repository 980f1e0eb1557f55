package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/s-hama/sigma-js-primes/store"
)

// DefaultDebounce is how long the file must stay quiet before a reload.
const DefaultDebounce = 200 * time.Millisecond

// ReloadFunc observes every reload attempt: the settings in effect afterwards
// and the error, if the reload was rejected.
type ReloadFunc func(store.Settings, error)

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) { w.debounce = d }
}

// WithOverrides applies cfg on top of every reload, so command-line flags keep
// precedence over the file.
func WithOverrides(cfg store.Config) WatchOption {
	return func(w *Watcher) { w.overrides = cfg }
}

// OnReload registers fn to be called after each reload attempt.
func OnReload(fn ReloadFunc) WatchOption {
	return func(w *Watcher) { w.onReload = fn }
}

// Watcher re-applies a configuration file to a store whenever it changes.
type Watcher struct {
	path      string
	store     *store.Store
	logger    *zap.Logger
	fs        *fsnotify.Watcher
	debounce  time.Duration
	overrides store.Config
	onReload  ReloadFunc
}

// NewWatcher starts watching the directory holding path. Editors often replace
// files instead of writing them in place, so the directory is watched and
// events are filtered by name.
func NewWatcher(path string, st *store.Store, logger *zap.Logger, opts ...WatchOption) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &Watcher{
		path:     filepath.Clean(path),
		store:    st,
		logger:   logger.With(zap.String("component", "config-watcher")),
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		_ = fw.Close()

		return nil, fmt.Errorf("config: watch %s: %w", filepath.Dir(w.path), err)
	}
	w.fs = fw

	return w, nil
}

// Run processes file events until ctx is done, then releases the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fs.Close()

	w.logger.Info("watching configuration", zap.String("path", w.path))

	interval := w.debounce / 4
	if interval < time.Millisecond {
		interval = time.Millisecond
	}
	tick := time.NewTicker(interval)
	defer tick.Stop()

	var lastEvent time.Time
	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("watcher stopped")

			return nil

		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			w.logger.Debug("configuration event", zap.String("op", ev.Op.String()))
			lastEvent = time.Now()

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", zap.Error(err))

		case now := <-tick.C:
			if lastEvent.IsZero() || now.Sub(lastEvent) < w.debounce {
				continue
			}
			lastEvent = time.Time{}
			w.reload()
		}
	}
}

// reload re-reads the file and applies it with the overrides on top.
func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err == nil {
		err = w.store.Reconfigure(store.WithConfig(cfg), store.WithConfig(w.overrides))
	}

	settings := w.store.Settings()
	if err != nil {
		w.logger.Error("configuration rejected", zap.Error(err))
	} else {
		w.logger.Info("configuration applied",
			zap.Int64("min_bound", settings.MinBound),
			zap.Int64("max_bound", settings.MaxBound),
			zap.Stringer("algorithm", settings.Algorithm),
			zap.Int("primes", w.store.Len()),
		)
	}
	if w.onReload != nil {
		w.onReload(settings, err)
	}
}

// Watch is NewWatcher followed by Run.
func Watch(ctx context.Context, path string, st *store.Store, logger *zap.Logger, opts ...WatchOption) error {
	w, err := NewWatcher(path, st, logger, opts...)
	if err != nil {
		return err
	}

	return w.Run(ctx)
}
