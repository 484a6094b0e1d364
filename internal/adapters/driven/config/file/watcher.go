package file

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/wxnews/internal/core/ports/driven"
	"github.com/custodia-labs/wxnews/internal/logger"
)

// Watcher reloads a ConfigStore whenever its file is written, created or
// replaced. The parent directory is watched rather than the file itself so
// that editors which save via rename are picked up.
type Watcher struct {
	store    driven.ConfigStore
	fsw      *fsnotify.Watcher
	onReload func(error)
}

// NewWatcher creates a watcher for store. onReload is optional and is
// called after every reload attempt with its result.
func NewWatcher(store driven.ConfigStore, onReload func(error)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(store.Path())
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	return &Watcher{
		store:    store,
		fsw:      fsw,
		onReload: onReload,
	}, nil
}

// Run processes file events until ctx is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	target := filepath.Clean(w.store.Path())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			err := w.store.Load()
			if err != nil {
				logger.Warn("config reload failed: %v", err)
			} else {
				logger.Debug("config reloaded from %s", target)
			}
			if w.onReload != nil {
				w.onReload(err)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher error: %v", err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
