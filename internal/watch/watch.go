// Package watch re-runs the benchmark when a module file changes on
// disk. Useful while iterating on an interpreted module; native plugins
// cannot be re-opened by a running process, so a changed .so still
// requires a restart.
package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher monitors module files and triggers a re-run after each burst
// of changes settles.
type Watcher struct {
	log      *zap.Logger
	debounce time.Duration
	paths    []string
	rerun    func() error
}

// New returns a Watcher over the given module paths. rerun is called
// once per settled burst of file events.
func New(log *zap.Logger, debounce time.Duration, paths []string, rerun func() error) *Watcher {
	return &Watcher{log: log, debounce: debounce, paths: paths, rerun: rerun}
}

// Run blocks, re-running the benchmark on changes, until ctx is
// cancelled. A failing re-run is logged and the watch continues; only
// watcher breakage ends the loop early.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer fw.Close()

	for _, path := range w.paths {
		if err := fw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}
	w.log.Info("watching modules", zap.Strings("paths", w.paths))

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			w.log.Debug("module changed", zap.String("path", ev.Name))
			if pending && !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)
			pending = true

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watcher error", zap.Error(err))

		case <-timer.C:
			pending = false
			if err := w.rerun(); err != nil {
				w.log.Error("re-run failed", zap.Error(err))
			}
		}
	}
}
