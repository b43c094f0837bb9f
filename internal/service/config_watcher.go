package service

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/fnlab/domainfn/pkg/log"
)

// ConfigWatcher monitors the TOML config file and delivers reloaded
// configurations to a callback. Writes are debounced so editors that
// truncate-then-write trigger one reload.
type ConfigWatcher struct {
	path     string
	base     Config
	logger   log.Logger
	onChange func(Config)

	mu       sync.Mutex
	debounce *time.Timer
}

// NewConfigWatcher creates a watcher for path. base supplies the
// values for keys absent from the file; onChange receives every
// successfully reloaded configuration.
func NewConfigWatcher(path string, base Config, logger log.Logger, onChange func(Config)) *ConfigWatcher {
	return &ConfigWatcher{path: path, base: base, logger: logger, onChange: onChange}
}

// Run watches until ctx is cancelled. The parent directory is watched
// rather than the file itself so atomic-rename saves keep working.
func (w *ConfigWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	defer w.stopDebounce()

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload(100 * time.Millisecond)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("config watcher error", log.Err(err))
		}
	}
}

func (w *ConfigWatcher) scheduleReload(delay time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(delay, w.reload)
}

// stopDebounce cancels a pending reload so nothing fires after Run
// has returned.
func (w *ConfigWatcher) stopDebounce() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
		w.debounce = nil
	}
}

func (w *ConfigWatcher) reload() {
	cfg := w.base
	if err := ApplyFile(&cfg, w.path); err != nil {
		w.logger.Error("config reload failed", log.Err(err), log.String("path", w.path))
		return
	}
	if err := cfg.Validate(); err != nil {
		w.logger.Error("reloaded config invalid", log.Err(err), log.String("path", w.path))
		return
	}
	w.onChange(cfg)
}
