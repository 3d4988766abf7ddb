package content

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultDebounce = 250 * time.Millisecond

// Reloader watches a content directory and swaps in a freshly loaded
// catalog after edits settle. A document that fails to load leaves the
// previous catalog in place.
type Reloader struct {
	dir      string
	target   *Swappable
	logger   *zap.Logger
	debounce time.Duration
	onReload func(*Catalog)
}

type ReloaderOption func(*Reloader)

// WithDebounce overrides how long edits must settle before reloading.
func WithDebounce(d time.Duration) ReloaderOption {
	return func(r *Reloader) {
		if d > 0 {
			r.debounce = d
		}
	}
}

// WithReloadHook registers a callback run after every successful swap.
func WithReloadHook(fn func(*Catalog)) ReloaderOption {
	return func(r *Reloader) {
		r.onReload = fn
	}
}

func NewReloader(dir string, target *Swappable, logger *zap.Logger, opts ...ReloaderOption) *Reloader {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Reloader{
		dir:      dir,
		target:   target,
		logger:   logger,
		debounce: defaultDebounce,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run blocks until ctx is cancelled.
func (r *Reloader) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(r.dir); err != nil {
		return fmt.Errorf("watch %s: %w", r.dir, err)
	}
	r.logger.Info("watching content", zap.String("dir", r.dir))

	var (
		settle  *time.Timer
		settleC <-chan time.Time
	)
	defer func() {
		if settle != nil {
			settle.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			r.logger.Debug("content changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			if settle == nil {
				settle = time.NewTimer(r.debounce)
			} else {
				if !settle.Stop() {
					select {
					case <-settle.C:
					default:
					}
				}
				settle.Reset(r.debounce)
			}
			settleC = settle.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.logger.Warn("content watcher error", zap.Error(err))

		case <-settleC:
			settleC = nil
			r.reload()
		}
	}
}

func (r *Reloader) reload() {
	catalog, err := LoadDir(r.dir)
	if err != nil {
		r.logger.Error("content reload failed, keeping previous catalog", zap.Error(err))
		return
	}
	r.target.Swap(catalog)
	r.logger.Info("content reloaded", zap.Strings("events", catalog.Slugs()))
	if r.onReload != nil {
		r.onReload(catalog)
	}
}

func relevant(event fsnotify.Event) bool {
	if !isYAML(filepath.Base(event.Name)) {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}
