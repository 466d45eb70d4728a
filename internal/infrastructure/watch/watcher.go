package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/reliefpage/internal/domain/page"
	"github.com/alexisbeaulieu97/reliefpage/internal/ports"
)

// DefaultDebounce coalesces the burst of events editors emit on save.
const DefaultDebounce = 250 * time.Millisecond

// Reload is delivered after the content file settles. Exactly one of Page or
// Err is set.
type Reload struct {
	Path string
	Page *page.Page
	Err  error
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger ports.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// Watcher reloads a content file whenever it changes on disk.
//
// The parent directory is watched rather than the file itself so that editors
// which save by rename keep triggering reloads.
type Watcher struct {
	path     string
	loader   ports.ContentLoader
	onReload func(Reload)
	logger   ports.Logger
	debounce time.Duration

	mu       sync.Mutex
	fs       *fsnotify.Watcher
	running  bool
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
}

// New creates a watcher for path. onReload is called from the watcher
// goroutine.
func New(path string, loader ports.ContentLoader, onReload func(Reload), opts ...Option) (*Watcher, error) {
	if path == "" {
		return nil, errors.New("watch: content path is required")
	}
	if loader == nil || onReload == nil {
		return nil, errors.New("watch: loader and reload callback are required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve %s: %w", path, err)
	}

	w := &Watcher{
		path:     abs,
		loader:   loader,
		onReload: onReload,
		debounce: DefaultDebounce,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Start begins watching. It does not block; the loop runs until ctx is
// cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: create watcher: %w", err)
	}
	dir := filepath.Dir(w.path)
	if err := fs.Add(dir); err != nil {
		_ = fs.Close()
		return fmt.Errorf("watch: add %s: %w", dir, err)
	}

	w.fs = fs
	w.running = true
	w.logInfo(ctx, "watching content file", "path", w.path)

	go w.run(ctx)
	return nil
}

// Stop ends the watch loop and waits for it to exit. Safe to call more than
// once and before Start.
func (w *Watcher) Stop() {
	w.mu.Lock()
	running := w.running
	w.mu.Unlock()

	w.stopOnce.Do(func() { close(w.stopCh) })
	if running {
		<-w.doneCh
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)
	defer func() {
		if err := w.fs.Close(); err != nil {
			w.logError(ctx, "closing content watcher", err)
		}
	}()

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
			return
		case <-w.stopCh:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			w.logDebug(ctx, "content file event", "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Stop()
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logError(ctx, "content watcher error", err)
		case <-fire:
			fire = nil
			w.reload(ctx)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

func (w *Watcher) reload(ctx context.Context) {
	p, err := w.loader.Load(ctx, w.path)
	if err != nil {
		w.logWarn(ctx, "content reload rejected", "path", w.path, "error", err)
		w.onReload(Reload{Path: w.path, Err: err})
		return
	}
	w.logInfo(ctx, "content reloaded", "path", w.path)
	w.onReload(Reload{Path: w.path, Page: p})
}

func (w *Watcher) logDebug(ctx context.Context, msg string, fields ...interface{}) {
	if w.logger != nil {
		w.logger.Debug(ctx, msg, fields...)
	}
}

func (w *Watcher) logInfo(ctx context.Context, msg string, fields ...interface{}) {
	if w.logger != nil {
		w.logger.Info(ctx, msg, fields...)
	}
}

func (w *Watcher) logWarn(ctx context.Context, msg string, fields ...interface{}) {
	if w.logger != nil {
		w.logger.Warn(ctx, msg, fields...)
	}
}

func (w *Watcher) logError(ctx context.Context, msg string, err error) {
	if w.logger != nil {
		w.logger.Error(ctx, msg, "error", err)
	}
}
