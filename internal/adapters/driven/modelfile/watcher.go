package modelfile

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/floorcopy/internal/logger"
)

// DefaultDebounce batches the burst of events a single save produces.
const DefaultDebounce = 200 * time.Millisecond

// ChangeFunc receives a freshly parsed model after the file changed.
type ChangeFunc func(ctx context.Context, m *Model) error

// Watcher re-reads a model file whenever it is written.
// Parse and callback errors are logged and watching continues.
type Watcher struct {
	path     string
	onChange ChangeFunc
	debounce time.Duration
	watcher  *fsnotify.Watcher
}

// NewWatcher creates a watcher for path. The parent directory is watched
// so editors that save by renaming a temp file are still seen.
func NewWatcher(path string, onChange ChangeFunc) (*Watcher, error) {
	if _, err := FormatOf(path); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		onChange: onChange,
		debounce: DefaultDebounce,
		watcher:  fw,
	}, nil
}

// WithDebounce sets the quiet period before a reload.
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Path returns the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Run blocks until ctx is cancelled, reloading the file after each burst
// of writes. The underlying watcher is closed on return.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	logger.Debug("watching %s", w.path)
	for {
		select {
		case <-ctx.Done():
			logger.Debug("stopped watching %s", w.path)
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			logger.Debug("model file event: %s", event)
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch %s: %v", w.path, err)

		case <-timer.C:
			w.reload(ctx)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (w *Watcher) reload(ctx context.Context) {
	m, err := Load(w.path)
	if err != nil {
		logger.Warn("reload %s: %v", w.path, err)
		return
	}
	if err := w.onChange(ctx, m); err != nil {
		logger.Warn("apply %s: %v", w.path, err)
		return
	}
	logger.Info("reloaded %s", w.path)
}
