package content

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/xdestyn/termfolio/internal/logging"
)

// DefaultDebounce coalesces the bursts of events editors produce on save
const DefaultDebounce = 250 * time.Millisecond

// ReloadFunc receives the result of every reload. Exactly one of doc and
// err is non-nil.
type ReloadFunc func(doc *Document, err error)

// Watcher reloads a content directory whenever content.yaml or a note
// changes.
type Watcher struct {
	dir      string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onReload ReloadFunc
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewWatcher watches dir and dir/notes. Nothing is reported until Start.
func NewWatcher(dir string, debounce time.Duration, onReload ReloadFunc) (*Watcher, error) {
	if dir == "" {
		return nil, fmt.Errorf("content watcher needs a directory")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	// notes/ is optional
	notes := filepath.Join(dir, NotesDir)
	if err := fsw.Add(notes); err != nil {
		logging.Debug("not watching notes directory", "path", notes, "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		dir:      dir,
		watcher:  fsw,
		debounce: debounce,
		onReload: onReload,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Start begins processing events in a goroutine
func (w *Watcher) Start() {
	w.wg.Add(1)
	go w.run()
}

// Close stops the watcher and waits for the event loop to exit
func (w *Watcher) Close() error {
	w.cancel()
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	// nil until a change arrives; each change restarts the wait
	var debounced <-chan time.Time

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !isContentFile(event.Name) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			logging.Debug("content change", "file", event.Name, "op", event.Op.String())
			debounced = time.After(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Warn("content watcher error", "error", err)

		case <-debounced:
			debounced = nil
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	doc, err := Load(w.dir)
	if err != nil {
		logging.Error("content reload failed", "dir", w.dir, "error", err)
		w.onReload(nil, err)
		return
	}
	logging.Info("content reloaded", "dir", w.dir)
	w.onReload(doc, nil)
}

func isContentFile(name string) bool {
	switch filepath.Ext(name) {
	case ".yaml", ".yml", ".md":
		return true
	}
	return false
}
