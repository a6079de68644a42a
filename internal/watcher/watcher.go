// Package watcher reports changes to a single file using fsnotify.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce coalesces the burst of events a single save produces.
const DefaultDebounce = 150 * time.Millisecond

// ChangeType describes what happened to the watched file.
type ChangeType int

const (
	ChangeUpdated ChangeType = iota
	ChangeRemoved
)

func (c ChangeType) String() string {
	switch c {
	case ChangeUpdated:
		return "updated"
	case ChangeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Change is a debounced file event.
type Change struct {
	Path string
	Type ChangeType
}

// Watcher follows one file. The parent directory is watched so editors that
// save through rename are still picked up.
type Watcher struct {
	path     string
	debounce time.Duration
	log      logrus.FieldLogger
}

// New creates a watcher for path. A non-positive debounce uses DefaultDebounce.
func New(path string, debounce time.Duration, log logrus.FieldLogger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{path: abs, debounce: debounce, log: log}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Watch emits changes until ctx is cancelled, then closes the channel.
func (w *Watcher) Watch(ctx context.Context) (<-chan Change, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	out := make(chan Change)
	go func() {
		defer close(out)
		defer fw.Close()

		var (
			pending *Change
			fire    <-chan time.Time
		)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-fw.Events:
				if !ok {
					return
				}
				if change := w.handleFsEvent(ev); change != nil {
					pending = change
					fire = time.After(w.debounce)
				}
			case <-fire:
				select {
				case out <- *pending:
				case <-ctx.Done():
					return
				}
				pending, fire = nil, nil
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				w.log.WithError(err).Warn("watch error")
			}
		}
	}()
	return out, nil
}

// handleFsEvent maps an fsnotify event on the watched file to a Change.
// Events on other files and chmod-only events return nil.
func (w *Watcher) handleFsEvent(ev fsnotify.Event) *Change {
	if filepath.Clean(ev.Name) != w.path {
		return nil
	}
	switch {
	case ev.Has(fsnotify.Create), ev.Has(fsnotify.Write):
		return &Change{Path: w.path, Type: ChangeUpdated}
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		return &Change{Path: w.path, Type: ChangeRemoved}
	default:
		return nil
	}
}
