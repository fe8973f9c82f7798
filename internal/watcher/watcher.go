// Package watcher reports external changes to a single file, so an open
// editing session can warn before overwriting someone else's edit.
package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"goline/internal/clock"
)

// Event records one external change to the watched file.
type Event struct {
	Path string
	At   time.Time
}

// Watcher emits an Event when the watched file is written, created, or
// renamed from outside. It watches the containing directory rather than the
// file itself: editors that replace files by rename would otherwise drop
// the watch after the first save.
type Watcher struct {
	path     string
	clk      clock.Clock
	fsw      *fsnotify.Watcher
	debounce time.Duration

	events   chan Event
	errors   chan error
	stopCh   chan struct{}
	stopOnce sync.Once
}

// New builds a watcher for the file at path.
func New(path string, clk clock.Clock) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		path:     abs,
		clk:      clk,
		fsw:      fsw,
		debounce: 100 * time.Millisecond,
		events:   make(chan Event, 10),
		errors:   make(chan error, 2),
		stopCh:   make(chan struct{}),
	}, nil
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() error {
	if err := w.fsw.Add(filepath.Dir(w.path)); err != nil {
		w.fsw.Close()
		return err
	}
	go w.loop()
	return nil
}

func (w *Watcher) loop() {
	var pending <-chan time.Time
	for {
		select {
		case <-w.stopCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			// Collapse a burst of events into one notification.
			if pending == nil {
				pending = w.clk.After(w.debounce)
			}
		case <-pending:
			pending = nil
			select {
			case w.events <- Event{Path: w.path, At: w.clk.Now()}:
			default:
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

// Events returns the channel of debounced change notifications.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the channel of errors encountered while watching.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Stop ends watching and releases the underlying handle. Safe to call more
// than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.fsw.Close()
	})
}
