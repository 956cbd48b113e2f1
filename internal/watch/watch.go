// Package watch re-runs a callback whenever a file changes on disk.
package watch

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last event before a change is reported.
const DefaultDebounce = 200 * time.Millisecond

// ErrClosed is returned by Run when the underlying notifier shuts down unexpectedly.
var ErrClosed = errors.New("watch: notifier closed")

// Options configure a Watcher. Zero values are valid.
type Options struct {
	Debounce time.Duration
	// OnError receives notifier errors and errors returned by the change callback.
	OnError func(error)
}

// Watcher reports changes to a single file.
type Watcher struct {
	notifier *fsnotify.Watcher
	path     string
	base     string
	debounce time.Duration
	onError  func(error)
}

// New starts observing path. The file's directory is watched rather than the
// file itself so editors that save by renaming are still seen.
func New(path string, opts Options) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	notifier, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := notifier.Add(filepath.Dir(abs)); err != nil {
		notifier.Close()
		return nil, err
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		notifier: notifier,
		path:     abs,
		base:     filepath.Base(abs),
		debounce: debounce,
		onError:  opts.OnError,
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run calls onChange after every debounced burst of writes to the file and
// blocks until ctx is done. It always releases the notifier before returning.
func (w *Watcher) Run(ctx context.Context, onChange func() error) error {
	defer w.notifier.Close()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.notifier.Events:
			if !ok {
				return ErrClosed
			}
			if !w.relevant(event) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case <-fire:
			timer, fire = nil, nil
			if err := onChange(); err != nil {
				w.report(err)
			}

		case err, ok := <-w.notifier.Errors:
			if !ok {
				return ErrClosed
			}
			w.report(err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Base(event.Name) != w.base {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

func (w *Watcher) report(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}
