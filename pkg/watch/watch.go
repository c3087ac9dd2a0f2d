// Package watch reports changes to a single file, batching the bursts of
// events that editors produce on save into one notification.
package watch

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultQuietPeriod is how long a file must stay unchanged before a
// change is reported.
const DefaultQuietPeriod = 150 * time.Millisecond

// Event reports that the watched file changed.
type Event struct {
	Path string
	Time time.Time
}

// Watcher watches one file. It watches the file's directory so that
// editors replacing the file by rename are still seen.
type Watcher struct {
	path   string
	quiet  time.Duration
	logger *log.Logger

	fs     *fsnotify.Watcher
	events chan Event
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithQuietPeriod sets the debounce interval.
func WithQuietPeriod(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.quiet = d
		}
	}
}

// WithLogger sets the logger for watcher errors.
func WithLogger(l *log.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// New starts watching path.
func New(path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:   abs,
		quiet:  DefaultQuietPeriod,
		logger: log.New(io.Discard),
		fs:     fs,
		events: make(chan Event, 1),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Events returns the channel of debounced changes. It is closed when Run
// returns.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Run forwards changes until ctx is done or the watcher fails, then
// releases the underlying watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fs.Close()

	changes := make(chan string)
	done := make(chan struct{})
	go func() {
		debounce(ctx, changes, w.events, w.quiet)
		close(done)
	}()
	defer func() {
		close(changes)
		<-done
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			w.logger.Debug("file event", "path", ev.Name, "op", ev.Op.String())
			select {
			case changes <- ev.Name:
			case <-ctx.Done():
				return nil
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "err", err)
		}
	}
}

// debounce sends one Event on out after in has been quiet for the given
// period. Pending changes are flushed when in closes; out is closed on
// return.
func debounce(ctx context.Context, in <-chan string, out chan<- Event, quiet time.Duration) {
	defer close(out)

	timer := time.NewTimer(quiet)
	timer.Stop()
	var pending string

	send := func() {
		if pending == "" {
			return
		}
		select {
		case out <- Event{Path: pending, Time: time.Now()}:
		case <-ctx.Done():
		}
		pending = ""
	}

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case path, ok := <-in:
			if !ok {
				timer.Stop()
				send()
				return
			}
			pending = path
			timer.Reset(quiet)
		case <-timer.C:
			send()
		}
	}
}
