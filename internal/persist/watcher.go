package persist

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce coalesces the burst of file events a single SQLite commit
// produces (main file plus WAL journal) into one reconciliation.
const defaultDebounce = 200 * time.Millisecond

// Watcher observes the database file for writes made by other processes and
// triggers the adapter's reconciliation. It is the cross-tab listener of
// the comparison state: an external write replaces the selection wholesale.
type Watcher struct {
	adapter  *Adapter
	watcher  *fsnotify.Watcher
	debounce time.Duration
	logger   *slog.Logger
	doneCh   chan struct{}
}

// NewWatcher creates a watcher for the adapter's database file.
func NewWatcher(adapter *Adapter, logger *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		adapter:  adapter,
		watcher:  fw,
		debounce: defaultDebounce,
		logger:   logger,
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching and returns immediately; the event loop runs on its
// own goroutine until the context is canceled or Stop is called.
//
// The watch is registered on the database's directory, not the file itself:
// SQLite checkpoints can replace files, and directory watches survive that.
func (w *Watcher) Start(ctx context.Context) error {
	dbDir := filepath.Dir(w.adapter.db.Path())
	if err := w.watcher.Add(dbDir); err != nil {
		return err
	}
	w.logger.Debug("watching database directory for external changes", "dir", dbDir)

	go w.run(ctx)
	return nil
}

// Stop closes the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() {
	_ = w.watcher.Close()
	<-w.doneCh
}

// run is the event loop: coalesce relevant events behind a debounce timer,
// then reconcile once the burst settles.
func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerCh = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerCh:
			timer = nil
			timerCh = nil
			if w.adapter.reconcile(ctx) {
				w.logger.Debug("selection reconciled from external change")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", "error", err)
		}
	}
}

// relevant reports whether the event concerns the database file or one of
// its SQLite journals (-wal, -journal, -shm).
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	return strings.HasPrefix(event.Name, w.adapter.db.Path())
}
