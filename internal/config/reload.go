package config

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Reloader periodically re-reads the config file and pushes the countdown
// list into the store. A failed read or decode keeps the previous snapshot;
// reload is never fatal. When a file watcher can be established, writes to
// the config file also trigger an immediate reload between ticks.
type Reloader struct {
	path   string
	store  *Store
	period time.Duration
}

// NewReloader creates a reloader for the given config path. A non-positive
// period falls back to one second.
func NewReloader(path string, store *Store, period time.Duration) *Reloader {
	if period <= 0 {
		period = time.Second
	}
	return &Reloader{path: path, store: store, period: period}
}

// Run blocks until ctx is cancelled, reloading on every period tick and on
// config file write events.
func (r *Reloader) Run(ctx context.Context) {
	var events chan fsnotify.Event

	if watcher, err := fsnotify.NewWatcher(); err == nil {
		// Watch the directory, not the file: editors replace the file on
		// save and a direct watch breaks after the first rename.
		if err := watcher.Add(filepath.Dir(r.path)); err == nil {
			events = make(chan fsnotify.Event, 1)
			go r.forwardWrites(ctx, watcher, events)
			defer watcher.Close()
		} else {
			watcher.Close()
		}
	}

	ticker := time.NewTicker(r.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.reload()
		case <-events:
			r.reload()
		}
	}
}

// forwardWrites filters watcher events down to writes of the config file.
func (r *Reloader) forwardWrites(ctx context.Context, watcher *fsnotify.Watcher, out chan<- fsnotify.Event) {
	base := filepath.Base(r.path)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			select {
			case out <- event:
			default:
			}
		case <-watcher.Errors:
			// Keep watching; the periodic tick still covers reloads.
		}
	}
}

// reload re-reads the file and replaces the store contents. On failure the
// previous snapshot stays in place.
func (r *Reloader) reload() {
	f, err := Load(r.path)
	if err != nil {
		log.Printf("[reload] keeping previous countdown list: %v", err)
		return
	}
	r.store.Replace(f.Countdown)
}
