// Package watch re-runs a sync whenever agent files change on disk.
package watch

import (
	"context"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debounce is how long the watcher waits after the last file event before
// triggering, so editors that write multiple events per save cause one run.
const Debounce = 200 * time.Millisecond

// Watch observes dir for changes to .yaml files and calls fn after each
// debounced burst of events. It blocks until ctx is cancelled or the
// watcher fails.
func Watch(ctx context.Context, dir string, fn func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return err
	}

	var timer *time.Timer
	var fire <-chan time.Time

	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(Debounce)
			fire = timer.C
		} else {
			timer.Reset(Debounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case <-fire:
			fn()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(ev.Name, ".yaml") {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				schedule()
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
