package ingest

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches the dataset file and invokes a reload callback when
// it is rewritten. Editors and sync tools fire several Write events in
// a row, so events are deduplicated by mod time.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	lastMod time.Time
	mu      sync.Mutex
}

// NewWatcher creates a watcher for the dataset file at path. The
// containing directory is watched so replace-by-rename is seen too.
func NewWatcher(path string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	return &Watcher{
		path:    path,
		watcher: watcher,
	}, nil
}

// Watch blocks, invoking onChange after each rewrite of the dataset
// file. It returns when the watcher is closed or fails.
func (w *Watcher) Watch(onChange func()) error {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			info, err := os.Stat(event.Name)
			if err != nil {
				continue
			}

			w.mu.Lock()
			changed := info.ModTime().After(w.lastMod)
			if changed {
				w.lastMod = info.ModTime()
			}
			w.mu.Unlock()

			if changed {
				onChange()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

// Close stops the watcher
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
