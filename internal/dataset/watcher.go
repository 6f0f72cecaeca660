package dataset

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the match CSV into the store whenever the file is
// rewritten. A failed reload keeps the previous snapshot.
type Watcher struct {
	store    *Store
	path     string
	debounce time.Duration
}

// NewWatcher creates a watcher for the given match table path.
func NewWatcher(store *Store, path string) *Watcher {
	return &Watcher{
		store:    store,
		path:     path,
		debounce: 500 * time.Millisecond,
	}
}

// Run watches the file until the context is cancelled. Editors and
// exporters typically emit several write events per save, so reloads
// are debounced.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.path); err != nil {
		return fmt.Errorf("watch %s: %w", w.path, err)
	}

	log.Printf("Watching %s for dataset changes", w.path)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}
		case err := <-watcher.Errors:
			log.Printf("File watcher error: %v", err)
		case <-timerC:
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	repo, err := LoadCSV(w.path)
	if err != nil {
		log.Printf("Dataset reload failed, keeping previous snapshot: %v", err)
		return
	}
	w.store.Replace(repo, nil)
	log.Printf("Dataset reloaded: %d matches", repo.Len())
}
