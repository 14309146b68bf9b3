package dataset

import (
	"context"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the dataset when the source file changes on disk, so a
// refreshed export from the upstream system shows up without a restart.
type Watcher struct {
	holder *Holder
}

// NewWatcher returns a watcher over the holder's dataset file.
func NewWatcher(holder *Holder) *Watcher {
	return &Watcher{holder: holder}
}

// Start watches the dataset's directory until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	target := filepath.Clean(w.holder.Path())
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case evt := <-watcher.Events:
				if filepath.Clean(evt.Name) != target {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if err := w.holder.Load(); err != nil {
					// Keep serving the previous table on a bad write.
					log.Printf("dataset reload failed: %v", err)
					continue
				}
				log.Printf("dataset reloaded: %s", target)
			case err := <-watcher.Errors:
				log.Printf("dataset watcher error: %v", err)
			}
		}
	}()

	return watcher.Add(filepath.Dir(target))
}
