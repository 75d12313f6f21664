package catalog

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"projectpager/internal/domain"
)

// ReloadCallback is called after the catalog file changed and reloaded
// successfully.
type ReloadCallback func(projects []domain.Project)

// Watch starts an fsnotify watcher on the catalog file and reloads it on
// change until ctx is cancelled. Writes are debounced because editors often
// emit several events per save. Reload failures are logged and skipped; the
// previous catalog stays in effect.
func Watch(ctx context.Context, path string, cb ReloadCallback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Watch the directory, not the file: editors replace files on save and
	// the watch would be lost with the old inode.
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return err
	}
	target := filepath.Clean(path)

	log.Printf("watcher: started on %s", target)

	var reloadTimer *time.Timer
	var reloadCh <-chan time.Time

	scheduleReload := func() {
		if reloadTimer == nil {
			reloadTimer = time.NewTimer(200 * time.Millisecond)
			reloadCh = reloadTimer.C
		} else {
			reloadTimer.Reset(200 * time.Millisecond)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if reloadTimer != nil {
				reloadTimer.Stop()
			}
			log.Printf("watcher: stopped")
			return nil

		case <-reloadCh:
			store, err := Load(target)
			if err != nil {
				log.Printf("watcher: reload failed: %v", err)
				continue
			}
			log.Printf("watcher: catalog reloaded, %d projects", store.Len())
			if cb != nil {
				cb(store.Projects())
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				scheduleReload()
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("watcher: error: %v", err)
		}
	}
}
