package config

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a settings file whenever it changes on disk. Only the
// latest reload is kept; the frame loop picks it up between frames.
type Watcher struct {
	Changes <-chan *Settings

	watcher *fsnotify.Watcher
	path    string
	changes chan *Settings
	done    chan struct{}
}

// Watch watches the directory holding path so that editors which replace
// the file on save are still noticed.
func Watch(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create settings watcher: %w", err)
	}
	path = filepath.Clean(path)
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	changes := make(chan *Settings, 1)
	w := &Watcher{
		Changes: changes,
		watcher: fw,
		path:    path,
		changes: changes,
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			settings, err := LoadSettingsFrom(w.path)
			if err != nil {
				log.Printf("Failed to reload settings: %v", err)
				continue
			}
			// drop a stale reload the frame loop has not consumed yet
			select {
			case <-w.changes:
			default:
			}
			w.changes <- settings
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Settings watcher error: %v", err)
		}
	}
}

func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}
