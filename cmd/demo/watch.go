package main

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchScript watches the directory holding path and emits the file name
// whenever the script changes, debounced against editor double-writes.
func watchScript(path string) (<-chan string, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	events := make(chan string, 1)
	go func() {
		var last time.Time
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				now := time.Now()
				if now.Sub(last) < 100*time.Millisecond {
					continue
				}
				last = now
				select {
				case events <- event.Name:
				default:
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return events, nil
}
