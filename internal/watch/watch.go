// Package watch reloads a graph file whenever it changes on disk.
package watch

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/katalvlaran/pathtrace/graph"
)

// ErrNoCallback is returned by Watch when onChange is nil.
var ErrNoCallback = errors.New("watch: nil onChange callback")

// Watch calls onChange with the freshly decoded graph every time the file at
// path is written or re-created. A file that fails to decode is logged and
// skipped; the previous graph stays current for the caller.
//
// The parent directory is watched rather than the file itself so that
// editors which save by rename keep being followed. Call the returned stop
// function to release the watcher; it is safe to call more than once.
func Watch(path string, log *slog.Logger, onChange func(graph.Graph)) (stop func(), err error) {
	if onChange == nil {
		return nil, ErrNoCallback
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("graph watcher: %w", err)
	}
	if err = w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("graph watcher add %s: %w", filepath.Dir(abs), err)
	}

	done := make(chan struct{})
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				g, err := graph.Load(abs)
				if err != nil {
					log.Warn("graph reload failed", "path", abs, "error", err)
					continue
				}
				log.Info("graph reloaded", "path", abs, "nodes", len(g.Nodes), "edges", len(g.Edges))
				onChange(g)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("graph watcher error", "error", err)
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }, nil
}
