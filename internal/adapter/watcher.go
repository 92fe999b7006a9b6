package adapter

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	m "github.com/shunnNet/co/internal/model"
)

// Watcher delivers file change notifications for a project tree.
type Watcher interface {
	// Watch blocks until ctx is cancelled, calling onEvent for every add,
	// change or unlink of a file under base selected by includes/excludes.
	Watch(ctx context.Context, base m.Path, includes, excludes []string, onEvent func(m.FileEvent)) error
}

// LocalWatcher implements Watcher with fsnotify, registering every
// non-excluded directory below the base directory.
type LocalWatcher struct{}

// NewLocalWatcher constructs a LocalWatcher.
func NewLocalWatcher() *LocalWatcher {
	return &LocalWatcher{}
}

// Watch starts watching base and dispatches events until ctx is done.
func (w *LocalWatcher) Watch(ctx context.Context, base m.Path, includes, excludes []string, onEvent func(m.FileEvent)) error {
	root, err := filepath.Abs(string(base))
	if err != nil {
		return err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	defer func() {
		_ = fsw.Close()
	}()

	if err := w.addTree(fsw, root, root, excludes, nil); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}

			return fmt.Errorf("watch %s: %w", root, err)

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}

			w.dispatch(fsw, root, includes, excludes, ev, onEvent)
		}
	}
}

func (w *LocalWatcher) dispatch(fsw *fsnotify.Watcher, root string, includes, excludes []string, ev fsnotify.Event, onEvent func(m.FileEvent)) {
	path := filepath.Clean(ev.Name)

	switch {
	case ev.Has(fsnotify.Create):
		info, err := os.Stat(path)
		if err != nil {
			return
		}

		if info.IsDir() {
			// Files created together with the directory never produce their
			// own events, so report them while registering the subtree.
			_ = w.addTree(fsw, root, path, excludes, func(file string) {
				if selected(root, file, includes, excludes) {
					onEvent(m.FileEvent{Kind: m.EventAdd, Path: m.Path(file)})
				}
			})

			return
		}

		if selected(root, path, includes, excludes) {
			onEvent(m.FileEvent{Kind: m.EventAdd, Path: m.Path(path)})
		}

	case ev.Has(fsnotify.Write):
		if selected(root, path, includes, excludes) {
			onEvent(m.FileEvent{Kind: m.EventChange, Path: m.Path(path)})
		}

	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		if Included(root, path, includes) && !Excluded(root, path, excludes) {
			onEvent(m.FileEvent{Kind: m.EventUnlink, Path: m.Path(path)})
		}
	}
}

// addTree registers dir and all non-excluded subdirectories. When onFile is
// set it is called for every regular file found.
func (w *LocalWatcher) addTree(fsw *fsnotify.Watcher, root, dir string, excludes []string, onFile func(string)) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // unreadable entries are skipped
		}

		if d.IsDir() {
			if path != root && Excluded(root, path, excludes) {
				return filepath.SkipDir
			}

			if err := fsw.Add(path); err != nil {
				return fmt.Errorf("watch %s: %w", path, err)
			}

			return nil
		}

		if onFile != nil {
			onFile(path)
		}

		return nil
	})
}

func selected(root, path string, includes, excludes []string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}

	return Included(root, path, includes) && !Excluded(root, path, excludes)
}
