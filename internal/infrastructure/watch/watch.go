// Package watch reports changes to individual files on disk.
package watch

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// File watches a single file and signals on Changes whenever it is
// written, created or renamed into place. The parent directory is watched
// so editors that replace the file atomically are still seen.
type File struct {
	path    string
	logger  *slog.Logger
	watcher *fsnotify.Watcher
	changes chan struct{}
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// NewFile starts watching path. Call Close to stop.
func NewFile(path string, logger *slog.Logger) (*File, error) {
	if logger == nil {
		logger = slog.Default()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	f := &File{
		path:    abs,
		logger:  logger.With("component", "watch", "path", abs),
		watcher: watcher,
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	f.wg.Add(1)
	go f.run()
	return f, nil
}

// Changes delivers a value after the file changes. Bursts of events are
// coalesced; a receiver sees at most one pending signal.
func (f *File) Changes() <-chan struct{} {
	return f.changes
}

// Path returns the absolute path being watched.
func (f *File) Path() string {
	return f.path
}

// Close stops the watcher and waits for its goroutine to exit.
func (f *File) Close() error {
	var err error
	f.once.Do(func() {
		close(f.done)
		err = f.watcher.Close()
		f.wg.Wait()
	})
	return err
}

func (f *File) run() {
	defer f.wg.Done()
	for {
		select {
		case <-f.done:
			return
		case event, ok := <-f.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != f.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			f.logger.Debug("file changed", "op", event.Op.String())
			select {
			case f.changes <- struct{}{}:
			default:
			}
		case err, ok := <-f.watcher.Errors:
			if !ok {
				return
			}
			f.logger.Error("file watcher error", "error", err)
		}
	}
}
