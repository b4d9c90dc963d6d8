package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay is how long the watcher waits after the last write before
// reading the file, so editors that truncate then write are read once.
const reloadDelay = 75 * time.Millisecond

// Reload carries the result of re-reading a watched config file.
type Reload struct {
	Path   string
	Config CrossingConfig
	Err    error
}

// Watcher re-reads a config file whenever it changes on disk.
// The parent directory is watched so editors that replace the file by
// rename keep being tracked.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	Updates chan Reload
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher starts watching path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: cannot start watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("config: cannot watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:    abs,
		watcher: fw,
		Updates: make(chan Reload, 4),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher. Updates is closed once the loop exits.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.Updates)

	timer := time.NewTimer(reloadDelay)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(reloadDelay)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(Reload{Path: w.path, Err: fmt.Errorf("config: watcher: %w", err)})

		case <-timer.C:
			cfg, err := LoadFile(w.path)
			w.send(Reload{Path: w.path, Config: cfg, Err: err})

		case <-w.closeCh:
			return
		}
	}
}

// send blocks until the update is taken or the watcher is closed.
func (w *Watcher) send(r Reload) {
	select {
	case w.Updates <- r:
	case <-w.closeCh:
	}
}
