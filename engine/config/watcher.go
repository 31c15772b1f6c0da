package config

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/orbitview/engine/core"
)

// Watcher reloads a config file whenever it changes on disk. Parsed configs are
// delivered on Updates and failures on Errors; nothing is applied here, the
// owner applies updates on its own goroutine.
type Watcher struct {
	path string

	mutex    sync.Mutex
	isClosed bool

	fsnotify *fsnotify.Watcher
	done     chan struct{}
	stopped  chan struct{}
	updates  chan *Config
	errors   chan error
}

func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory: editors often replace the file instead of writing it.
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		fsnotify: fsWatch,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
		updates:  make(chan *Config, 1),
		errors:   make(chan error, 1),
	}
	go w.start()
	return w, nil
}

func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops watching. Updates and Errors are closed once the loop exits.
func (w *Watcher) Close() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.isClosed {
		return core.ErrWatcherClosed
	}
	w.isClosed = true
	close(w.done)
	<-w.stopped
	return nil
}

func (w *Watcher) start() {
	defer func() {
		w.fsnotify.Close()
		close(w.updates)
		close(w.errors)
		close(w.stopped)
	}()

	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			// Handle create or modify events
			if !e.Has(fsnotify.Create) && !e.Has(fsnotify.Write) {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				core.LogWarn("config reload failed: %s", err)
				w.send(nil, err)
				continue
			}
			core.LogDebug("config %s reloaded", w.path)
			w.send(cfg, nil)

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError(err.Error())
			w.send(nil, err)

		case <-w.done:
			return
		}
	}
}

// send keeps only the most recent update or error when the owner lags behind.
func (w *Watcher) send(cfg *Config, err error) {
	if err != nil {
		select {
		case <-w.errors:
		default:
		}
		select {
		case w.errors <- err:
		case <-w.done:
		}
		return
	}
	select {
	case <-w.updates:
	default:
	}
	select {
	case w.updates <- cfg:
	case <-w.done:
	}
}
