package assets

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/vrmath/engine/core"
)

// ConfigWatcher reports writes to individual files. It watches the parent
// directory of every file because editors usually replace files on save,
// which drops a watch placed on the file itself.
type ConfigWatcher struct {
	files map[string]struct{}
	dirs  map[string]int

	mutex sync.RWMutex

	done      chan struct{}
	closeOnce sync.Once
	fsnotify  *fsnotify.Watcher
	isClosed  bool
	events    chan string
	errors    chan error
}

func NewConfigWatcher() (*ConfigWatcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	cw := &ConfigWatcher{
		files:    make(map[string]struct{}),
		dirs:     make(map[string]int),
		fsnotify: fsWatch,
		events:   make(chan string, 8),
		errors:   make(chan error, 8),
		done:     make(chan struct{}),
	}
	go cw.start()
	return cw, nil
}

// Events delivers the cleaned path of a watched file each time it is
// created or written.
func (cw *ConfigWatcher) Events() <-chan string {
	return cw.events
}

func (cw *ConfigWatcher) Errors() <-chan error {
	return cw.errors
}

// Watch starts reporting changes to the named file.
func (cw *ConfigWatcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	cw.mutex.Lock()
	defer cw.mutex.Unlock()

	if cw.isClosed {
		return core.ErrWatcherClosed
	}
	if _, ok := cw.files[abs]; ok {
		return nil
	}
	dir := filepath.Dir(abs)
	if cw.dirs[dir] == 0 {
		if err := cw.fsnotify.Add(dir); err != nil {
			return err
		}
	}
	cw.dirs[dir]++
	cw.files[abs] = struct{}{}
	core.LogDebug("watching %s", abs)
	return nil
}

// Unwatch stops reporting changes to the named file.
func (cw *ConfigWatcher) Unwatch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	cw.mutex.Lock()
	defer cw.mutex.Unlock()

	if cw.isClosed {
		return core.ErrWatcherClosed
	}
	if _, ok := cw.files[abs]; !ok {
		return nil
	}
	delete(cw.files, abs)
	dir := filepath.Dir(abs)
	cw.dirs[dir]--
	if cw.dirs[dir] == 0 {
		delete(cw.dirs, dir)
		return cw.fsnotify.Remove(dir)
	}
	return nil
}

// Close stops the watcher and closes the event and error channels.
func (cw *ConfigWatcher) Close() error {
	var err error
	cw.closeOnce.Do(func() {
		cw.mutex.Lock()
		cw.isClosed = true
		cw.mutex.Unlock()
		err = cw.fsnotify.Close()
		close(cw.done)
	})
	return err
}

func (cw *ConfigWatcher) start() {
	defer close(cw.events)
	defer close(cw.errors)

	for {
		select {

		case e, ok := <-cw.fsnotify.Events:
			if !ok {
				return
			}
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			name := filepath.Clean(e.Name)
			if !cw.isWatched(name) {
				continue
			}
			select {
			case cw.events <- name:
			case <-cw.done:
				return
			}

		case e, ok := <-cw.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("%s", e)
			// Already logged; drop it if nobody is listening.
			select {
			case cw.errors <- e:
			default:
			}

		case <-cw.done:
			return
		}
	}
}

func (cw *ConfigWatcher) isWatched(name string) bool {
	cw.mutex.RLock()
	defer cw.mutex.RUnlock()

	_, ok := cw.files[name]
	return ok
}
