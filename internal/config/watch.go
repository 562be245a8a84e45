package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Reload carries the result of re-reading a watched config file.
type Reload struct {
	Config *Config
	Err    error
}

// Watcher re-reads a config file whenever it changes. The directory is
// watched rather than the file so editors that replace the file on save
// keep working.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	Reloads chan Reload
	closeCh chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

const reloadDebounce = 100 * time.Millisecond

func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		path:    abs,
		watcher: w,
		Reloads: make(chan Reload, 4),
		closeCh: make(chan struct{}),
	}
	watcher.wg.Add(1)
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Path() string { return w.path }

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		w.wg.Wait()
		close(w.Reloads)
	})
	return err
}

// run reloads once writes have settled for reloadDebounce, so a save that
// truncates and then writes is read only after the final write.
func (w *Watcher) run() {
	defer w.wg.Done()
	timer := time.NewTimer(reloadDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			timer.Reset(reloadDebounce)
		case <-timer.C:
			cfg, err := Load(w.path)
			w.send(Reload{Config: cfg, Err: err})
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(Reload{Err: err})
		case <-w.closeCh:
			return
		}
	}
}

// send drops the reload if nobody is listening and the buffer is full;
// a later write produces a fresh one.
func (w *Watcher) send(r Reload) {
	select {
	case w.Reloads <- r:
	case <-w.closeCh:
	default:
	}
}
