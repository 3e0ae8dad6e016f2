package engineconfig

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce is the quiet period after the last write before the file is reloaded.
const debounce = 100 * time.Millisecond

// Watcher reloads a config file whenever it changes on disk.
// Valid configs arrive on Configs; load and validation failures arrive on Errors
// and the previous config stays in effect.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	Configs chan Config
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// Watch starts watching the directory that holds path. The file does not need to exist yet.
func Watch(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}
	watcher := &Watcher{
		path:    filepath.Clean(path),
		watcher: w,
		Configs: make(chan Config, 4),
		Errors:  make(chan error, 4),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher. Configs and Errors are closed once the loop exits.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Configs)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
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
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			cfg, err := Load(w.path)
			if err != nil {
				w.send(nil, err)
				continue
			}
			w.send(&cfg, nil)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(nil, err)
		case <-w.closeCh:
			return
		}
	}
}

// send never blocks the watch loop; a slow consumer loses intermediate reloads.
func (w *Watcher) send(cfg *Config, err error) {
	if cfg != nil {
		select {
		case w.Configs <- *cfg:
		case <-w.closeCh:
		default:
		}
		return
	}
	select {
	case w.Errors <- err:
	case <-w.closeCh:
	default:
	}
}
