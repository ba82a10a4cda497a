package level

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a stage file whenever it changes on disk. Freshly parsed
// sets arrive on Sets; a file that fails to parse is reported on Errors and
// the running set stays live. Both channels drop stale values instead of
// blocking, so the game loop can poll them with a non-blocking receive.
type Watcher struct {
	watcher *fsnotify.Watcher
	Sets    chan *Set
	Errors  chan error
	path    string
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher starts watching the given stage file. The parent directory is
// registered rather than the file itself so editors that save by rename keep
// triggering reloads.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("level: watch: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("level: watch %s: %w", path, err)
	}

	w := &Watcher{
		watcher: fw,
		Sets:    make(chan *Set, 1),
		Errors:  make(chan error, 1),
		path:    filepath.Clean(path),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	// Saves arrive as bursts (truncate, write, rename), and reading between
	// them sees a half-written file. Reload only after the burst goes quiet.
	var reload <-chan time.Time
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
			reload = time.After(100 * time.Millisecond)
		case <-reload:
			reload = nil
			set, err := Load(w.path)
			if err != nil {
				w.report(err)
				continue
			}
			w.deliver(set)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.report(err)
		case <-w.closeCh:
			return
		}
	}
}

// deliver replaces any undelivered set: the consumer only ever wants the
// newest one.
func (w *Watcher) deliver(set *Set) {
	for {
		select {
		case w.Sets <- set:
			return
		default:
			select {
			case <-w.Sets:
			default:
			}
		}
	}
}

func (w *Watcher) report(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
