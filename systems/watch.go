package systems

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// LevelWatcher reports the index of every level file edited on disk.
type LevelWatcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewLevelWatcher(dirs ...string) (*LevelWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &LevelWatcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *LevelWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Poll returns the next changed level index without blocking.
func (w *LevelWatcher) Poll() (string, bool) {
	select {
	case index := <-w.Events:
		return index, true
	default:
		return "", false
	}
}

func (w *LevelWatcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			index, ok := LevelIndexOf(event.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if t, ok := last[index]; ok && now.Sub(t) < 100*time.Millisecond {
				continue
			}
			last[index] = now
			select {
			case w.Events <- index:
			case <-w.closeCh:
				return
			default:
				// Dropped; a reload is already pending.
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// LevelIndexOf maps a level file path to its index.
func LevelIndexOf(path string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".json" && ext != ".tmx" {
		return "", false
	}
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if stem == "" {
		return "", false
	}
	return stem, true
}
