package navkit

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce is how long the file must stay quiet before it is reloaded.
const reloadDebounce = 100 * time.Millisecond

// MeshWatcher reloads a YAML mesh file whenever it changes on disk and
// delivers the new Mesh on Meshes. Navmeshes are not rebuilt automatically:
// receive from Meshes in the game loop and construct a new WorldNavMesh or
// TileNavMesh there.
type MeshWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	meshes  chan *Mesh
	errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// WatchMesh starts watching filename. The directory is watched rather than
// the file itself so that editors which replace the file on save are
// handled.
func WatchMesh(filename string) (*MeshWatcher, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("navkit: watch %s: %w", filename, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("navkit: watch %s: %w", filename, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("navkit: watch %s: %w", filename, err)
	}

	mw := &MeshWatcher{
		path:    abs,
		watcher: w,
		meshes:  make(chan *Mesh, 4),
		errors:  make(chan error, 4),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go mw.run()
	return mw, nil
}

// Meshes delivers a freshly loaded Mesh after each change. The channel is
// closed by Close.
func (w *MeshWatcher) Meshes() <-chan *Mesh { return w.meshes }

// Errors delivers load and watch failures. The channel is closed by Close.
func (w *MeshWatcher) Errors() <-chan error { return w.errors }

// Close stops watching and closes both channels. It is safe to call more
// than once.
func (w *MeshWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *MeshWatcher) run() {
	defer func() {
		close(w.meshes)
		close(w.errors)
		close(w.done)
	}()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
			} else {
				timer.Reset(reloadDebounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			m, err := LoadMesh(w.path)
			if err != nil {
				log.Printf("navkit: reload failed: %v", err)
				w.sendErr(err)
				continue
			}
			select {
			case w.meshes <- m:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendErr(err)
		case <-w.closeCh:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// sendErr delivers err, dropping it if the Errors buffer is full.
func (w *MeshWatcher) sendErr(err error) {
	select {
	case w.errors <- err:
	default:
	}
}
