package main

import (
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches the opened map file and reports external writes so the
// editor can reload it. Events are delivered through a channel drained once
// per frame inside Update, keeping all document mutation on the event loop.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once

	mu         sync.Mutex
	suspended  bool
	quietUntil time.Time
}

// resumeQuiet keeps the watcher muted briefly after a resume. fsnotify
// delivers events on its own goroutine, so the event for the editor's own
// write can arrive after the write call has already returned and resumed.
const resumeQuiet = 300 * time.Millisecond

func NewFileWatcher(path string) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// watch the directory: editors that write via rename replace the inode
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}
	fw := &FileWatcher{
		watcher: w,
		path:    filepath.Clean(path),
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go fw.run()
	return fw, nil
}

func (fw *FileWatcher) Close() error {
	var err error
	fw.once.Do(func() {
		close(fw.closeCh)
		err = fw.watcher.Close()
	})
	return err
}

// Suspend mutes events (used while the editor itself writes the file).
// Resuming keeps the mute in place for a short quiet window so the write's
// own event cannot leak through as an external change.
func (fw *FileWatcher) Suspend(s bool) {
	fw.mu.Lock()
	if fw.suspended && !s {
		fw.quietUntil = time.Now().Add(resumeQuiet)
	}
	fw.suspended = s
	fw.mu.Unlock()
}

func (fw *FileWatcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != fw.path || !isMapFile(event.Name) {
				continue
			}
			fw.mu.Lock()
			muted := fw.suspended || time.Now().Before(fw.quietUntil)
			fw.mu.Unlock()
			if muted {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < 100*time.Millisecond {
				continue
			}
			last[event.Name] = now
			select {
			case fw.Events <- event.Name:
			default:
			}
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			select {
			case fw.Errors <- err:
			default:
			}
		case <-fw.closeCh:
			return
		}
	}
}

func isMapFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".json"
}

// drainWatcher applies at most one pending external-change event per frame.
func (e *Editor) drainWatcher() {
	if e.watcher == nil {
		return
	}
	select {
	case path := <-e.watcher.Events:
		log.Printf("external change detected in %s, reloading", path)
		if err := e.LoadFrom(path); err != nil {
			log.Printf("reload error: %v", err)
			e.notice.Show("Reload failed: " + err.Error())
		}
	case err := <-e.watcher.Errors:
		log.Printf("watch error: %v", err)
	default:
	}
}

func (e *Editor) restartWatcher(path string) {
	if e.watcher != nil {
		if e.watcher.path == filepath.Clean(path) {
			return
		}
		_ = e.watcher.Close()
		e.watcher = nil
	}
	fw, err := NewFileWatcher(path)
	if err != nil {
		log.Printf("watch unavailable for %s: %v", path, err)
		return
	}
	e.watcher = fw
}

func (e *Editor) stopWatcher() {
	if e.watcher != nil {
		_ = e.watcher.Close()
		e.watcher = nil
	}
}

func (e *Editor) suspendWatch() {
	if e.watcher != nil {
		e.watcher.Suspend(true)
	}
}

func (e *Editor) resumeWatch() {
	if e.watcher != nil {
		e.watcher.Suspend(false)
	}
}
