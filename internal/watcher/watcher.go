// Package watcher reports on-disk changes to the viewed document. It
// watches the document's directory (editors often replace files rather
// than writing them in place) and publishes debounced change events on
// the bus.
package watcher

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"markview/internal/eventbus"
)

// Service watches one document file for changes
type Service struct {
	bus      eventbus.EventBus
	debounce time.Duration

	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	timer    *time.Timer
	done     chan struct{}
	closed   bool
}

// NewService creates a watcher service publishing on the given bus
func NewService(bus eventbus.EventBus, debounce time.Duration) *Service {
	return &Service{
		bus:      bus,
		debounce: debounce,
		done:     make(chan struct{}),
	}
}

// Watch starts watching the directory containing path. Watching a new
// path replaces the previous one.
func (s *Service) Watch(path string) error {
	path = filepath.Clean(path)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.watcher == nil {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		s.watcher = w
		go s.loop()
	}

	oldDir := ""
	if s.path != "" {
		oldDir = filepath.Dir(s.path)
	}
	newDir := filepath.Dir(path)

	if oldDir != newDir {
		if oldDir != "" {
			_ = s.watcher.Remove(oldDir)
		}
		if err := s.watcher.Add(newDir); err != nil {
			return err
		}
	}

	s.path = path
	return nil
}

// Close stops the watcher
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	close(s.done)

	if s.timer != nil {
		s.timer.Stop()
	}
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

func (s *Service) loop() {
	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			s.handleEvent(event)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
			s.bus.Publish(eventbus.ErrorEvent{Message: "file watcher error", Err: err})
		case <-s.done:
			return
		}
	}
}

func (s *Service) handleEvent(event fsnotify.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" || filepath.Clean(event.Name) != s.path {
		return
	}

	if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
		log.Printf("Watched file removed: %s", s.path)
		s.bus.Publish(eventbus.DocumentRemovedEvent{Path: s.path})
		return
	}

	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}

	// Editors fire bursts of writes; collapse them into one reload
	path := s.path
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		log.Printf("Watched file changed: %s", path)
		s.bus.Publish(eventbus.DocumentChangedEvent{Path: path})
	})
}
