package catalog

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Source holds the current catalog and can reload it from disk.
// With no path it serves the embedded catalog and never changes.
type Source struct {
	path string
	cur  atomic.Pointer[Catalog]
}

// NewSource loads the catalog at path, or the embedded one when path is "".
func NewSource(path string) (*Source, error) {
	s := &Source{path: path}
	if path == "" {
		s.cur.Store(Default())
		return s, nil
	}
	c, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	s.cur.Store(c)
	return s, nil
}

// Path is the backing file, "" for the embedded catalog.
func (s *Source) Path() string { return s.path }

// Current returns the catalog in effect.
func (s *Source) Current() *Catalog { return s.cur.Load() }

// Reload re-reads the backing file. On error the previous catalog stays.
func (s *Source) Reload() error {
	if s.path == "" {
		return nil
	}
	c, err := LoadFile(s.path)
	if err != nil {
		return err
	}
	s.cur.Store(c)
	return nil
}

// Watch reloads the catalog whenever its file is written, until ctx is done.
// Rapid successive events are coalesced.
func (s *Source) Watch(ctx context.Context, logger *log.Logger) error {
	if s.path == "" {
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("catalog watcher: %w", err)
	}
	// Watch the directory: editors replace files by rename.
	if err := w.Add(filepath.Dir(s.path)); err != nil {
		w.Close()
		return fmt.Errorf("watch %s: %w", s.path, err)
	}
	go s.watchLoop(ctx, w, logger)
	return nil
}

func (s *Source) watchLoop(ctx context.Context, w *fsnotify.Watcher, logger *log.Logger) {
	defer w.Close()

	const debounce = 100 * time.Millisecond
	name := filepath.Base(s.path)
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != name {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			pending = time.After(debounce)

		case <-pending:
			pending = nil
			if err := s.Reload(); err != nil {
				logger.Printf("catalog reload failed: %v", err)
				continue
			}
			logger.Printf("catalog reloaded: %d tools", s.Current().Len())

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Printf("catalog watcher: %v", err)
		}
	}
}
