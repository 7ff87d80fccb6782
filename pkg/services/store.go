package services

import (
	"sync"

	"nanopage/pkg/vfs"
)

// Store caches the loaded virtual file set. The set itself is immutable;
// reloading swaps in a freshly built one after Invalidate, which is the
// only reload signal in the system.
type Store struct {
	mu     sync.Mutex
	root   string
	fs     *vfs.FS
	loaded bool
}

func NewStore(root string) *Store {
	return &Store{root: root}
}

// FS returns the current file set, loading the content tree from disk on
// first use or after invalidation.
func (s *Store) FS() (*vfs.FS, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.fs, nil
	}

	fsys, err := vfs.FromDir(s.root)
	if err != nil {
		return nil, err
	}
	s.fs = fsys
	s.loaded = true
	return s.fs, nil
}

func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
	s.fs = nil
}
