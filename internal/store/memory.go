package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps artifacts in memory. It is used by tests and dry runs.
type MemoryStore struct {
	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]struct{}
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		files: make(map[string][]byte),
		dirs:  make(map[string]struct{}),
	}
}

// Put stores a copy of data under name.
func (s *MemoryStore) Put(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[name] = append([]byte(nil), data...)
	return nil
}

// MakeDir records the directory.
func (s *MemoryStore) MakeDir(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirs[name] = struct{}{}
	return nil
}

// Location returns name unchanged.
func (s *MemoryStore) Location(name string) string {
	return name
}

// Get returns the stored artifact.
func (s *MemoryStore) Get(name string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.files[name]
	return data, ok
}

// Names returns all stored artifact names, sorted.
func (s *MemoryStore) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.files))
	for name := range s.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasDir reports whether MakeDir was called for name.
func (s *MemoryStore) HasDir(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.dirs[name]
	return ok
}

var _ Store = (*MemoryStore)(nil)
