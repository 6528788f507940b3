package session

import "sync"

// MemoryStore keeps flags in memory. A single MemoryStore shared by several
// facilities behaves like one host session.
type MemoryStore struct {
	mu    sync.Mutex
	flags map[string]bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{flags: map[string]bool{}}
}

func (s *MemoryStore) Lookup(name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flags[name], nil
}

func (s *MemoryStore) Store(name string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.flags == nil {
		s.flags = map[string]bool{}
	}
	if value {
		s.flags[name] = true
	} else {
		delete(s.flags, name)
	}
	return nil
}
