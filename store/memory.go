package store

import "sync"

// Memory is an in-process Store.  It backs tests and development on
// platforms where no real discovery store is wired up.
type Memory struct {
	mu      sync.Mutex
	records map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{records: make(map[string]string)}
}

func (s *Memory) Lookup(name string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	path, ok := s.records[name]
	return path, ok, nil
}

func (s *Memory) Set(name, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[name] = path
	return nil
}

func (s *Memory) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, name)
	return nil
}

// Len reports the number of records in the store.
func (s *Memory) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
