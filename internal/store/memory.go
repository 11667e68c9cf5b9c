package store

import "sync"

// MemoryStore is a concurrency-safe in-memory implementation of Store.
// It is the default backend and the one used throughout the tests.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[Key][]byte
}

// NewMemoryStore creates a new in-memory store instance.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[Key][]byte),
	}
}

// Get returns the value stored under key, if any.
func (s *MemoryStore) Get(key Key) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.records[key]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), value...), true
}

// Set stores value under key, replacing any previous value.
func (s *MemoryStore) Set(key Key, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = append([]byte(nil), value...)
}

// Has reports whether key is present.
func (s *MemoryStore) Has(key Key) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.records[key]
	return ok
}

// Remove deletes key. Removing an absent key is a no-op.
func (s *MemoryStore) Remove(key Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
}
