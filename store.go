package dnd

import "sync"

// Store is a type-safe keyed store for state that must survive across
// frames. Entries have no implicit expiry: the engine creates an entry when
// a drag starts and clears it when the drag ends, and nothing else touches
// it in between. Contexts with different IDs never share entries.
type Store[T any] struct {
	mu      sync.RWMutex
	entries map[ID]T
}

// NewStore creates an empty store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{entries: make(map[ID]T)}
}

// Load retrieves the entry for id, reporting whether it exists.
func (s *Store[T]) Load(id ID) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[id]
	return v, ok
}

// Store sets the entry for id, creating or replacing it.
func (s *Store[T]) Store(id ID, value T) {
	s.mu.Lock()
	s.entries[id] = value
	s.mu.Unlock()
}

// Clear removes the entry for id. Clearing a missing entry is a no-op.
func (s *Store[T]) Clear(id ID) {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}

// Len returns the number of stored entries.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
