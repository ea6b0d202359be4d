package config

import "sync"

// Store holds the current countdown list behind a mutex. The main loop reads
// it once per tick via Snapshot; the reloader replaces the whole list. No
// caller ever holds a reference into the store's internal slice.
type Store struct {
	mu      sync.Mutex
	records []Record
}

// NewStore creates a store seeded with the given records.
func NewStore(records []Record) *Store {
	s := &Store{}
	s.Replace(records)
	return s
}

// Snapshot returns a copy of the current record list. Readers never observe
// a partially written list.
func (s *Store) Snapshot() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Replace swaps in a new record list atomically.
func (s *Store) Replace(records []Record) {
	next := make([]Record, len(records))
	copy(next, records)

	s.mu.Lock()
	s.records = next
	s.mu.Unlock()
}

// Len returns the current number of records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
