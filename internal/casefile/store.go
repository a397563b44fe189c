// Package casefile holds the mutable form data of one active case.
package casefile

import "sync"

// FormData maps Question.ID to the field's value. Checkbox values are the
// strings "true"/"false".
type FormData map[string]string

func (f FormData) Clone() FormData {
	out := make(FormData, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Store is the only shared mutable resource of a workflow instance. Writers
// never mutate a published map: the reconciler works on a Snapshot and
// publishes its result with Replace.
type Store struct {
	mu   sync.RWMutex
	data FormData
}

func NewStore() *Store {
	return &Store{data: make(FormData)}
}

// Snapshot returns an independent copy of the current form data.
func (s *Store) Snapshot() FormData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// Replace atomically publishes next as the new form data.
func (s *Store) Replace(next FormData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = next.Clone()
}

// Set applies a single manual edit.
func (s *Store) Set(questionID, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[questionID] = value
}

func (s *Store) Get(questionID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[questionID]
	return v, ok
}

// Reset clears all values, used when the case type is switched.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(FormData)
}
