// Package memory provides a process-local ports.Store backed by a map.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/jsamuelsen11/go-library-service/internal/ports"
)

// Store is an in-memory ports.Store. Records are kept in a map keyed by
// identity; a separate slice remembers insertion order for GetAll.
//
// Update runs the patch while holding the write lock, so concurrent updates
// of the same record are serialized. It never returns an error of its own.
type Store[T ports.Identifiable] struct {
	mu      sync.RWMutex
	records map[string]T
	order   []string
}

// Compile-time interface check.
var _ ports.Store[ports.Identifiable] = (*Store[ports.Identifiable])(nil)

// New constructs an empty Store.
func New[T ports.Identifiable]() *Store[T] {
	return &Store[T]{records: make(map[string]T)}
}

// Get retrieves the record stored under id.
func (s *Store[T]) Get(_ context.Context, id string) (T, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	return rec, ok, nil
}

// GetAll returns all records in insertion order.
func (s *Store[T]) GetAll(_ context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]T, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.records[id])
	}
	return result, nil
}

// Create stores rec under its identity. Overwriting keeps the original
// insertion position.
func (s *Store[T]) Create(_ context.Context, rec T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := rec.Identity()
	if _, ok := s.records[id]; !ok {
		s.order = append(s.order, id)
	}
	s.records[id] = rec
	return rec, nil
}

// Update applies patch to a copy of the current record and stores the copy
// when the patch succeeds.
func (s *Store[T]) Update(_ context.Context, id string, patch ports.Patch[T]) (T, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	current, ok := s.records[id]
	if !ok {
		return zero, false, nil
	}

	next := current
	if err := patch(&next); err != nil {
		return zero, true, err
	}

	s.records[id] = next
	return next, true, nil
}

// Delete removes the record stored under id if it exists.
func (s *Store[T]) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return false, nil
	}

	delete(s.records, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	return true, nil
}

// Exists reports whether a record is stored under id.
func (s *Store[T]) Exists(_ context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.records[id]
	return ok, nil
}

// Len returns the number of stored records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}
