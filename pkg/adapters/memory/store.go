// Package memory provides an in-memory ports.PatternStore, mainly for
// tests and single-process serving.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/kolamkit/kolam/pkg/domain"
)

// Store implements ports.PatternStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Pattern
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Pattern),
	}
}

// Save stores a deep copy of the pattern under a fresh storage ID.
func (s *Store) Save(ctx context.Context, p *domain.Pattern) (string, error) {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = p.Clone()
	return id, nil
}

// Load retrieves a pattern. The caller gets its own copy and cannot mutate
// store state through it.
func (s *Store) Load(ctx context.Context, id string) (*domain.Pattern, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.data[id]
	if !ok {
		return nil, domain.ErrPatternNotFound
	}
	return p.Clone(), nil
}

// Delete removes a pattern.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[id]; !ok {
		return domain.ErrPatternNotFound
	}
	delete(s.data, id)
	return nil
}

// List returns the storage IDs of all saved patterns.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}
