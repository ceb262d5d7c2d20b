package memory

import (
	"context"
	"sync"

	"github.com/veldt-labs/fieldsearch-core/internal/core/domain"
	"github.com/veldt-labs/fieldsearch-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.FilterStore = (*FilterStore)(nil)

// FilterStore implements driven.FilterStore in memory. Used as the
// default wiring when no external store is configured; filters do not
// survive a restart.
type FilterStore struct {
	mu     sync.RWMutex
	scopes map[string][]domain.SavedFilter
}

// NewFilterStore creates a new in-memory FilterStore
func NewFilterStore() *FilterStore {
	return &FilterStore{
		scopes: make(map[string][]domain.SavedFilter),
	}
}

// LoadFilters retrieves all saved filters for a scope
func (s *FilterStore) LoadFilters(_ context.Context, scopeID string) ([]domain.SavedFilter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.SavedFilter(nil), s.scopes[scopeID]...), nil
}

// PersistFilters replaces the saved filters for a scope
func (s *FilterStore) PersistFilters(_ context.Context, scopeID string, filters []domain.SavedFilter) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scopes[scopeID] = append([]domain.SavedFilter(nil), filters...)
	return nil
}
