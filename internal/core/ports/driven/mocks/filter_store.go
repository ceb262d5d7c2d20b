package mocks

import (
	"context"
	"sync"

	"github.com/veldt-labs/fieldsearch-core/internal/core/domain"
)

// MockFilterStore is a mock implementation of FilterStore for testing
type MockFilterStore struct {
	mu      sync.RWMutex
	scopes  map[string][]domain.SavedFilter
	LoadErr error
	SaveErr error

	// PersistCalls counts PersistFilters invocations
	PersistCalls int
}

// NewMockFilterStore creates a new MockFilterStore
func NewMockFilterStore() *MockFilterStore {
	return &MockFilterStore{
		scopes: make(map[string][]domain.SavedFilter),
	}
}

func (m *MockFilterStore) LoadFilters(ctx context.Context, scopeID string) ([]domain.SavedFilter, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return append([]domain.SavedFilter(nil), m.scopes[scopeID]...), nil
}

func (m *MockFilterStore) PersistFilters(ctx context.Context, scopeID string, filters []domain.SavedFilter) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.scopes[scopeID] = append([]domain.SavedFilter(nil), filters...)
	return nil
}

// Stored returns the filters currently persisted for a scope
func (m *MockFilterStore) Stored(scopeID string) []domain.SavedFilter {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.SavedFilter(nil), m.scopes[scopeID]...)
}
