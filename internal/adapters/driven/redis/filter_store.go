package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/veldt-labs/fieldsearch-core/internal/core/domain"
	"github.com/veldt-labs/fieldsearch-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.FilterStore = (*FilterStore)(nil)

// Key prefix for saved filter scopes
const filterScopePrefix = "filters:scope:"

// FilterStore implements driven.FilterStore using Redis. Each scope's
// filters are stored as one JSON value, matching the store contract's
// whole-scope replace semantics.
type FilterStore struct {
	client *redis.Client
}

// NewFilterStore creates a new Redis-backed FilterStore
func NewFilterStore(client *redis.Client) *FilterStore {
	return &FilterStore{client: client}
}

// LoadFilters retrieves all saved filters for a scope
func (s *FilterStore) LoadFilters(ctx context.Context, scopeID string) ([]domain.SavedFilter, error) {
	data, err := s.client.Get(ctx, filterScopePrefix+scopeID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load filters: %w", err)
	}

	var filters []domain.SavedFilter
	if err := json.Unmarshal(data, &filters); err != nil {
		return nil, fmt.Errorf("failed to unmarshal filters: %w", err)
	}
	return filters, nil
}

// PersistFilters replaces the saved filters for a scope
func (s *FilterStore) PersistFilters(ctx context.Context, scopeID string, filters []domain.SavedFilter) error {
	if len(filters) == 0 {
		if err := s.client.Del(ctx, filterScopePrefix+scopeID).Err(); err != nil {
			return fmt.Errorf("failed to clear filters: %w", err)
		}
		return nil
	}

	data, err := json.Marshal(filters)
	if err != nil {
		return fmt.Errorf("failed to marshal filters: %w", err)
	}

	if err := s.client.Set(ctx, filterScopePrefix+scopeID, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to persist filters: %w", err)
	}
	return nil
}
