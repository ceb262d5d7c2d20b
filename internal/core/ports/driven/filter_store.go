package driven

import (
	"context"

	"github.com/veldt-labs/fieldsearch-core/internal/core/domain"
)

// FilterStore persists saved filters per owning scope (organization
// or user). The catalog replaces the whole scope on every persist, so
// implementations do not need per-filter operations.
type FilterStore interface {
	// LoadFilters retrieves all saved filters for a scope.
	LoadFilters(ctx context.Context, scopeID string) ([]domain.SavedFilter, error)

	// PersistFilters replaces the saved filters for a scope.
	PersistFilters(ctx context.Context, scopeID string, filters []domain.SavedFilter) error
}
