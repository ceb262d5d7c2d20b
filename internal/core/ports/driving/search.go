package driving

import (
	"context"

	"github.com/veldt-labs/fieldsearch-core/internal/core/domain"
)

// SearchService handles field-level search over the flattened index
type SearchService interface {
	// Initialize builds the index from the record store. It must be
	// called once before Search or Suggest return useful results.
	Initialize(ctx context.Context) error

	// Search runs a query with filters against the current index.
	Search(ctx context.Context, opts domain.SearchOptions) ([]domain.SearchResult, error)

	// Suggest returns up to 10 completion candidates for a partial query.
	Suggest(ctx context.Context, partial string) ([]string, error)

	// QuickFilters returns the built-in filter presets.
	QuickFilters() []domain.QuickFilter

	// RefreshIndex rebuilds the index from the record store. On
	// failure the previous index is kept.
	RefreshIndex(ctx context.Context) error
}

// FilterService manages named saved filters for one scope
type FilterService interface {
	// Initialize loads the scope's saved filters from the filter store.
	Initialize(ctx context.Context) error

	// SaveFilter snapshots the options under a name and returns the
	// generated filter id.
	SaveFilter(ctx context.Context, name string, opts domain.SearchOptions, savedBy string) (string, error)

	// GetSavedFilters lists the saved filters in insertion order.
	GetSavedFilters(ctx context.Context) ([]domain.SavedFilter, error)

	// ApplySavedFilter reconstructs the SearchOptions a filter was
	// saved from. Returns domain.ErrNotFound for unknown ids.
	ApplySavedFilter(ctx context.Context, filterID string) (domain.SearchOptions, error)

	// DeleteSavedFilter removes a filter. It reports false, not an
	// error, when the id is unknown.
	DeleteSavedFilter(ctx context.Context, filterID string) (bool, error)
}
