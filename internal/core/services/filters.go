package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/veldt-labs/fieldsearch-core/internal/core/domain"
	"github.com/veldt-labs/fieldsearch-core/internal/core/ports/driven"
	"github.com/veldt-labs/fieldsearch-core/internal/core/ports/driving"
)

// Ensure filterService implements FilterService
var _ driving.FilterService = (*filterService)(nil)

// filterService implements the FilterService interface. It keeps the
// scope's saved filters in memory and writes the whole set through to
// the filter store on every change; a failed write rolls the change
// back so the catalog never drifts from its last persisted state.
type filterService struct {
	store   driven.FilterStore
	scopeID string
	logger  *slog.Logger

	mu      sync.Mutex
	filters []domain.SavedFilter
}

// NewFilterService creates a new FilterService for one scope.
func NewFilterService(store driven.FilterStore, scopeID string, logger *slog.Logger) driving.FilterService {
	if logger == nil {
		logger = slog.Default()
	}
	return &filterService{
		store:   store,
		scopeID: scopeID,
		logger:  logger,
	}
}

// Initialize loads the scope's saved filters from the filter store.
func (s *filterService) Initialize(ctx context.Context) error {
	loaded, err := s.store.LoadFilters(ctx, s.scopeID)
	if err != nil {
		s.logger.Error("saved filter load failed", "scope", s.scopeID, "error", err)
		return fmt.Errorf("load filters: %w", err)
	}

	s.mu.Lock()
	s.filters = loaded
	s.mu.Unlock()
	return nil
}

// SaveFilter snapshots the options under a name and returns the
// generated filter id.
func (s *filterService) SaveFilter(ctx context.Context, name string, opts domain.SearchOptions, savedBy string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: filter name is required", domain.ErrInvalidInput)
	}

	filter := domain.SavedFilter{
		ID:      domain.GenerateID(),
		Name:    name,
		Query:   opts.Query,
		Filters: opts.Filters.Clone(),
		SavedAt: time.Now().UTC(),
		SavedBy: savedBy,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(append([]domain.SavedFilter(nil), s.filters...), filter)
	if err := s.store.PersistFilters(ctx, s.scopeID, next); err != nil {
		s.logger.Error("saved filter persist failed", "scope", s.scopeID, "error", err)
		return "", fmt.Errorf("persist filters: %w", err)
	}

	s.filters = next
	return filter.ID, nil
}

// GetSavedFilters lists the saved filters in insertion order.
func (s *filterService) GetSavedFilters(_ context.Context) ([]domain.SavedFilter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.SavedFilter(nil), s.filters...), nil
}

// ApplySavedFilter reconstructs the SearchOptions a filter was saved
// from. Returns domain.ErrNotFound for unknown ids.
func (s *filterService) ApplySavedFilter(_ context.Context, filterID string) (domain.SearchOptions, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.filters {
		if f.ID == filterID {
			return f.Options(), nil
		}
	}
	return domain.SearchOptions{}, domain.ErrNotFound
}

// DeleteSavedFilter removes a filter. A missing id reports false with
// no error and leaves the catalog unchanged.
func (s *filterService) DeleteSavedFilter(ctx context.Context, filterID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	at := -1
	for i, f := range s.filters {
		if f.ID == filterID {
			at = i
			break
		}
	}
	if at < 0 {
		return false, nil
	}

	next := append([]domain.SavedFilter(nil), s.filters[:at]...)
	next = append(next, s.filters[at+1:]...)
	if err := s.store.PersistFilters(ctx, s.scopeID, next); err != nil {
		s.logger.Error("saved filter persist failed", "scope", s.scopeID, "error", err)
		return false, fmt.Errorf("persist filters: %w", err)
	}

	s.filters = next
	return true, nil
}
