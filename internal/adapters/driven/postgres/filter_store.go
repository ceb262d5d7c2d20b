package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/veldt-labs/fieldsearch-core/internal/core/domain"
	"github.com/veldt-labs/fieldsearch-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.FilterStore = (*FilterStore)(nil)

// FilterStore implements driven.FilterStore using PostgreSQL.
// Filter criteria are stored as JSONB; the position column preserves
// insertion order across round trips.
type FilterStore struct {
	db *DB
}

// NewFilterStore creates a new PostgreSQL-backed FilterStore
func NewFilterStore(db *DB) *FilterStore {
	return &FilterStore{db: db}
}

// LoadFilters retrieves all saved filters for a scope in insertion order
func (s *FilterStore) LoadFilters(ctx context.Context, scopeID string) ([]domain.SavedFilter, error) {
	query := `
		SELECT id, name, query, criteria, saved_at, saved_by
		FROM saved_filters
		WHERE scope_id = $1
		ORDER BY position
	`

	rows, err := s.db.QueryContext(ctx, query, scopeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load filters: %w", err)
	}
	defer rows.Close()

	var filters []domain.SavedFilter
	for rows.Next() {
		var f domain.SavedFilter
		var criteria []byte
		if err := rows.Scan(&f.ID, &f.Name, &f.Query, &criteria, &f.SavedAt, &f.SavedBy); err != nil {
			return nil, fmt.Errorf("failed to scan filter: %w", err)
		}
		if err := json.Unmarshal(criteria, &f.Filters); err != nil {
			return nil, fmt.Errorf("failed to unmarshal filter criteria: %w", err)
		}
		filters = append(filters, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read filters: %w", err)
	}

	return filters, nil
}

// PersistFilters replaces the saved filters for a scope in one transaction
func (s *FilterStore) PersistFilters(ctx context.Context, scopeID string, filters []domain.SavedFilter) error {
	return s.db.Transaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM saved_filters WHERE scope_id = $1`, scopeID); err != nil {
			return fmt.Errorf("failed to clear filters: %w", err)
		}

		insert := `
			INSERT INTO saved_filters (scope_id, id, position, name, query, criteria, saved_at, saved_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`
		for i, f := range filters {
			criteria, err := json.Marshal(f.Filters)
			if err != nil {
				return fmt.Errorf("failed to marshal filter criteria: %w", err)
			}
			if _, err := tx.ExecContext(ctx, insert, scopeID, f.ID, i, f.Name, f.Query, criteria, f.SavedAt, f.SavedBy); err != nil {
				return fmt.Errorf("failed to insert filter: %w", err)
			}
		}
		return nil
	})
}
