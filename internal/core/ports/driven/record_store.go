package driven

import (
	"context"

	"github.com/veldt-labs/fieldsearch-core/internal/core/domain"
)

// RecordStore supplies the nested record tree and document list the
// indexer flattens. Implementations must return data the engine can
// treat as read-only; the indexer never mutates it.
type RecordStore interface {
	// GetRecordTree returns the root of the nested record structure.
	GetRecordTree(ctx context.Context) (domain.Value, error)

	// GetDocumentList returns the flat list of uploaded documents.
	GetDocumentList(ctx context.Context) ([]domain.Document, error)

	// GetFieldMetadata returns per-field audit metadata keyed by
	// field path. Stores without metadata may return an empty map.
	GetFieldMetadata(ctx context.Context) (map[string]domain.FieldMeta, error)
}
