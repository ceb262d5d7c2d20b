package memory

import (
	"context"
	"sync"

	"github.com/veldt-labs/fieldsearch-core/internal/core/domain"
	"github.com/veldt-labs/fieldsearch-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.RecordStore = (*RecordStore)(nil)

// RecordStore implements driven.RecordStore over fixed in-memory
// data. Handy for tests and demos.
type RecordStore struct {
	mu        sync.RWMutex
	tree      domain.Value
	documents []domain.Document
	metadata  map[string]domain.FieldMeta
}

// NewRecordStore creates a RecordStore serving the given data.
func NewRecordStore(tree domain.Value, docs []domain.Document, meta map[string]domain.FieldMeta) *RecordStore {
	if meta == nil {
		meta = make(map[string]domain.FieldMeta)
	}
	return &RecordStore{
		tree:      tree,
		documents: docs,
		metadata:  meta,
	}
}

// GetRecordTree returns the root of the nested record structure
func (s *RecordStore) GetRecordTree(_ context.Context) (domain.Value, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree, nil
}

// GetDocumentList returns the flat list of uploaded documents
func (s *RecordStore) GetDocumentList(_ context.Context) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Document(nil), s.documents...), nil
}

// GetFieldMetadata returns per-field audit metadata keyed by field path
func (s *RecordStore) GetFieldMetadata(_ context.Context) (map[string]domain.FieldMeta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]domain.FieldMeta, len(s.metadata))
	for k, v := range s.metadata {
		out[k] = v
	}
	return out, nil
}

// Replace swaps the served record data, for refresh scenarios.
func (s *RecordStore) Replace(tree domain.Value, docs []domain.Document, meta map[string]domain.FieldMeta) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree = tree
	s.documents = docs
	if meta == nil {
		meta = make(map[string]domain.FieldMeta)
	}
	s.metadata = meta
}
