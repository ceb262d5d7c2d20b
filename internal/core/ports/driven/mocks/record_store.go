package mocks

import (
	"context"
	"sync"

	"github.com/veldt-labs/fieldsearch-core/internal/core/domain"
)

// MockRecordStore is a mock implementation of RecordStore for testing
type MockRecordStore struct {
	mu        sync.RWMutex
	tree      domain.Value
	documents []domain.Document
	metadata  map[string]domain.FieldMeta

	TreeErr error
	DocsErr error
	MetaErr error
}

// NewMockRecordStore creates a new MockRecordStore
func NewMockRecordStore() *MockRecordStore {
	return &MockRecordStore{
		tree:     domain.Object(map[string]domain.Value{}),
		metadata: make(map[string]domain.FieldMeta),
	}
}

// SetTree replaces the record tree served by the mock
func (m *MockRecordStore) SetTree(tree domain.Value) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tree = tree
}

// SetDocuments replaces the document list served by the mock
func (m *MockRecordStore) SetDocuments(docs []domain.Document) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.documents = docs
}

// SetMetadata replaces the field metadata served by the mock
func (m *MockRecordStore) SetMetadata(meta map[string]domain.FieldMeta) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.metadata = meta
}

func (m *MockRecordStore) GetRecordTree(ctx context.Context) (domain.Value, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.TreeErr != nil {
		return domain.Null(), m.TreeErr
	}
	return m.tree, nil
}

func (m *MockRecordStore) GetDocumentList(ctx context.Context) ([]domain.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.DocsErr != nil {
		return nil, m.DocsErr
	}
	return m.documents, nil
}

func (m *MockRecordStore) GetFieldMetadata(ctx context.Context) (map[string]domain.FieldMeta, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.MetaErr != nil {
		return nil, m.MetaErr
	}
	return m.metadata, nil
}
