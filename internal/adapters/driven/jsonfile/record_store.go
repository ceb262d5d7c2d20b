// Package jsonfile provides a RecordStore backed by a single JSON
// file holding the record tree, the document list and optional field
// metadata:
//
//	{
//	  "record":    { ...nested form data... },
//	  "documents": [ {"file_name": "...", "description": "...", "tags": [...]} ],
//	  "metadata":  { "section.field": {"last_modified": "...", "modified_by": "..."} }
//	}
//
// The file is re-read on every call, so an index refresh picks up
// edits made since the last build.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/veldt-labs/fieldsearch-core/internal/core/domain"
	"github.com/veldt-labs/fieldsearch-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.RecordStore = (*RecordStore)(nil)

// RecordStore implements driven.RecordStore over a JSON file.
type RecordStore struct {
	path string
}

// NewRecordStore creates a RecordStore reading from path.
func NewRecordStore(path string) *RecordStore {
	return &RecordStore{path: path}
}

type recordFile struct {
	Record    json.RawMessage             `json:"record"`
	Documents []domain.Document           `json:"documents"`
	Metadata  map[string]domain.FieldMeta `json:"metadata"`
}

// GetRecordTree returns the root of the nested record structure
func (s *RecordStore) GetRecordTree(_ context.Context) (domain.Value, error) {
	file, err := s.load()
	if err != nil {
		return domain.Null(), err
	}
	if len(file.Record) == 0 {
		return domain.Object(map[string]domain.Value{}), nil
	}

	var raw any
	if err := json.Unmarshal(file.Record, &raw); err != nil {
		return domain.Null(), fmt.Errorf("failed to parse record tree: %w", err)
	}
	return domain.FromJSON(raw), nil
}

// GetDocumentList returns the flat list of uploaded documents
func (s *RecordStore) GetDocumentList(_ context.Context) ([]domain.Document, error) {
	file, err := s.load()
	if err != nil {
		return nil, err
	}
	return file.Documents, nil
}

// GetFieldMetadata returns per-field audit metadata keyed by field path
func (s *RecordStore) GetFieldMetadata(_ context.Context) (map[string]domain.FieldMeta, error) {
	file, err := s.load()
	if err != nil {
		return nil, err
	}
	if file.Metadata == nil {
		return map[string]domain.FieldMeta{}, nil
	}
	return file.Metadata, nil
}

func (s *RecordStore) load() (*recordFile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}

	var file recordFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse record file: %w", err)
	}
	return &file, nil
}
