package domain

import "time"

// SectionDocuments is the synthetic section holding document entries.
const SectionDocuments = "documents"

// IndexEntry is one flattened, searchable unit derived from a leaf
// field of the record tree or from a document. Entries are immutable
// snapshots taken at index-build time and replaced wholesale on
// refresh.
type IndexEntry struct {
	// SectionID is the nearest enclosing object key, or the field's
	// own key for top-level fields.
	SectionID string `json:"section_id"`

	// FieldID is the leaf key.
	FieldID string `json:"field_id"`

	// FieldPath is the dot-joined key chain from the tree root.
	FieldPath string `json:"field_path"`

	// Value is the display form of the raw value.
	Value string `json:"value"`

	// Type is the classified semantic type.
	Type FieldType `json:"type"`

	// Text is the normalized lowercase searchable representation.
	// It is a pure function of Value.
	Text string `json:"text"`

	// Metadata joined from the record store, when available.
	LastModified *time.Time `json:"last_modified,omitempty"`
	ModifiedBy   string     `json:"modified_by,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
	Attachments  []string   `json:"attachments,omitempty"`
}

// Document describes one uploaded document from the record store.
type Document struct {
	FileName    string     `json:"file_name"`
	Description string     `json:"description,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	UploadedAt  *time.Time `json:"uploaded_at,omitempty"`
	UploadedBy  string     `json:"uploaded_by,omitempty"`
}

// FieldMeta carries per-field audit metadata, keyed by field path in
// the record store.
type FieldMeta struct {
	LastModified *time.Time `json:"last_modified,omitempty"`
	ModifiedBy   string     `json:"modified_by,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
	Attachments  []string   `json:"attachments,omitempty"`
}
