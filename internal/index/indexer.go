package index

import (
	"strings"

	"github.com/veldt-labs/fieldsearch-core/internal/core/domain"
)

// Index is an immutable snapshot of the flattened record tree and
// document list. Rebuilds produce a new Index; an Index is never
// mutated after Build returns.
type Index struct {
	Entries []domain.IndexEntry

	sections map[string]*sectionTally
}

type sectionTally struct {
	filled int
	empty  int
}

// Build flattens a record tree, a document list and optional field
// metadata into an Index. The walk visits object keys in sorted
// order, so two builds over the same inputs yield identical entries.
func Build(tree domain.Value, docs []domain.Document, meta map[string]domain.FieldMeta) *Index {
	ix := &Index{
		sections: make(map[string]*sectionTally),
	}

	if tree.Kind() == domain.KindObject {
		ix.walkObject("", "", tree, meta)
	}

	for _, doc := range docs {
		ix.addDocument(doc)
	}

	return ix
}

// Len returns the number of index entries.
func (ix *Index) Len() int { return len(ix.Entries) }

// SectionCompletion reports how filled-in a section is: complete when
// every field has a value, incomplete when none has, partial when the
// section holds a mix.
func (ix *Index) SectionCompletion(sectionID string) domain.CompletionStatus {
	tally, ok := ix.sections[sectionID]
	if !ok || tally.filled == 0 {
		return domain.CompletionIncomplete
	}
	if tally.empty == 0 {
		return domain.CompletionComplete
	}
	return domain.CompletionPartial
}

// walkObject visits every key of an object node. A non-empty object
// child becomes the new section-id candidate and extends the dot
// path; anything else is a leaf and produces one entry.
func (ix *Index) walkObject(sectionID, prefix string, obj domain.Value, meta map[string]domain.FieldMeta) {
	for _, key := range obj.Keys() {
		child, _ := obj.Field(key)
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if child.Kind() == domain.KindObject && child.Len() > 0 {
			ix.walkObject(key, path, child, meta)
			continue
		}
		ix.addField(sectionID, key, path, child, meta)
	}
}

func (ix *Index) addField(sectionID, fieldID, fieldPath string, v domain.Value, meta map[string]domain.FieldMeta) {
	// Top-level fields sit outside any enclosing object; they are
	// their own section.
	if sectionID == "" {
		sectionID = fieldID
	}

	entry := domain.IndexEntry{
		SectionID: sectionID,
		FieldID:   fieldID,
		FieldPath: fieldPath,
		Value:     displayValue(v),
		Type:      domain.ClassifyValue(v),
		Text:      domain.ExtractText(v),
	}

	if fm, ok := meta[fieldPath]; ok {
		entry.LastModified = fm.LastModified
		entry.ModifiedBy = fm.ModifiedBy
		entry.Tags = append([]string(nil), fm.Tags...)
		entry.Attachments = append([]string(nil), fm.Attachments...)
	}

	ix.append(entry)
}

func (ix *Index) addDocument(doc domain.Document) {
	parts := []string{doc.FileName}
	if doc.Description != "" {
		parts = append(parts, doc.Description)
	}
	parts = append(parts, doc.Tags...)

	entry := domain.IndexEntry{
		SectionID:    domain.SectionDocuments,
		FieldID:      doc.FileName,
		FieldPath:    domain.SectionDocuments + "." + doc.FileName,
		Value:        doc.FileName,
		Type:         domain.FieldTypeText,
		Text:         strings.ToLower(strings.Join(parts, " ")),
		LastModified: doc.UploadedAt,
		ModifiedBy:   doc.UploadedBy,
		Tags:         append([]string(nil), doc.Tags...),
		Attachments:  []string{doc.FileName},
	}

	ix.append(entry)
}

func (ix *Index) append(entry domain.IndexEntry) {
	ix.Entries = append(ix.Entries, entry)

	tally, ok := ix.sections[entry.SectionID]
	if !ok {
		tally = &sectionTally{}
		ix.sections[entry.SectionID] = tally
	}
	if entry.Text == "" {
		tally.empty++
	} else {
		tally.filled++
	}
}

// displayValue renders a value for presentation, preserving the
// original casing (unlike ExtractText).
func displayValue(v domain.Value) string {
	switch v.Kind() {
	case domain.KindString:
		return v.StringVal()
	case domain.KindArray:
		parts := make([]string, 0, v.Len())
		for _, item := range v.Items() {
			parts = append(parts, displayValue(item))
		}
		return strings.Join(parts, ", ")
	case domain.KindObject:
		parts := make([]string, 0, v.Len())
		for _, k := range v.Keys() {
			f, _ := v.Field(k)
			parts = append(parts, displayValue(f))
		}
		return strings.Join(parts, ", ")
	default:
		return domain.ExtractText(v)
	}
}
