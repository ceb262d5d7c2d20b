package domain

import (
	"crypto/rand"
	"encoding/base64"
	"time"
)

// GenerateID creates a unique random ID.
func GenerateID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}

// SavedFilter is a named, persisted snapshot of a query plus its
// filter criteria. SavedAt doubles as a last-write-wins marker when
// two engine instances race on the same scope.
type SavedFilter struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Query   string    `json:"query"`
	Filters Filters   `json:"filters"`
	SavedAt time.Time `json:"saved_at"`
	SavedBy string    `json:"saved_by"`
}

// Options reconstructs the SearchOptions this filter was saved from.
func (f SavedFilter) Options() SearchOptions {
	return SearchOptions{
		Query:   f.Query,
		Filters: f.Filters.Clone(),
	}
}

// Clone deep-copies the filter criteria so saved snapshots cannot be
// mutated through the original options.
func (f Filters) Clone() Filters {
	out := f
	out.Sections = append([]string(nil), f.Sections...)
	out.FieldTypes = append([]FieldType(nil), f.FieldTypes...)
	out.Tags = append([]string(nil), f.Tags...)
	if f.DateRange != nil {
		r := *f.DateRange
		out.DateRange = &r
	}
	if f.HasAttachments != nil {
		b := *f.HasAttachments
		out.HasAttachments = &b
	}
	return out
}
