package domain

import (
	"sort"
	"strings"
	"time"
	"unicode"
)

// SortKey determines result ordering
type SortKey string

const (
	SortByRelevance SortKey = "relevance" // Descending score (default)
	SortByDate      SortKey = "date"      // Descending last-modified
	SortBySection   SortKey = "section"   // Lexicographic section name
)

// CompletionStatus filters entries by how filled-in they are
type CompletionStatus string

const (
	CompletionComplete   CompletionStatus = "complete"
	CompletionIncomplete CompletionStatus = "incomplete"
	CompletionPartial    CompletionStatus = "partial"
)

// DateRange bounds entries by their last-modified instant (inclusive)
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Filters carries every filter criterion of a search, independent of
// the query text. Zero values mean "no constraint".
type Filters struct {
	Sections         []string         `json:"sections,omitempty"`
	FieldTypes       []FieldType      `json:"field_types,omitempty"`
	DateRange        *DateRange       `json:"date_range,omitempty"`
	CompletionStatus CompletionStatus `json:"completion_status,omitempty"`
	ModifiedBy       string           `json:"modified_by,omitempty"`
	Tags             []string         `json:"tags,omitempty"`
	HasAttachments   *bool            `json:"has_attachments,omitempty"`
	Fuzzy            bool             `json:"fuzzy,omitempty"`
	MaxResults       int              `json:"max_results,omitempty"`
	SortBy           SortKey          `json:"sort_by,omitempty"`
}

// SearchOptions configures a search request
type SearchOptions struct {
	Query string `json:"query"`
	Filters
}

// DefaultSearchOptions returns sensible defaults
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Filters: Filters{
			MaxResults: 50,
			SortBy:     SortByRelevance,
		},
	}
}

// SearchResult is a presentation-ready projection of a matched entry
type SearchResult struct {
	ID           string     `json:"id"`
	SectionID    string     `json:"section_id"`
	SectionName  string     `json:"section_name"`
	FieldID      string     `json:"field_id"`
	FieldName    string     `json:"field_name"`
	FieldValue   string     `json:"field_value"`
	FieldType    FieldType  `json:"field_type"`
	MatchScore   float64    `json:"match_score"`
	Context      string     `json:"context"`
	LastModified *time.Time `json:"last_modified,omitempty"`
	ModifiedBy   string     `json:"modified_by,omitempty"`
	Attachments  []string   `json:"attachments,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
}

// QuickFilter is a built-in, non-persisted filter preset
type QuickFilter struct {
	Label   string  `json:"label"`
	Options Filters `json:"options"`
}

// sectionNames maps well-known section ids to display names. Sections
// not listed fall back to the camel-case transform.
var sectionNames = map[string]string{
	"personal":         "Personal Information",
	"contact":          "Contact Details",
	"medicalHistory":   "Medical History",
	"employment":       "Employment",
	"education":        "Education",
	SectionDocuments:   "Documents",
	"emergencyContact": "Emergency Contact",
}

// SectionDisplayName returns a human-readable name for a section id.
func SectionDisplayName(sectionID string) string {
	if name, ok := sectionNames[sectionID]; ok {
		return name
	}
	return FieldDisplayName(sectionID)
}

// KnownSectionNames returns the display names of the well-known
// sections, sorted, for suggestion candidates.
func KnownSectionNames() []string {
	names := make([]string, 0, len(sectionNames))
	for _, n := range sectionNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// FieldDisplayName converts a camel-case identifier to title case:
// a space is inserted before each uppercase letter and the first
// character is capitalized ("dateOfBirth" -> "Date Of Birth").
func FieldDisplayName(fieldID string) string {
	if fieldID == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(fieldID) + 4)
	for i, r := range fieldID {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
