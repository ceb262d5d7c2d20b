package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/veldt-labs/fieldsearch-core/internal/core/domain"
	"github.com/veldt-labs/fieldsearch-core/internal/core/ports/driven"
	"github.com/veldt-labs/fieldsearch-core/internal/core/ports/driving"
	"github.com/veldt-labs/fieldsearch-core/internal/index"
	"github.com/veldt-labs/fieldsearch-core/internal/match"
)

// Ensure searchService implements SearchService
var _ driving.SearchService = (*searchService)(nil)

// maxSuggestions caps the suggestion list
const maxSuggestions = 10

// suggestValueMaxLen excludes long scalar values from suggestions
const suggestValueMaxLen = 50

// searchService implements the SearchService interface. It owns the
// index snapshot; rebuilds swap the whole pointer so readers always
// see either the previous or the new index.
type searchService struct {
	recordStore  driven.RecordStore
	logger       *slog.Logger
	quickFilters []domain.QuickFilter

	mu  sync.RWMutex
	idx *index.Index
}

// NewSearchService creates a new SearchService over a record store.
func NewSearchService(recordStore driven.RecordStore, logger *slog.Logger) driving.SearchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &searchService{
		recordStore:  recordStore,
		logger:       logger,
		quickFilters: defaultQuickFilters(),
	}
}

// Initialize builds the index for the first time.
func (s *searchService) Initialize(ctx context.Context) error {
	return s.RefreshIndex(ctx)
}

// RefreshIndex rebuilds the index from the record store. Any source
// read failure leaves the previous index in place.
func (s *searchService) RefreshIndex(ctx context.Context) error {
	tree, err := s.recordStore.GetRecordTree(ctx)
	if err != nil {
		s.logger.Error("record tree read failed, keeping previous index", "error", err)
		return fmt.Errorf("get record tree: %w", err)
	}

	docs, err := s.recordStore.GetDocumentList(ctx)
	if err != nil {
		s.logger.Error("document list read failed, keeping previous index", "error", err)
		return fmt.Errorf("get document list: %w", err)
	}

	meta, err := s.recordStore.GetFieldMetadata(ctx)
	if err != nil {
		s.logger.Error("field metadata read failed, keeping previous index", "error", err)
		return fmt.Errorf("get field metadata: %w", err)
	}

	ix := index.Build(tree, docs, meta)

	s.mu.Lock()
	s.idx = ix
	s.mu.Unlock()

	s.logger.Info("index rebuilt", "entries", ix.Len())
	return nil
}

// Search runs a query with filters against the current index.
func (s *searchService) Search(_ context.Context, opts domain.SearchOptions) ([]domain.SearchResult, error) {
	ix := s.snapshot()
	if ix == nil {
		return nil, domain.ErrIndexNotReady
	}

	matcher := match.ForOptions(opts.Fuzzy)

	var results []domain.SearchResult
	for _, entry := range ix.Entries {
		if !matchesFilters(ix, entry, opts.Filters) {
			continue
		}
		score := matcher.Score(opts.Query, entry.Text)
		if score <= 0 {
			continue
		}
		results = append(results, domain.SearchResult{
			ID:           entry.FieldPath,
			SectionID:    entry.SectionID,
			SectionName:  domain.SectionDisplayName(entry.SectionID),
			FieldID:      entry.FieldID,
			FieldName:    domain.FieldDisplayName(entry.FieldID),
			FieldValue:   entry.Value,
			FieldType:    entry.Type,
			MatchScore:   score,
			Context:      match.BuildContext(entry.Text, opts.Query, match.DefaultWindow),
			LastModified: entry.LastModified,
			ModifiedBy:   entry.ModifiedBy,
			Attachments:  entry.Attachments,
			Tags:         entry.Tags,
		})
	}

	sortResults(results, opts.SortBy)

	if opts.MaxResults > 0 && len(results) > opts.MaxResults {
		results = results[:opts.MaxResults]
	}
	return results, nil
}

// Suggest returns up to 10 deduplicated completion candidates drawn
// from field display names, short scalar values and section names.
func (s *searchService) Suggest(_ context.Context, partial string) ([]string, error) {
	ix := s.snapshot()
	if ix == nil {
		return nil, domain.ErrIndexNotReady
	}
	if strings.TrimSpace(partial) == "" {
		return nil, nil
	}

	seen := make(map[string]struct{})
	var suggestions []string
	add := func(candidate string) {
		if len(suggestions) >= maxSuggestions {
			return
		}
		if !containsFold(candidate, partial) {
			return
		}
		if _, dup := seen[candidate]; dup {
			return
		}
		seen[candidate] = struct{}{}
		suggestions = append(suggestions, candidate)
	}

	for _, entry := range ix.Entries {
		add(domain.FieldDisplayName(entry.FieldID))
	}
	for _, entry := range ix.Entries {
		if entry.Type == domain.FieldTypeArray || entry.Type == domain.FieldTypeObject {
			continue
		}
		if entry.Value != "" && len(entry.Value) < suggestValueMaxLen {
			add(entry.Value)
		}
	}
	for _, name := range domain.KnownSectionNames() {
		add(name)
	}

	return suggestions, nil
}

// QuickFilters returns the built-in filter presets.
func (s *searchService) QuickFilters() []domain.QuickFilter {
	out := make([]domain.QuickFilter, len(s.quickFilters))
	for i, qf := range s.quickFilters {
		out[i] = domain.QuickFilter{Label: qf.Label, Options: qf.Options.Clone()}
	}
	return out
}

func (s *searchService) snapshot() *index.Index {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idx
}

// matchesFilters applies every filter criterion to one entry. An
// unset criterion never constrains.
func matchesFilters(ix *index.Index, entry domain.IndexEntry, f domain.Filters) bool {
	if len(f.Sections) > 0 && !containsString(f.Sections, entry.SectionID) {
		return false
	}
	if len(f.FieldTypes) > 0 && !containsType(f.FieldTypes, entry.Type) {
		return false
	}
	if f.DateRange != nil {
		if entry.LastModified == nil {
			return false
		}
		if entry.LastModified.Before(f.DateRange.Start) || entry.LastModified.After(f.DateRange.End) {
			return false
		}
	}
	// Completion is judged per section: an entry in a fully-filled
	// section is "complete", one in a section missing any field is
	// "incomplete", and "partial" narrows to sections holding a mix.
	switch f.CompletionStatus {
	case domain.CompletionComplete:
		if ix.SectionCompletion(entry.SectionID) != domain.CompletionComplete {
			return false
		}
	case domain.CompletionIncomplete:
		if ix.SectionCompletion(entry.SectionID) == domain.CompletionComplete {
			return false
		}
	case domain.CompletionPartial:
		if ix.SectionCompletion(entry.SectionID) != domain.CompletionPartial {
			return false
		}
	}
	if f.ModifiedBy != "" && entry.ModifiedBy != f.ModifiedBy {
		return false
	}
	if len(f.Tags) > 0 && !anyTagMatches(entry.Tags, f.Tags) {
		return false
	}
	if f.HasAttachments != nil && (len(entry.Attachments) > 0) != *f.HasAttachments {
		return false
	}
	return true
}

// sortResults orders results in place. All sorts are stable so equal
// keys keep their discovery order.
func sortResults(results []domain.SearchResult, key domain.SortKey) {
	switch key {
	case domain.SortBySection:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].SectionName < results[j].SectionName
		})
	case domain.SortByDate:
		sort.SliceStable(results, func(i, j int) bool {
			return modifiedTime(results[i]).After(modifiedTime(results[j]))
		})
	default: // relevance
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].MatchScore > results[j].MatchScore
		})
	}
}

// modifiedTime treats a missing timestamp as the zero instant so
// undated results tie with each other and sink in descending order.
func modifiedTime(r domain.SearchResult) time.Time {
	if r.LastModified == nil {
		return time.Time{}
	}
	return *r.LastModified
}

func defaultQuickFilters() []domain.QuickFilter {
	hasAttachments := true
	return []domain.QuickFilter{
		{Label: "Documents", Options: domain.Filters{Sections: []string{domain.SectionDocuments}}},
		{Label: "Incomplete fields", Options: domain.Filters{CompletionStatus: domain.CompletionIncomplete}},
		{Label: "With attachments", Options: domain.Filters{HasAttachments: &hasAttachments}},
		{Label: "Dates", Options: domain.Filters{FieldTypes: []domain.FieldType{domain.FieldTypeDate}}},
		{Label: "Contact info", Options: domain.Filters{FieldTypes: []domain.FieldType{domain.FieldTypeEmail, domain.FieldTypePhone}}},
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func containsType(haystack []domain.FieldType, needle domain.FieldType) bool {
	for _, t := range haystack {
		if t == needle {
			return true
		}
	}
	return false
}

func anyTagMatches(entryTags, wanted []string) bool {
	for _, w := range wanted {
		if containsString(entryTags, w) {
			return true
		}
	}
	return false
}
