package index

import (
	"reflect"
	"testing"
	"time"

	"github.com/veldt-labs/fieldsearch-core/internal/core/domain"
)

func testTree() domain.Value {
	return domain.Object(map[string]domain.Value{
		"title": domain.String("Intake Form"),
		"personal": domain.Object(map[string]domain.Value{
			"firstName": domain.String("Ada"),
			"lastName":  domain.String("Lovelace"),
			"address": domain.Object(map[string]domain.Value{
				"city": domain.String("London"),
			}),
		}),
		"contact": domain.Object(map[string]domain.Value{
			"email": domain.String("ada@example.com"),
			"phone": domain.String("+44 20 7946 0958"),
			"fax":   domain.Null(),
		}),
	})
}

func testDocs() []domain.Document {
	uploaded := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return []domain.Document{
		{
			FileName:    "passport-scan.pdf",
			Description: "Passport identity page",
			Tags:        []string{"identity"},
			UploadedAt:  &uploaded,
			UploadedBy:  "user-1",
		},
	}
}

func TestBuildEntryPerLeafPlusDocuments(t *testing.T) {
	ix := Build(testTree(), testDocs(), nil)

	// 7 leaf fields + 1 document
	if ix.Len() != 8 {
		t.Fatalf("expected 8 entries, got %d", ix.Len())
	}
}

func TestBuildSectionAndPathRules(t *testing.T) {
	ix := Build(testTree(), nil, nil)

	byPath := make(map[string]domain.IndexEntry)
	for _, e := range ix.Entries {
		byPath[e.FieldPath] = e
	}

	// Top-level scalar is its own section.
	title, ok := byPath["title"]
	if !ok {
		t.Fatal("missing entry for top-level field 'title'")
	}
	if title.SectionID != "title" || title.FieldID != "title" {
		t.Errorf("title entry = section %q field %q, want both 'title'", title.SectionID, title.FieldID)
	}

	// Nested field takes the nearest enclosing object key.
	city, ok := byPath["personal.address.city"]
	if !ok {
		t.Fatal("missing entry for 'personal.address.city'")
	}
	if city.SectionID != "address" {
		t.Errorf("city section = %q, want 'address'", city.SectionID)
	}
	if city.Text != "london" {
		t.Errorf("city text = %q, want 'london'", city.Text)
	}

	email := byPath["contact.email"]
	if email.Type != domain.FieldTypeEmail {
		t.Errorf("email type = %q, want email", email.Type)
	}
	fax := byPath["contact.fax"]
	if fax.Type != domain.FieldTypeEmpty || fax.Text != "" {
		t.Errorf("fax entry = type %q text %q, want empty", fax.Type, fax.Text)
	}
}

func TestBuildDocumentEntries(t *testing.T) {
	ix := Build(domain.Object(map[string]domain.Value{}), testDocs(), nil)

	if ix.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", ix.Len())
	}
	doc := ix.Entries[0]
	if doc.SectionID != domain.SectionDocuments {
		t.Errorf("section = %q, want documents", doc.SectionID)
	}
	if doc.Text != "passport-scan.pdf passport identity page identity" {
		t.Errorf("unexpected document text %q", doc.Text)
	}
	if len(doc.Attachments) != 1 || doc.Attachments[0] != "passport-scan.pdf" {
		t.Errorf("unexpected attachments %v", doc.Attachments)
	}
	if doc.LastModified == nil || doc.ModifiedBy != "user-1" {
		t.Error("expected upload metadata on document entry")
	}
}

func TestBuildJoinsFieldMetadata(t *testing.T) {
	modified := time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC)
	meta := map[string]domain.FieldMeta{
		"personal.firstName": {
			LastModified: &modified,
			ModifiedBy:   "user-2",
			Tags:         []string{"verified"},
			Attachments:  []string{"id-card.jpg"},
		},
	}

	ix := Build(testTree(), nil, meta)

	for _, e := range ix.Entries {
		if e.FieldPath != "personal.firstName" {
			continue
		}
		if e.LastModified == nil || !e.LastModified.Equal(modified) {
			t.Error("expected last-modified joined from metadata")
		}
		if e.ModifiedBy != "user-2" {
			t.Errorf("modified-by = %q, want user-2", e.ModifiedBy)
		}
		if len(e.Tags) != 1 || e.Tags[0] != "verified" {
			t.Errorf("tags = %v, want [verified]", e.Tags)
		}
		if len(e.Attachments) != 1 {
			t.Errorf("attachments = %v, want one", e.Attachments)
		}
		return
	}
	t.Fatal("entry for personal.firstName not found")
}

func TestBuildIdempotent(t *testing.T) {
	a := Build(testTree(), testDocs(), nil)
	b := Build(testTree(), testDocs(), nil)

	if !reflect.DeepEqual(a.Entries, b.Entries) {
		t.Error("two builds over the same input produced different entries")
	}
}

func TestSectionCompletion(t *testing.T) {
	ix := Build(testTree(), nil, nil)

	// contact has a filled email/phone and an empty fax.
	if got := ix.SectionCompletion("contact"); got != domain.CompletionPartial {
		t.Errorf("contact completion = %q, want partial", got)
	}
	// personal fields are all filled.
	if got := ix.SectionCompletion("personal"); got != domain.CompletionComplete {
		t.Errorf("personal completion = %q, want complete", got)
	}
	// Unknown sections report incomplete.
	if got := ix.SectionCompletion("nope"); got != domain.CompletionIncomplete {
		t.Errorf("unknown section completion = %q, want incomplete", got)
	}
}

func TestBuildEmptyObjectLeaf(t *testing.T) {
	tree := domain.Object(map[string]domain.Value{
		"section": domain.Object(map[string]domain.Value{
			"empty": domain.Object(map[string]domain.Value{}),
		}),
	})

	ix := Build(tree, nil, nil)
	if ix.Len() != 1 {
		t.Fatalf("expected empty object to emit one entry, got %d", ix.Len())
	}
	e := ix.Entries[0]
	if e.Type != domain.FieldTypeObject || e.Text != "" {
		t.Errorf("empty object entry = type %q text %q", e.Type, e.Text)
	}
	if e.SectionID != "section" {
		t.Errorf("section = %q, want 'section'", e.SectionID)
	}
}
