package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/veldt-labs/fieldsearch-core/internal/core/domain"
)

const sampleFile = `{
  "record": {
    "personal": {
      "firstName": "Ada",
      "age": 36
    },
    "notes": null
  },
  "documents": [
    {"file_name": "scan.pdf", "description": "a scan", "tags": ["misc"]}
  ],
  "metadata": {
    "personal.firstName": {"modified_by": "user-3"}
  }
}`

func writeTempRecords(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestRecordStoreReadsTree(t *testing.T) {
	store := NewRecordStore(writeTempRecords(t, sampleFile))

	tree, err := store.GetRecordTree(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Kind() != domain.KindObject {
		t.Fatalf("expected object root, got kind %d", tree.Kind())
	}

	personal, ok := tree.Field("personal")
	if !ok {
		t.Fatal("missing 'personal' subtree")
	}
	if first, _ := personal.Field("firstName"); first.StringVal() != "Ada" {
		t.Errorf("expected firstName 'Ada', got %q", first.StringVal())
	}
	if age, _ := personal.Field("age"); age.NumberVal() != 36 {
		t.Errorf("expected age 36, got %v", age.NumberVal())
	}
	if notes, _ := tree.Field("notes"); !notes.IsNull() {
		t.Error("expected null notes")
	}
}

func TestRecordStoreReadsDocumentsAndMetadata(t *testing.T) {
	store := NewRecordStore(writeTempRecords(t, sampleFile))
	ctx := context.Background()

	docs, err := store.GetDocumentList(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 1 || docs[0].FileName != "scan.pdf" {
		t.Fatalf("unexpected documents: %+v", docs)
	}
	if len(docs[0].Tags) != 1 || docs[0].Tags[0] != "misc" {
		t.Errorf("unexpected tags: %v", docs[0].Tags)
	}

	meta, err := store.GetFieldMetadata(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta["personal.firstName"].ModifiedBy != "user-3" {
		t.Errorf("unexpected metadata: %+v", meta)
	}
}

func TestRecordStoreMissingSections(t *testing.T) {
	store := NewRecordStore(writeTempRecords(t, `{}`))
	ctx := context.Background()

	tree, err := store.GetRecordTree(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Kind() != domain.KindObject || tree.Len() != 0 {
		t.Errorf("expected empty object tree, got kind %d len %d", tree.Kind(), tree.Len())
	}

	docs, err := store.GetDocumentList(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("expected no documents, got %d", len(docs))
	}

	meta, err := store.GetFieldMetadata(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meta) != 0 {
		t.Errorf("expected empty metadata, got %v", meta)
	}
}

func TestRecordStoreMissingFile(t *testing.T) {
	store := NewRecordStore(filepath.Join(t.TempDir(), "absent.json"))

	if _, err := store.GetRecordTree(context.Background()); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestRecordStoreInvalidJSON(t *testing.T) {
	store := NewRecordStore(writeTempRecords(t, `{not json`))

	if _, err := store.GetRecordTree(context.Background()); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestRecordStoreRereadsFile(t *testing.T) {
	path := writeTempRecords(t, sampleFile)
	store := NewRecordStore(path)
	ctx := context.Background()

	if _, err := store.GetRecordTree(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// An edit between calls is visible on the next read.
	if err := os.WriteFile(path, []byte(`{"record": {"updated": true}}`), 0o600); err != nil {
		t.Fatalf("failed to rewrite test file: %v", err)
	}

	tree, err := store.GetRecordTree(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated, ok := tree.Field("updated"); !ok || !updated.BoolVal() {
		t.Error("expected re-read to pick up the file edit")
	}
}
