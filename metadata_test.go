package overmark

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseMetadata(t *testing.T) {
	t.Parallel()
	data := []byte(`spans:
  - id: a1
    category: yellow
    priority: 2
  - id: b2
    category: Green
`)
	metas, err := ParseMetadata(data)
	if err != nil {
		t.Fatalf("ParseMetadata: %v", err)
	}
	if len(metas) != 2 {
		t.Fatalf("expected 2 spans, got %v", metas)
	}
	if metas[0].ID != "a1" || metas[0].Category != "yellow" || metas[0].Priority != 2 {
		t.Fatalf("unexpected first span %+v", metas[0])
	}
	if metas[1].ID != "b2" || metas[1].Priority != 0 {
		t.Fatalf("unexpected second span %+v", metas[1])
	}
}

func TestParseMetadataRejectsMissingID(t *testing.T) {
	t.Parallel()
	if _, err := ParseMetadata([]byte("spans:\n  - category: yellow\n")); err == nil {
		t.Fatalf("expected error for span without id")
	}
}

func TestParseMetadataRejectsBadYAML(t *testing.T) {
	t.Parallel()
	if _, err := ParseMetadata([]byte("spans: [unclosed")); err == nil {
		t.Fatalf("expected error for invalid yaml")
	}
}

func TestMetadataSetLookup(t *testing.T) {
	t.Parallel()
	set := NewMetadataSet([]SpanMeta{
		{ID: "x", Category: "blue", Priority: 1},
		{ID: "x", Category: "pink", Priority: 4}, // later entry wins
	})
	m, ok := set.Lookup("x")
	if !ok || m.Category != "pink" || m.Priority != 4 {
		t.Fatalf("lookup = %+v, %v", m, ok)
	}
	if _, ok := set.Lookup("missing"); ok {
		t.Fatalf("expected miss for unknown id")
	}
}

func TestMetadataSetNilSafe(t *testing.T) {
	t.Parallel()
	var set *MetadataSet
	if _, ok := set.Lookup("x"); ok {
		t.Fatalf("nil set must miss")
	}
	if set.Len() != 0 {
		t.Fatalf("nil set length must be 0")
	}
}

func TestLoadMetadata(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "spans.yaml")
	if err := os.WriteFile(path, []byte("spans:\n  - id: q\n    category: orange\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	metas, err := LoadMetadata(path)
	if err != nil {
		t.Fatalf("LoadMetadata: %v", err)
	}
	if len(metas) != 1 || metas[0].ID != "q" {
		t.Fatalf("unexpected metadata %v", metas)
	}
	if _, err := LoadMetadata(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
