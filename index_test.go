package zearch

import (
	"bytes"
	"testing"
)

func TestConstructAndFromBytesRoundTrip(t *testing.T) {
	docs := []string{"tamo le plus beau", "kefir le bon petit chien", "le petit kefir"}

	var buf bytes.Buffer
	if err := Construct(docs, &buf); err != nil {
		t.Fatalf("Construct: %v", err)
	}

	idx, err := FromBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}

	if idx.DocumentCount() != len(docs) {
		t.Fatalf("DocumentCount() = %d, want %d", idx.DocumentCount(), len(docs))
	}
	for i, want := range docs {
		got, ok := idx.GetDocument(Id(i))
		if !ok || got != want {
			t.Fatalf("GetDocument(%d) = (%q, %v), want (%q, true)", i, got, ok, want)
		}
	}
}

func TestGetDocumentOutOfRange(t *testing.T) {
	idx, err := NewInMemory([]string{"only doc"})
	if err != nil {
		t.Fatalf("NewInMemory: %v", err)
	}
	if _, ok := idx.GetDocument(99); ok {
		t.Fatalf("GetDocument with out-of-range id should report not found")
	}
}

func TestEmptyCorpusRoundTrip(t *testing.T) {
	idx, err := NewInMemory(nil)
	if err != nil {
		t.Fatalf("NewInMemory(nil): %v", err)
	}
	if idx.DocumentCount() != 0 {
		t.Fatalf("DocumentCount() = %d, want 0", idx.DocumentCount())
	}
	ids, err := idx.Search(NewSearch("anything"))
	if err != nil {
		t.Fatalf("Search on empty index: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("Search on empty index returned %v, want none", ids)
	}
}
