package zearch

import (
	"bytes"
	"testing"
)

func TestDriverEmittedBucketsAreDisjoint(t *testing.T) {
	idx, err := NewInMemory(corpusA)
	if err != nil {
		t.Fatalf("NewInMemory: %v", err)
	}

	candidates, err := getCandidates(idx, "kef")
	if err != nil {
		t.Fatalf("getCandidates: %v", err)
	}

	rules := []RankingRule{NewWordRule(), NewTypoRule(), NewExactRule()}
	d := newDriver(rules, candidates, idx)
	buckets := d.run(len(corpusA))

	seen := make(map[Id]bool)
	for _, b := range buckets {
		it := b.Iterator()
		for it.HasNext() {
			id := it.Next()
			if seen[id] {
				t.Fatalf("document id %d emitted in more than one bucket", id)
			}
			seen[id] = true
		}
	}
}

func TestSearchLimitIsHonored(t *testing.T) {
	idx, err := NewInMemory(corpusA)
	if err != nil {
		t.Fatalf("NewInMemory: %v", err)
	}

	for _, limit := range []int{1, 2, 5} {
		ids, err := idx.Search(NewSearch("kefir").WithLimit(limit))
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		if len(ids) > limit {
			t.Fatalf("Search with limit %d returned %d results", limit, len(ids))
		}
	}
}

func TestSearchExplicitZeroLimitIsHonored(t *testing.T) {
	idx, err := NewInMemory(corpusA)
	if err != nil {
		t.Fatalf("NewInMemory: %v", err)
	}

	ids, err := idx.Search(NewSearch("kefir").WithLimit(0))
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("Search with explicit WithLimit(0) returned %d results, want 0", len(ids))
	}
}

func TestSearchRoundTripMatchesInMemory(t *testing.T) {
	direct, err := NewInMemory(corpusA)
	if err != nil {
		t.Fatalf("NewInMemory: %v", err)
	}

	var buf bytes.Buffer
	if err := Construct(corpusA, &buf); err != nil {
		t.Fatalf("Construct: %v", err)
	}
	loaded, err := FromBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}

	for _, q := range []string{"tamo", "tamo est", "kef", ""} {
		want, err := direct.Search(NewSearch(q))
		if err != nil {
			t.Fatalf("direct.Search(%q): %v", q, err)
		}
		got, err := loaded.Search(NewSearch(q))
		if err != nil {
			t.Fatalf("loaded.Search(%q): %v", q, err)
		}
		if len(got) != len(want) {
			t.Fatalf("query %q: got %v, want %v", q, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("query %q result[%d]: got %d, want %d", q, i, got[i], want[i])
			}
		}
	}
}
