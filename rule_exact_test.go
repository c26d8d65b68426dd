package zearch

import (
	"testing"

	"github.com/RoaringBitmap/roaring"
)

// stubRule is a minimal RankingRule that always reports a fixed
// CurrentResults, standing in for whatever rule precedes Exact.
type stubRule struct{ results *roaring.Bitmap }

func (s *stubRule) Name() string { return "stub" }
func (s *stubRule) Next(RankingRule, *[]*WordCandidate, *Index) (*roaring.Bitmap, bool) {
	return roaring.New(), true
}
func (s *stubRule) CurrentResults([]*WordCandidate) *roaring.Bitmap { return s.results }
func (s *stubRule) Cleanup(*roaring.Bitmap)                         {}

func TestExactRuleBucketsBySurfaceDistance(t *testing.T) {
	docs := []string{
		"kefir le bon petit chien", // id 0: exact match on "kefir"
		"kefur le petit chat",      // id 1: one substitution away from "kefir"
		"kefair le gros chat",      // id 2: one insertion away from "kefir"
	}
	idx, err := NewInMemory(docs)
	if err != nil {
		t.Fatalf("NewInMemory: %v", err)
	}

	prev := &stubRule{results: bm(0, 1, 2)}
	words := []*WordCandidate{{Original: "kefir", Normalized: "kefir", Index: 0}}

	rule := NewExactRule()
	bucket, brk := rule.Next(prev, &words, idx)
	if !brk {
		t.Fatalf("first Next() should Break with the nearest bucket")
	}
	mustEqual(t, "distance-0 bucket", bucket, bm(0))

	bucket, brk = rule.Next(prev, &words, idx)
	if !brk {
		t.Fatalf("second Next() should Break")
	}
	mustEqual(t, "distance-1 bucket", bucket, bm(1, 2))

	bucket, brk = rule.Next(prev, &words, idx)
	if !brk || !bucket.IsEmpty() {
		t.Fatalf("third Next() should Break(empty), got brk=%v bucket=%v", brk, bucket.ToArray())
	}
}
