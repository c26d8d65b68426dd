package zearch

import (
	"sort"
	"strings"

	"github.com/RoaringBitmap/roaring"
)

// ═══════════════════════════════════════════════════════════════════════════════
// EXACT RANKING RULE
// ═══════════════════════════════════════════════════════════════════════════════
// Exact is the final tie-breaker: it promotes results whose surface-form
// tokens (before normalization) closely match the surface-form query words,
// regardless of normalization. This catches cases where normalization masks
// an accent mismatch a human would still rank lower.
//
// Exact is expensive per document (it scans the document's own text and
// recomputes edit distances against it), so it is constrained to run only
// over the narrow bucket its predecessor has already produced.
//
// Grounded on original_source/src/ranking_rules/exact.rs.
type exactRule struct {
	buckets  []*roaring.Bitmap
	computed bool
}

// NewExactRule constructs the Exact ranking rule. It takes no arguments: its
// buckets are computed lazily on the first Next call, and again on the first
// Next call after it has reported exhaustion, from whatever predecessor rule
// and candidates the driver passes in at that point. The returned rule is
// single-use: construct a new one per search.
func NewExactRule() RankingRule {
	return &exactRule{}
}

func (r *exactRule) Name() string { return "exact" }

func (r *exactRule) Next(prev RankingRule, words *[]*WordCandidate, idx *Index) (*roaring.Bitmap, bool) {
	if !r.computed {
		if prev == nil {
			// Rejected by Index.Search before the search runs (see
			// search.go); this is a defensive backstop, not a reachable path.
			return roaring.New(), true
		}
		r.buckets = r.computeBuckets(prev.CurrentResults(*words), *words, idx)
		r.computed = true
	}

	if len(r.buckets) == 0 {
		// Exhausted: the next Next call (after the driver backtracks and the
		// predecessor narrows or widens its results) recomputes the buckets.
		r.computed = false
		return roaring.New(), true
	}

	bucket := r.buckets[len(r.buckets)-1]
	r.buckets = r.buckets[:len(r.buckets)-1]
	return bucket, true
}

// computeBuckets scans every document id in current, measuring how far its
// surface-form tokens are from the query's surface-form words at matching
// positions, and sorts the ids into up to maxTypoBuckets distance buckets.
// Empty buckets are dropped; the result is reversed so the caller can pop
// from the tail to get lowest-distance-first.
func (r *exactRule) computeBuckets(current *roaring.Bitmap, words []*WordCandidate, idx *Index) []*roaring.Bitmap {
	ordered := make([]*WordCandidate, len(words))
	copy(ordered, words)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Index < ordered[j].Index })

	buckets := make([]*roaring.Bitmap, maxTypoBuckets)
	for i := range buckets {
		buckets[i] = roaring.New()
	}

	it := current.Iterator()
	for it.HasNext() {
		id := it.Next()
		doc, ok := idx.GetDocument(id)
		if !ok {
			continue
		}

		distance := 0
		next := 0
		for pos, token := range strings.Fields(doc) {
			if next >= len(ordered) {
				break
			}
			if ordered[next].Index != pos {
				continue
			}
			distance += restrictedDamerauLevenshtein(ordered[next].Original, token)
			next++
		}

		buckets[clampDistance(distance, maxTypoBuckets-1)].Add(id)
	}

	nonEmpty := buckets[:0]
	for _, b := range buckets {
		if !b.IsEmpty() {
			nonEmpty = append(nonEmpty, b)
		}
	}
	for i, j := 0, len(nonEmpty)-1; i < j; i, j = i+1, j-1 {
		nonEmpty[i], nonEmpty[j] = nonEmpty[j], nonEmpty[i]
	}
	return nonEmpty
}

func (r *exactRule) CurrentResults(_ []*WordCandidate) *roaring.Bitmap {
	if len(r.buckets) == 0 {
		return roaring.New()
	}
	return r.buckets[len(r.buckets)-1].Clone()
}

func (r *exactRule) Cleanup(used *roaring.Bitmap) {
	for _, b := range r.buckets {
		subtractInPlace(b, used)
	}
}
