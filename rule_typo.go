package zearch

import "github.com/RoaringBitmap/roaring"

// ═══════════════════════════════════════════════════════════════════════════════
// TYPO RANKING RULE
// ═══════════════════════════════════════════════════════════════════════════════
// Within a set of documents that already agree on which query words they
// contain, Typo prefers fewer typos: it walks typo_allowed from 0 up to
// maxTypoBuckets, each step widening which distance buckets are fair game.
//
// Grounded on original_source/src/ranking_rules/typo.rs.
type typoRule struct {
	firstIteration bool
	typoAllowed    int
	maxTypos       int
	initialized    bool
}

// NewTypoRule constructs the Typo ranking rule. It takes no arguments: the
// bucket ceiling is maxTypoBuckets, fixed by WordCandidate.Typos's array
// size, so there is nothing to derive from the query's candidates. The
// returned rule is single-use: construct a new one per search.
func NewTypoRule() RankingRule {
	return &typoRule{firstIteration: true}
}

func (r *typoRule) Name() string { return "typo" }

func (r *typoRule) Next(_ RankingRule, _ *[]*WordCandidate, _ *Index) (*roaring.Bitmap, bool) {
	if !r.initialized {
		r.maxTypos = maxTypoBuckets
		r.initialized = true
	}

	if r.firstIteration {
		r.firstIteration = false
		return nil, false
	}

	r.typoAllowed++
	if r.maxTypos <= r.typoAllowed {
		r.typoAllowed = 0
		return roaring.New(), true
	}
	return nil, false
}

// CurrentResults unions each candidate's typo buckets [0, typoAllowed) and
// intersects across candidates. Note this is typoAllowed, not typoAllowed+1:
// the very first call (typoAllowed still 0) is always empty by construction
// and harmless (an empty bucket contributes nothing); by the time typoAllowed
// reaches N, driver.go's cleanup has already stripped every previously
// emitted id out of buckets [0, N), so the union only ever surfaces the
// documents whose tightest admissible typo bound is exactly N-1.
func (r *typoRule) CurrentResults(words []*WordCandidate) *roaring.Bitmap {
	unions := make([]*roaring.Bitmap, len(words))
	for i, w := range words {
		unions[i] = w.unionUpTo(r.typoAllowed)
	}
	return intersectAll(unions...)
}

func (r *typoRule) Cleanup(*roaring.Bitmap) {}
