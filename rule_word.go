package zearch

import (
	"sort"

	"github.com/RoaringBitmap/roaring"
)

// ═══════════════════════════════════════════════════════════════════════════════
// WORD RANKING RULE
// ═══════════════════════════════════════════════════════════════════════════════
// Word prefers results that contain more of the query words: it drops the
// most common (highest-document-frequency) query word first when no result
// contains all of them.
//
// Grounded on original_source/src/ranking_rules/word.rs. Next pops from the
// tail of a list sorted ascending by document frequency, which removes the
// MOST frequent word — the original's doc comment claims the opposite, but
// the behavior documented here is what the test scenario in that file (and
// spec.md §8 scenario 3 / §9) actually exercises.
type wordRule struct {
	firstIteration bool
	sorted         bool
}

// NewWordRule constructs the Word ranking rule. It takes no candidates: the
// ascending-document-frequency sort it needs happens lazily on the first
// Next call, against whatever slice the driver actually threads through —
// so a rule built here and handed to Search.WithRules works against the
// real per-query candidates, not a disconnected placeholder. The returned
// rule is single-use: construct a new one per search.
func NewWordRule() RankingRule {
	return &wordRule{firstIteration: true}
}

func (r *wordRule) Name() string { return "word" }

func (r *wordRule) Next(_ RankingRule, words *[]*WordCandidate, _ *Index) (*roaring.Bitmap, bool) {
	if !r.sorted {
		sort.SliceStable(*words, func(i, j int) bool {
			return (*words)[i].documentFrequency() < (*words)[j].documentFrequency()
		})
		r.sorted = true
	}

	if r.firstIteration {
		r.firstIteration = false
		return nil, false
	}

	*words = (*words)[:len(*words)-1]
	if len(*words) == 0 {
		return roaring.New(), true
	}
	return nil, false
}

func (r *wordRule) CurrentResults(words []*WordCandidate) *roaring.Bitmap {
	unions := make([]*roaring.Bitmap, len(words))
	for i, w := range words {
		unions[i] = w.union()
	}
	return intersectAll(unions...)
}

func (r *wordRule) Cleanup(*roaring.Bitmap) {}
