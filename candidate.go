package zearch

import (
	"fmt"
	"strings"

	"github.com/RoaringBitmap/roaring"
	"github.com/blevesearch/vellum"
)

// maxTypoBuckets is the number of typo-distance buckets a WordCandidate
// carries: distances 0, 1, 2, and "3 or more" all collapse into index 3.
const maxTypoBuckets = 4

// WordCandidate is built fresh for every query word at the start of a
// search. It carries the original surface form, the normalized form, the
// word's positional index within the query, and one posting bitmap per typo
// distance 0..=3 (the union of every dictionary term at exactly that
// restricted Damerau-Levenshtein distance, capped at 3).
//
// The four bitmaps are not forced to be disjoint: a document reachable
// through two dictionary terms at different distances sits in both buckets
// until it is emitted, at which point the driver's cleanup (driver.go)
// removes it from every bucket of every candidate.
type WordCandidate struct {
	Original   string
	Normalized string
	Index      int
	Typos      [maxTypoBuckets]*roaring.Bitmap
}

// union returns the union of every typo bucket this candidate carries.
func (wc *WordCandidate) union() *roaring.Bitmap {
	return unionAll(wc.Typos[:]...)
}

// unionUpTo returns the union of typo buckets [0, n) — n is exclusive, so
// unionUpTo(1) is "zero typos only", unionUpTo(4) is everything.
func (wc *WordCandidate) unionUpTo(n int) *roaring.Bitmap {
	if n > len(wc.Typos) {
		n = len(wc.Typos)
	}
	return unionAll(wc.Typos[:n]...)
}

// documentFrequency is the number of distinct documents reachable through
// any of this candidate's typo buckets.
func (wc *WordCandidate) documentFrequency() uint64 {
	return wc.union().GetCardinality()
}

// getCandidates builds one WordCandidate per non-empty normalized word in
// input, in query order, per spec.md §4.4.
func getCandidates(idx *Index, input string) ([]*WordCandidate, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil, nil
	}
	lastIndex := len(fields) - 1

	classes := levenshteinClasses()

	candidates := make([]*WordCandidate, 0, len(fields))
	for i, original := range fields {
		normalized := normalize(original)
		if normalized == "" {
			continue
		}

		isLast := i == lastIndex
		maxDist := len([]rune(normalized)) / 3
		if maxDist > 3 {
			maxDist = 3
		}
		aut := classes[maxDist].build(normalized, isLast)

		wc := &WordCandidate{Original: original, Normalized: normalized, Index: i}
		if err := fillTypoBuckets(idx, wc, aut, isLast); err != nil {
			return nil, fmt.Errorf("building candidates for %q: %w", original, err)
		}
		candidates = append(candidates, wc)
	}

	return candidates, nil
}

// fillTypoBuckets streams the FST through aut, an admissibility filter that
// may over-approximate (it's a bounded-edit-distance automaton, not an exact
// one): for every matched term it recomputes the restricted
// Damerau-Levenshtein distance against wc.Normalized, clamps it to [0,3],
// and unions the term's posting bitmap into that bucket.
func fillTypoBuckets(idx *Index, wc *WordCandidate, aut vellum.Automaton, isLast bool) error {
	itr, err := idx.fst.Search(aut, nil, nil)
	if err == vellum.ErrIteratorDone {
		return nil
	}
	if err != nil {
		return err
	}

	for err == nil {
		termBytes, postingIdx := itr.Current()
		term := string(termBytes)

		d := exactDistance(wc.Normalized, term, isLast)
		d = clampDistance(d, maxTypoBuckets-1)

		if wc.Typos[d] == nil {
			wc.Typos[d] = roaring.New()
		}
		wc.Typos[d].Or(idx.bitmaps[postingIdx])

		err = itr.Next()
	}
	if err != nil && err != vellum.ErrIteratorDone {
		return err
	}
	return nil
}

// exactDistance computes the restricted Damerau-Levenshtein distance used to
// bucket a matched term. For the last query word the comparison truncates
// the term to the query word's length first, so that extra prefix-matched
// characters the user hasn't typed yet aren't charged as typos.
func exactDistance(normalized, term string, isLast bool) int {
	if !isLast {
		return restrictedDamerauLevenshtein(normalized, term)
	}

	rn := []rune(normalized)
	rt := []rune(term)
	n := len(rn)
	if len(rt) < n {
		n = len(rt)
	}
	return restrictedDamerauLevenshtein(normalized, string(rt[:n]))
}
