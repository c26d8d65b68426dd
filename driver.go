package zearch

import "github.com/RoaringBitmap/roaring"

// ═══════════════════════════════════════════════════════════════════════════════
// DRIVER — cascading bucket sort with backtracking
// ═══════════════════════════════════════════════════════════════════════════════
// The driver walks an ordered rule stack left to right. Each rule either
// defers (Continue, descend to the next rule) or emits a bucket (Break).
// When the tail rule defers, it is asked for its current results directly
// instead of being pushed further, since there is nothing after it to
// delegate to. An empty Break backtracks: the rule that produced it is
// exhausted at the current candidate set, so control returns to the rule
// before it, which will narrow the candidate set further (Word drops a
// word, Typo raises its allowance) and the cascade resumes from there.
//
// Grounded on spec.md §4.6 and original_source/src/search.rs.
type driver struct {
	rules      []RankingRule
	candidates []*WordCandidate
	idx        *Index
	cursor     int
}

func newDriver(rules []RankingRule, candidates []*WordCandidate, idx *Index) *driver {
	return &driver{rules: rules, candidates: candidates, idx: idx}
}

// run executes the cascade until the cumulative cardinality of emitted
// buckets reaches limit or the rule stack is exhausted, and returns the
// buckets in emission order.
func (d *driver) run(limit int) []*roaring.Bitmap {
	var res []*roaring.Bitmap
	total := uint64(0)

	for total < uint64(limit) {
		var prev RankingRule
		if d.cursor > 0 {
			prev = d.rules[d.cursor-1]
		}

		bucket, brk := d.rules[d.cursor].Next(prev, &d.candidates, d.idx)

		if !brk {
			if d.cursor == len(d.rules)-1 {
				bucket := d.rules[d.cursor].CurrentResults(d.candidates)
				d.cleanup(bucket)
				res = append(res, bucket)
				total += bucket.GetCardinality()
				continue
			}
			d.cursor++
			continue
		}

		if bucket.IsEmpty() {
			if d.cursor == 0 {
				break
			}
			d.cursor--
			res = append(res, bucket)
			continue
		}

		d.cleanup(bucket)
		res = append(res, bucket)
		total += bucket.GetCardinality()
	}

	return res
}

// cleanup subtracts an emitted bucket from every candidate's typo bitmaps
// and from every rule's internal caches, keeping emitted buckets disjoint.
func (d *driver) cleanup(bucket *roaring.Bitmap) {
	for _, c := range d.candidates {
		for _, typos := range c.Typos {
			subtractInPlace(typos, bucket)
		}
	}
	for _, r := range d.rules {
		r.Cleanup(bucket)
	}
}
