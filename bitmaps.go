package zearch

import "github.com/RoaringBitmap/roaring"

// ═══════════════════════════════════════════════════════════════════════════════
// BITMAP HELPERS
// ═══════════════════════════════════════════════════════════════════════════════
// Small, shared wrappers around roaring bitmap arithmetic, reshaped from the
// boolean-query combinators in the teacher's QueryBuilder (Execute's AND/OR
// folding, negateBitmap's use of AndNot) into the primitives the ranking-rule
// cascade needs: union a word's typo buckets, intersect across query words,
// subtract an emitted bucket during cleanup. There is no free-form boolean
// query surface here (spec.md has no phrase/boolean query language), so the
// fluent builder itself isn't carried over — just the bitmap-combining core.
// ═══════════════════════════════════════════════════════════════════════════════

// unionAll returns the union of every non-nil bitmap in bms. A nil entry is
// treated as empty. Returns an empty (non-nil) bitmap if bms is empty or
// entirely nil.
func unionAll(bms ...*roaring.Bitmap) *roaring.Bitmap {
	out := roaring.New()
	for _, bm := range bms {
		if bm != nil {
			out.Or(bm)
		}
	}
	return out
}

// intersectAll returns the intersection of bms. A nil entry is treated as
// empty, which makes the whole intersection empty. Returns an empty bitmap
// for a zero-length input.
func intersectAll(bms ...*roaring.Bitmap) *roaring.Bitmap {
	if len(bms) == 0 {
		return roaring.New()
	}
	if bms[0] == nil {
		return roaring.New()
	}
	out := bms[0].Clone()
	for _, bm := range bms[1:] {
		if bm == nil {
			return roaring.New()
		}
		out.And(bm)
	}
	return out
}

// subtractInPlace removes every id in used from target, if target is non-nil.
func subtractInPlace(target, used *roaring.Bitmap) {
	if target == nil || used == nil {
		return
	}
	target.AndNot(used)
}
