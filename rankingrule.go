package zearch

import "github.com/RoaringBitmap/roaring"

// ═══════════════════════════════════════════════════════════════════════════════
// RANKING-RULE INTERFACE
// ═══════════════════════════════════════════════════════════════════════════════
// A RankingRule is one stage of the cascading bucket sort described in
// driver.go. Rust's original modeled Next's result as
// ControlFlow<RoaringBitmap, ()>; Go has no such enum, so Next instead
// returns (bucket, brk bool) — brk == false is Continue (the rule has
// nothing to emit yet, defer to the next rule in the stack), brk == true
// carries a Break bucket to emit (an empty bucket on Break signals
// exhaustion at this level, exactly as in the original).
// ═══════════════════════════════════════════════════════════════════════════════
type RankingRule interface {
	// Name is a debug identifier, e.g. "word", "typo", "exact".
	Name() string

	// Next advances the rule by one step. It may mutate words. prev is the
	// rule immediately before this one in the stack (nil if this rule is
	// first).
	Next(prev RankingRule, words *[]*WordCandidate, idx *Index) (bucket *roaring.Bitmap, brk bool)

	// CurrentResults is the bucket this rule would emit right now without
	// advancing. Used by the driver when this rule is the tail of the stack.
	CurrentResults(words []*WordCandidate) *roaring.Bitmap

	// Cleanup subtracts an emitted bucket from whatever internal caches this
	// rule holds.
	Cleanup(used *roaring.Bitmap)
}
