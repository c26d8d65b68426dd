// Package zearch implements an in-memory full-text search index for short
// textual documents (place names, product titles, and the like).
//
// ═══════════════════════════════════════════════════════════════════════════════
// WHAT IS THIS?
// ═══════════════════════════════════════════════════════════════════════════════
// A caller hands Construct an ordered list of documents and gets back a
// serialized blob. Later, FromBytes loads that blob and Search answers a
// free-form query with a ranked list of document ids.
//
// Under the hood the index is three parallel artifacts:
//
//	documents []string        the original strings, indexed by Id
//	fst       *vellum.FST     normalized word -> posting index (sorted dictionary)
//	bitmaps   []*roaring.Bitmap  posting index -> set of document ids containing that word
//
// A query word is looked up in the FST within a bounded edit distance; every
// matching term's bitmap is unioned into a typo-distance bucket; a cascade of
// ranking rules (Word, Typo, Exact) then bucket-sorts the candidate documents.
// See candidate.go, driver.go, and rule_*.go for the rest of the pipeline.
// ═══════════════════════════════════════════════════════════════════════════════
package zearch

import (
	"github.com/RoaringBitmap/roaring"
	"github.com/blevesearch/vellum"
)

// Id identifies a document by its position in the corpus passed to Construct.
// Ids are dense and assigned in insertion order; they never change after
// construction.
type Id = uint32

// Index is the read-only, queryable result of Construct + FromBytes (or the
// NewInMemory shortcut). It owns its documents and bitmaps; its FST bytes may
// be a borrowed view into a caller-supplied buffer (see FromBytes).
//
// Index never mutates after construction, so concurrent callers may share one
// Index and issue Search concurrently without any locking: every intermediate
// structure a search builds (WordCandidate slices, rule instances, result
// buckets) lives on that call's stack.
type Index struct {
	documents []string
	fst       *vellum.FST
	bitmaps   []*roaring.Bitmap
}

// GetDocument returns the document stored at id, or ("", false) if id is out
// of range. An out-of-range id is never an error: it's the "not found"
// sentinel spec'd for this operation.
func (idx *Index) GetDocument(id Id) (string, bool) {
	if int(id) >= len(idx.documents) {
		return "", false
	}
	return idx.documents[id], true
}

// DocumentCount returns the number of documents held by the index.
func (idx *Index) DocumentCount() int {
	return len(idx.documents)
}
