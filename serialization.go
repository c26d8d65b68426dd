package zearch

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/RoaringBitmap/roaring"
	"github.com/blevesearch/vellum"
)

// ═══════════════════════════════════════════════════════════════════════════════
// WIRE FORMAT
// ═══════════════════════════════════════════════════════════════════════════════
// Big-endian, length-prefixed, 4-byte prefixes throughout:
//
//	u32  document_count
//	  repeated document_count times:
//	    u32  doc_byte_len
//	    bytes[doc_byte_len]   (UTF-8)
//	u32  bitmap_count
//	  repeated bitmap_count times:
//	    bytes[...]            (a roaring.Bitmap, self-framing via WriteTo/ReadFrom)
//	u32  fst_byte_len
//	bytes[fst_byte_len]       (vellum FST byte image)
//
// Posting bitmaps don't carry their own length prefix: roaring's wire format
// is self-delimiting (ReadFrom consumes exactly the bytes the bitmap needs),
// so back-to-back bitmaps can be read without knowing their size in advance.
// ═══════════════════════════════════════════════════════════════════════════════

type wordOccurrence struct {
	id   Id
	word string
}

// Construct tokenizes and normalizes docs, builds the term dictionary and
// posting bitmaps, and writes the serialized index to w. It does not keep
// the result in memory as a queryable Index — use FromBytes (or the
// NewInMemory shortcut) for that.
//
// Construction never fails for semantic reasons; the only possible error is
// an I/O failure while writing, reported as ErrIO.
func Construct(docs []string, w io.Writer) error {
	occurrences := make([]wordOccurrence, 0, len(docs))
	for id, doc := range docs {
		for _, token := range strings.Fields(doc) {
			word := normalize(token)
			if word == "" {
				continue
			}
			occurrences = append(occurrences, wordOccurrence{id: Id(id), word: word})
		}
		slog.Debug("indexing document", slog.Int("docID", id))
	}

	// Stable sort by word: ties (repeated words within or across documents)
	// keep their relative order, so doc-ids arrive non-decreasing within a
	// word group as long as documents are walked in id order above.
	sort.SliceStable(occurrences, func(i, j int) bool {
		return occurrences[i].word < occurrences[j].word
	})

	var fstBuf bytes.Buffer
	builder, err := vellum.New(&fstBuf, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	var bitmaps []*roaring.Bitmap
	var lastWord string
	haveLast := false

	for _, occ := range occurrences {
		if !haveLast || occ.word != lastWord {
			bm := roaring.New()
			bm.Add(occ.id)
			bitmaps = append(bitmaps, bm)
			if err := builder.Insert([]byte(occ.word), uint64(len(bitmaps)-1)); err != nil {
				return fmt.Errorf("%w: %v", ErrIO, err)
			}
			lastWord = occ.word
			haveLast = true
		} else {
			bitmaps[len(bitmaps)-1].Add(occ.id)
		}
	}

	if err := builder.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	if err := writeDocuments(w, docs); err != nil {
		return err
	}
	if err := writeBitmaps(w, bitmaps); err != nil {
		return err
	}
	if err := writeFST(w, fstBuf.Bytes()); err != nil {
		return err
	}

	slog.Info("constructed index",
		slog.Int("documents", len(docs)),
		slog.Int("terms", len(bitmaps)),
		slog.Int("bitmaps", len(bitmaps)),
	)
	return nil
}

func writeDocuments(w io.Writer, docs []string) error {
	if err := binary.Write(w, binary.BigEndian, uint32(len(docs))); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	for _, doc := range docs {
		b := []byte(doc)
		if err := binary.Write(w, binary.BigEndian, uint32(len(b))); err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
		if _, err := w.Write(b); err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
	}
	return nil
}

func writeBitmaps(w io.Writer, bitmaps []*roaring.Bitmap) error {
	if err := binary.Write(w, binary.BigEndian, uint32(len(bitmaps))); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	for _, bm := range bitmaps {
		if _, err := bm.WriteTo(w); err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
	}
	return nil
}

func writeFST(w io.Writer, fstBytes []byte) error {
	if err := binary.Write(w, binary.BigEndian, uint32(len(fstBytes))); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if _, err := w.Write(fstBytes); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

// FromBytes parses the wire format produced by Construct into a queryable
// Index. The FST is loaded zero-copy over a sub-slice of buf; documents and
// bitmaps are copied into owned storage since they're decoded eagerly.
//
// FromBytes returns ErrMalformedIndex for truncated input, invalid UTF-8 in a
// document, or an FST that fails to load.
func FromBytes(buf []byte) (*Index, error) {
	r := bytes.NewReader(buf)

	docs, err := readDocuments(r)
	if err != nil {
		return nil, err
	}

	bitmaps, err := readBitmaps(r)
	if err != nil {
		return nil, err
	}

	fst, err := readFST(buf, r)
	if err != nil {
		return nil, err
	}

	return &Index{documents: docs, fst: fst, bitmaps: bitmaps}, nil
}

func readDocuments(r *bytes.Reader) ([]string, error) {
	var count uint32
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: reading document count: %v", ErrMalformedIndex, err)
	}

	docs := make([]string, count)
	for i := range docs {
		var n uint32
		if err := binary.Read(r, binary.BigEndian, &n); err != nil {
			return nil, fmt.Errorf("%w: reading document %d length: %v", ErrMalformedIndex, i, err)
		}
		b := make([]byte, n)
		if _, err := io.ReadFull(r, b); err != nil {
			return nil, fmt.Errorf("%w: reading document %d: %v", ErrMalformedIndex, i, err)
		}
		if !utf8.Valid(b) {
			return nil, fmt.Errorf("%w: document %d is not valid UTF-8", ErrMalformedIndex, i)
		}
		docs[i] = string(b)
	}
	return docs, nil
}

func readBitmaps(r *bytes.Reader) ([]*roaring.Bitmap, error) {
	var count uint32
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: reading bitmap count: %v", ErrMalformedIndex, err)
	}

	bitmaps := make([]*roaring.Bitmap, count)
	for i := range bitmaps {
		bm := roaring.New()
		if _, err := bm.ReadFrom(r); err != nil {
			return nil, fmt.Errorf("%w: reading bitmap %d: %v", ErrMalformedIndex, i, err)
		}
		bitmaps[i] = bm
	}
	return bitmaps, nil
}

func readFST(buf []byte, r *bytes.Reader) (*vellum.FST, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, fmt.Errorf("%w: reading fst length: %v", ErrMalformedIndex, err)
	}

	// The remaining bytes of buf (after everything consumed by r so far) are
	// the FST image. Slice it directly out of the caller's buffer instead of
	// copying: vellum.Load keeps a reference to this slice, giving callers a
	// zero-copy load when buf outlives the Index.
	offset := len(buf) - r.Len()
	if uint64(offset)+uint64(n) > uint64(len(buf)) {
		return nil, fmt.Errorf("%w: fst length %d exceeds remaining buffer", ErrMalformedIndex, n)
	}
	fstBytes := buf[offset : offset+int(n)]

	fst, err := vellum.Load(fstBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: loading fst: %v", ErrMalformedIndex, err)
	}
	return fst, nil
}

// NewInMemory is a convenience that constructs and immediately loads an
// index, without the caller having to manage an intermediate buffer.
func NewInMemory(docs []string) (*Index, error) {
	var buf bytes.Buffer
	if err := Construct(docs, &buf); err != nil {
		return nil, err
	}
	return FromBytes(buf.Bytes())
}
