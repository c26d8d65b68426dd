package zearch

// ═══════════════════════════════════════════════════════════════════════════════
// TEXT NORMALIZATION
// ═══════════════════════════════════════════════════════════════════════════════
// normalize canonicalizes a single already-split word (candidate.go and
// serialization.go both strings.Fields a document or query before calling
// this) so that the index and the query use the same vocabulary regardless
// of case, a small set of Latin-1 accents, or stray punctuation.
//
// PIPELINE (applied independently per character, left to right):
//  1. ASCII fold: 'A'-'Z' -> 'a'-'z'. Accented letters are untouched by this
//     step (it's a plain ASCII fold, not a Unicode one) so the accent table
//     below must match against the original, unfolded rune.
//  2. Accent fold: {á â à ä} -> a, {é ê è ë} -> e, {í î ì ï} -> i,
//     {ó ô ò ö} -> o, {ú û ù ü} -> u.
//  3. Drop: ASCII punctuation, non-ASCII-graphic runes (which includes
//     every non-ASCII character — accents not in the table above,
//     ç/ñ/ß, CJK, emoji, ... — and, since it is not ASCII-graphic either,
//     plain space), and ASCII control runes.
//  4. Everything else passes through unchanged — only ASCII letters and
//     digits can survive step 3.
//
// normalize is deterministic and idempotent: normalize(normalize(s)) == normalize(s).
// It never fails — unrecognized runes are either kept or dropped, never an error.
func normalize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if folded, ok := foldAccent(r); ok {
			out = append(out, folded)
			continue
		}

		if r >= 'A' && r <= 'Z' {
			r = r + ('a' - 'A')
		}

		if isDropped(r) {
			continue
		}

		out = append(out, r)
	}
	return string(out)
}

// foldAccent maps the fixed set of Latin-1 accented vowels this system cares
// about to their unaccented ASCII equivalent. Anything else reports ok=false
// — including the uppercase forms (É, Â, ...): original_source/src/lib.rs
// lowercases with to_ascii_lowercase before this match, which is a no-op on
// non-ASCII runes, so an uppercase accented letter never matches there
// either and is dropped by the graphic-rune filter below instead of folded.
// This is intentional, not an oversight.
func foldAccent(r rune) (rune, bool) {
	switch r {
	case 'á', 'â', 'à', 'ä':
		return 'a', true
	case 'é', 'ê', 'è', 'ë':
		return 'e', true
	case 'í', 'î', 'ì', 'ï':
		return 'i', true
	case 'ó', 'ô', 'ò', 'ö':
		return 'o', true
	case 'ú', 'û', 'ù', 'ü':
		return 'u', true
	default:
		return 0, false
	}
}

// isDropped mirrors the original's `c.is_ascii_punctuation() ||
// !c.is_ascii_graphic() || c.is_ascii_control()` check rune for rune: the
// ASCII-specific predicates below, not their full-Unicode counterparts, so
// any rune outside ASCII (not just unmapped accents) is dropped via
// !isASCIIGraphic.
func isDropped(r rune) bool {
	return isASCIIPunctuation(r) || !isASCIIGraphic(r) || isASCIIControl(r)
}

// isASCIIGraphic matches Rust's char::is_ascii_graphic: printable ASCII,
// excluding space.
func isASCIIGraphic(r rune) bool {
	return r >= '!' && r <= '~'
}

// isASCIIPunctuation matches Rust's char::is_ascii_punctuation: the six
// printable-ASCII ranges that aren't letters or digits.
func isASCIIPunctuation(r rune) bool {
	switch {
	case r >= '!' && r <= '/':
		return true
	case r >= ':' && r <= '@':
		return true
	case r >= '[' && r <= '`':
		return true
	case r >= '{' && r <= '~':
		return true
	default:
		return false
	}
}

// isASCIIControl matches Rust's char::is_ascii_control: C0 controls and DEL.
func isASCIIControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}
