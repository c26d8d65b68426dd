package zearch

import "testing"

// normalize operates on a single already-split word (see candidate.go and
// serialization.go, which both strings.Fields a document or query before
// calling it); a bare space is itself !is_ascii_graphic and so is dropped
// just like any other non-graphic rune, matching
// original_source/src/lib.rs:138.
func TestNormalizeLowercasesAndFoldsAccents(t *testing.T) {
	for word, want := range map[string]string{"Tàmo": "tamo", "està": "esta"} {
		if got := normalize(word); got != want {
			t.Fatalf("normalize(%q): got %q, want %q", word, got, want)
		}
	}
}

// TestNormalizeDropsUppercaseAccents documents a real original_source quirk,
// not a bug: Rust's c.to_ascii_lowercase() is a no-op on non-ASCII runes, so
// the accent-fold switch in original_source/src/lib.rs only ever matches
// lowercase accented forms — an uppercase accented rune falls straight to
// the catch-all !is_ascii_graphic() arm and is dropped, never folded.
func TestNormalizeDropsUppercaseAccents(t *testing.T) {
	got := normalize("Éstà")
	want := "sta"
	if got != want {
		t.Fatalf("normalize: got %q, want %q", got, want)
	}
}

func TestNormalizeDropsPunctuation(t *testing.T) {
	got := normalize("c'est,!")
	want := "cest"
	if got != want {
		t.Fatalf("normalize: got %q, want %q", got, want)
	}
}

func TestNormalizeDropsSpaceLikeAnyOtherNonGraphicRune(t *testing.T) {
	got := normalize("a b")
	want := "ab"
	if got != want {
		t.Fatalf("normalize: got %q, want %q", got, want)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{"Tamo", "kéfirounet", "LE PLUS BEAU", "", "c'est-à-dire", "123"}
	for _, s := range inputs {
		once := normalize(s)
		twice := normalize(once)
		if once != twice {
			t.Fatalf("normalize(%q) not idempotent: %q then %q", s, once, twice)
		}
	}
}
