package zearch

// restrictedDamerauLevenshtein computes the restricted (a.k.a. "optimal
// string alignment") Damerau-Levenshtein distance between a and b: insertion,
// deletion, substitution, and a single transposition of adjacent characters
// per pair of positions (no further transpositions are allowed to touch a
// position once it has been used in one).
//
// No library in the examples pack implements this variant —
// github.com/agnivade/levenshtein (referenced by other_examples/manifests/
// covrom-bm25s and .../thirawat27-wut) only computes plain Levenshtein
// distance, with no transposition support — so this is a direct,
// dependency-free implementation, grounded on the same algorithm the
// original Rust implementation reached for via the text_distance crate's
// `DamerauLevenshtein{restricted: true}`.
func restrictedDamerauLevenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)

	d := make([][]int, la+1)
	for i := range d {
		d[i] = make([]int, lb+1)
	}
	for i := 0; i <= la; i++ {
		d[i][0] = i
	}
	for j := 0; j <= lb; j++ {
		d[0][j] = j
	}

	for i := 1; i <= la; i++ {
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			d[i][j] = min3(
				d[i-1][j]+1,   // deletion
				d[i][j-1]+1,   // insertion
				d[i-1][j-1]+cost, // substitution (or match)
			)

			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				if t := d[i-2][j-2] + 1; t < d[i][j] {
					d[i][j] = t
				}
			}
		}
	}

	return d[la][lb]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func clampDistance(d, max int) int {
	if d > max {
		return max
	}
	if d < 0 {
		return 0
	}
	return d
}
