package zearch

import "sync"

// ═══════════════════════════════════════════════════════════════════════════════
// BOUNDED-EDIT-DISTANCE AUTOMATON
// ═══════════════════════════════════════════════════════════════════════════════
// levenshteinAutomaton implements vellum.Automaton so the FST streamer in
// candidate.go can prune its traversal instead of visiting every term in the
// dictionary. State is the current row of the classic Levenshtein DP table,
// interned into small integers the way vellum's Automaton interface expects
// (vellum represents automaton state as a plain int, not a generic type).
//
// Two flavors share this implementation:
//   - plain: accepts a term iff its full-string edit distance to the target
//     is within maxDist.
//   - prefix: accepts a term iff SOME prefix of it is within maxDist of the
//     target — used for the last query word, where the user may still be typing.
//
// Construction only interns the start state; further DP rows are computed
// and interned as the FST traversal feeds bytes through Accept. The shared,
// process-wide part is the four per-radius automatonClass configurations in
// levenshteinClasses below, each of which holds only its radius.
type levenshteinAutomaton struct {
	target  []rune
	maxDist int
	prefix  bool

	states []levRow
	seen   map[string]int
}

type levRow struct {
	row []int
}

func newLevenshteinAutomaton(target string, maxDist int, prefix bool) *levenshteinAutomaton {
	t := []rune(target)
	row := make([]int, len(t)+1)
	for i := range row {
		row[i] = i
	}

	a := &levenshteinAutomaton{
		target:  t,
		maxDist: maxDist,
		prefix:  prefix,
		seen:    make(map[string]int),
	}
	a.intern(row)
	return a
}

func (a *levenshteinAutomaton) intern(row []int) int {
	key := string(rowBytes(row))
	if idx, ok := a.seen[key]; ok {
		return idx
	}
	idx := len(a.states)
	a.states = append(a.states, levRow{row: row})
	a.seen[key] = idx
	return idx
}

func rowBytes(row []int) []byte {
	b := make([]byte, len(row))
	for i, v := range row {
		if v > 255 {
			v = 255
		}
		b[i] = byte(v)
	}
	return b
}

func rowMin(row []int) int {
	m := row[0]
	for _, v := range row[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Start implements vellum.Automaton.
func (a *levenshteinAutomaton) Start() int { return 0 }

// IsMatch implements vellum.Automaton: whether the current state is an
// accepting state for a complete term. In prefix mode Accept never leaves a
// matching state, so this also holds for every extension of a matching prefix.
func (a *levenshteinAutomaton) IsMatch(state int) bool {
	row := a.states[state].row
	return row[len(row)-1] <= a.maxDist
}

// CanMatch implements vellum.Automaton: whether any continuation from this
// state could still lead to a match, used to prune the FST traversal.
func (a *levenshteinAutomaton) CanMatch(state int) bool {
	return rowMin(a.states[state].row) <= a.maxDist
}

// WillAlwaysMatch implements vellum.Automaton: true only in prefix mode, once
// the bytes consumed so far are within maxDist of the whole target.
func (a *levenshteinAutomaton) WillAlwaysMatch(state int) bool {
	return a.prefix && a.IsMatch(state)
}

// Accept implements vellum.Automaton: advance the DP row by one input byte
// and return the (interned) resulting state. In prefix mode a matching state
// is kept as is, since every continuation of a matching prefix matches.
func (a *levenshteinAutomaton) Accept(state int, b byte) int {
	prev := a.states[state].row
	n := len(prev)
	if a.prefix && prev[n-1] <= a.maxDist {
		return state
	}

	row := make([]int, n)
	row[0] = prev[0] + 1
	for j := 1; j < n; j++ {
		cost := 1
		if a.target[j-1] == rune(b) {
			cost = 0
		}
		del := row[j-1] + 1
		ins := prev[j] + 1
		sub := prev[j-1] + cost
		row[j] = min3(del, ins, sub)
	}

	return a.intern(row)
}

// ═══════════════════════════════════════════════════════════════════════════════
// SHARED AUTOMATON CLASSES (spec.md §9: "Shared automaton builders")
// ═══════════════════════════════════════════════════════════════════════════════
// automatonClass fixes a radius (0..3); both the plain and prefix automata for
// that radius share this one process-wide configuration, built once, lazily,
// and never mutated again.
type automatonClass struct {
	maxDist int
}

func (c *automatonClass) build(word string, prefix bool) *levenshteinAutomaton {
	return newLevenshteinAutomaton(word, c.maxDist, prefix)
}

var (
	automatonClassesOnce sync.Once
	automatonClasses     [4]*automatonClass
)

// levenshteinClasses returns the four process-wide automaton classes for
// radii 0..3, building them on first use.
func levenshteinClasses() *[4]*automatonClass {
	automatonClassesOnce.Do(func() {
		for i := range automatonClasses {
			automatonClasses[i] = &automatonClass{maxDist: i}
		}
	})
	return &automatonClasses
}
