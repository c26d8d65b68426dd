// ═══════════════════════════════════════════════════════════════════════════════
// SEARCH — query builder and entry points
// ═══════════════════════════════════════════════════════════════════════════════
package zearch

import "fmt"

// Search is a builder for one query: the input string, a result limit, and a
// ranking-rule stack. Construct it with NewSearch and configure it with
// WithLimit / WithRules before passing it to Index.Search.
type Search struct {
	input    string
	limit    int
	limitSet bool
	rules    []RankingRule
}

// NewSearch creates a Search for input with the default limit (10) and the
// default rule stack [Word, Typo, Exact].
func NewSearch(input string) *Search {
	return &Search{input: input}
}

// WithLimit overrides the default result limit. A limit of 0 means "return
// nothing"; it is honored exactly, not silently replaced by the default —
// only a Search that never calls WithLimit gets the default of 10.
func (s *Search) WithLimit(n int) *Search {
	s.limit = n
	s.limitSet = true
	return s
}

// WithRules overrides the default rule stack. Order matters: rules earlier
// in the stack take precedence. Each rule is a stateful, single-use cursor
// (NewWordRule, NewTypoRule, and NewExactRule all return one) — construct a
// fresh stack per Search, the same way Search itself builds a fresh default
// stack on every call; reusing a rule value across two searches carries over
// cursor state (sort position, typo bucket, exact bucket) from the first.
func (s *Search) WithRules(rules ...RankingRule) *Search {
	if rules == nil {
		rules = []RankingRule{}
	}
	s.rules = rules
	return s
}

// validate checks the rule stack the caller configured, per spec.md §9's
// resolution of the Exact-without-predecessor open question: rather than
// panicking mid-search (the original's prev.unwrap() would), a stack whose
// first rule is Exact is rejected here. Index.Search calls validate before
// doing any search work.
func (s *Search) validate() error {
	if s.rules == nil {
		return nil
	}
	if len(s.rules) == 0 {
		return ErrEmptyRuleStack
	}
	if _, ok := s.rules[0].(*exactRule); ok {
		return ErrExactNeedsPredecessor
	}
	return nil
}

// Search runs s against idx and returns up to s.limit document ids, in
// ranking order.
func (idx *Index) Search(s *Search) ([]Id, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	limit := s.limit
	if !s.limitSet {
		limit = 10
	} else if limit < 0 {
		limit = 0
	}

	candidates, err := getCandidates(idx, s.input)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", s.input, err)
	}
	if len(candidates) == 0 || limit == 0 {
		return nil, nil
	}

	rules := s.rules
	if rules == nil {
		rules = []RankingRule{NewWordRule(), NewTypoRule(), NewExactRule()}
	}

	d := newDriver(rules, candidates, idx)
	buckets := d.run(limit)

	ids := make([]Id, 0, limit)
	for _, b := range buckets {
		it := b.Iterator()
		for it.HasNext() && len(ids) < limit {
			ids = append(ids, it.Next())
		}
		if len(ids) >= limit {
			break
		}
	}
	return ids, nil
}

// SearchStrings runs s against idx and returns the matched document bodies
// instead of raw ids.
func (idx *Index) SearchStrings(s *Search) ([]string, error) {
	ids, err := idx.Search(s)
	if err != nil {
		return nil, err
	}

	docs := make([]string, 0, len(ids))
	for _, id := range ids {
		if doc, ok := idx.GetDocument(id); ok {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}
