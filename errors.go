package zearch

import "errors"

// ═══════════════════════════════════════════════════════════════════════════════
// ERROR DEFINITIONS
// ═══════════════════════════════════════════════════════════════════════════════
// We define errors as package-level variables so they can be compared with ==
// (and matched with errors.Is once wrapped with extra context).
var (
	// ErrIO wraps a failure reading from or writing to the caller-supplied
	// io.Reader/io.Writer during serialization or deserialization.
	ErrIO = errors.New("io error")

	// ErrMalformedIndex is returned by FromBytes when the blob is truncated,
	// carries an invalid length prefix, contains non-UTF-8 document bytes,
	// or has an FST that fails to load.
	ErrMalformedIndex = errors.New("malformed index")

	// ErrEmptyRuleStack is returned by Index.Search, before any search work,
	// when the configured ranking-rule stack is empty. A search engine that runs no
	// ranking rule can't produce any bucket, so this is rejected up front
	// rather than silently returning nothing.
	ErrEmptyRuleStack = errors.New("ranking-rule stack must not be empty")

	// ErrExactNeedsPredecessor is returned by Index.Search, before any search
	// work, when Exact is the first rule in the stack. Exact reads its predecessor's
	// current_results to seed its buckets (see rule_exact.go); with no
	// predecessor there is nothing to seed from.
	ErrExactNeedsPredecessor = errors.New("exact ranking rule requires a predecessor rule")
)
