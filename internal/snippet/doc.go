// Package snippet implements snippet definitions and the trigger matching
// that decides when they fire.
//
// A Definition is immutable after construction. Matching against the text
// before the cursor comes in two flavors: Matches decides a full match for
// expansion, CouldMatch approximates whether some completion of the typed
// text could still match, for incremental trigger listing. Both return an
// explicit MatchResult; the result threads into context evaluation and
// Launch rather than being read back from hidden state.
//
// Trigger modes are mutually exclusive: regex ('r'), word-boundary ('w'),
// in-word ('i'), or exact whole-word by default. The 'b' flag is an
// orthogonal post-filter restricting matches to otherwise-blank line starts.
// Unrecognized flags are inert.
package snippet
