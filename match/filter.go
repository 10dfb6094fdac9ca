package match

// FilterSet is an immutable set of tokens that may never START a match.
// Membership is checked only at start positions; a filtered token is
// still matchable as a non-initial token of a longer match. Tokens must
// already be normalized the same way the tokenizer normalizes document
// tokens.
type FilterSet struct {
	tokens map[string]struct{}
}

// NewFilterSet builds a filter set from tokens. Duplicates are collapsed.
func NewFilterSet(tokens []string) *FilterSet {
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		set[tok] = struct{}{}
	}
	return &FilterSet{tokens: set}
}

// Contains reports membership. A nil FilterSet contains nothing.
func (f *FilterSet) Contains(tok string) bool {
	if f == nil {
		return false
	}
	_, ok := f.tokens[tok]
	return ok
}

// Len returns the number of tokens in the set. Nil-safe.
func (f *FilterSet) Len() int {
	if f == nil {
		return 0
	}
	return len(f.tokens)
}
