package expand

import "github.com/poiesic/gazetteer/core"

// Options selects which variants Expand generates beyond the term itself.
type Options struct {
	Abbreviations bool
	NGrams        bool
}

// Variant is one token sequence to insert into the trie, classified by
// how it was derived from the original term.
type Variant struct {
	Tokens []string
	Type   core.MatchType
}

// Expand turns one tokenized dictionary term into the set of token
// sequences to insert. The original sequence is always first, tagged
// Full. Single-token terms are never expanded.
func Expand(tokens []string, opts Options) []Variant {
	variants := []Variant{{Tokens: tokens, Type: core.MatchTypeFull}}
	if len(tokens) < 2 {
		return variants
	}

	if opts.Abbreviations {
		variants = append(variants, Variant{Tokens: abbreviate(tokens), Type: core.MatchTypeAbbreviated})
	}

	if opts.NGrams {
		for _, gram := range ngrams(tokens) {
			variants = append(variants, Variant{Tokens: gram, Type: core.MatchTypeNGram})
		}
	}

	return variants
}

// abbreviate reduces every token except the last to its leading rune,
// mirroring the scientific-name convention of abbreviating the genus
// ("Homo sapiens" -> "h sapiens"). The tokenizer strips the dot from
// "H.", so the bare initial is the whole marker.
func abbreviate(tokens []string) []string {
	abbrv := make([]string, len(tokens))
	for i, tok := range tokens[:len(tokens)-1] {
		abbrv[i] = firstRune(tok)
	}
	abbrv[len(tokens)-1] = tokens[len(tokens)-1]
	return abbrv
}

// ngrams returns every contiguous sub-sequence of length >= 2 except the
// full sequence itself. The returned slices alias tokens; callers treat
// them as immutable.
func ngrams(tokens []string) [][]string {
	var grams [][]string
	for size := 2; size < len(tokens); size++ {
		for start := 0; start+size <= len(tokens); start++ {
			grams = append(grams, tokens[start:start+size])
		}
	}
	return grams
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return s
}
