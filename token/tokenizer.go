package token

import (
	"strings"
	"unicode"
)

// Span is a half-open rune offset range [Begin, End) into the original text.
type Span struct {
	Begin int
	End   int
}

// Tokenizer converts a string into an ordered token sequence with one
// span per token. Implementations must be safe for concurrent use.
type Tokenizer interface {
	Tokenize(text string) ([]string, []Span, error)
}

// Delimiters, besides whitespace, that terminate a token. Matches the
// segmentation the dictionaries were curated against: "H. sapiens"
// yields the tokens "h" and "sapiens".
const splitRunes = ".,:;-_\"()"

// Splitter is the default Tokenizer. It splits on whitespace and the
// fixed punctuation set, drops empty fragments, and lower-cases tokens
// unless configured case-sensitive.
type Splitter struct {
	caseSensitive bool
}

var _ Tokenizer = (*Splitter)(nil)

// NewSplitter creates the default tokenizer.
func NewSplitter(caseSensitive bool) *Splitter {
	return &Splitter{caseSensitive: caseSensitive}
}

// Tokenize implements Tokenizer. The returned spans are rune offsets
// into text; len(tokens) == len(spans). It never fails.
func (s *Splitter) Tokenize(text string) ([]string, []Span, error) {
	var (
		tokens []string
		spans  []Span
		start  = -1 // rune index of the current token start, -1 when between tokens
		pos    = 0  // rune index of the current rune
		buf    strings.Builder
	)

	flush := func(end int) {
		if start < 0 {
			return
		}
		tok := buf.String()
		if !s.caseSensitive {
			tok = strings.ToLower(tok)
		}
		tokens = append(tokens, tok)
		spans = append(spans, Span{Begin: start, End: end})
		buf.Reset()
		start = -1
	}

	for _, r := range text {
		if isDelimiter(r) {
			flush(pos)
		} else {
			if start < 0 {
				start = pos
			}
			buf.WriteRune(r)
		}
		pos++
	}
	flush(pos)

	return tokens, spans, nil
}

func isDelimiter(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(splitRunes, r)
}
