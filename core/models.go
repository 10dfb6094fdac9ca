package core

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier derived from content.
// It is used to key cached corpora by their file contents.
type ID uint64

// IDFromBytes generates a deterministic ID from raw bytes using BLAKE2b hashing.
// Identical content always produces the same ID.
func IDFromBytes(data []byte) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write(data)
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// IDFromContent generates a deterministic ID from text content.
func IDFromContent(text string) ID {
	return IDFromBytes([]byte(text))
}

// Entry is a single dictionary line: a search term and its label.
// The same term may appear in multiple entries with different labels;
// all of them are retained through compilation.
type Entry struct {
	Term  string
	Label string
}

// MatchType classifies how an inserted token sequence relates to its
// original dictionary term.
type MatchType int

const (
	// MatchTypeFull marks the term's own token sequence.
	MatchTypeFull MatchType = iota + 1
	// MatchTypeAbbreviated marks the initial-letter variant of a multi-token term.
	MatchTypeAbbreviated
	// MatchTypeNGram marks a contiguous multi-token sub-sequence of a term.
	MatchTypeNGram
)

func (t MatchType) String() string {
	switch t {
	case MatchTypeFull:
		return "Full"
	case MatchTypeAbbreviated:
		return "Abbreviated"
	case MatchTypeNGram:
		return "NGram"
	default:
		return fmt.Sprintf("MatchType(%d)", int(t))
	}
}

// ParseMatchType parses the string form produced by String.
func ParseMatchType(s string) (MatchType, error) {
	switch s {
	case "Full":
		return MatchTypeFull, nil
	case "Abbreviated":
		return MatchTypeAbbreviated, nil
	case "NGram":
		return MatchTypeNGram, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMatchType, s)
	}
}

// MarshalJSON encodes the match type as one of "Full", "Abbreviated", "NGram".
func (t MatchType) MarshalJSON() ([]byte, error) {
	if err := ValidateMatchType(t); err != nil {
		return nil, err
	}
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes the string form.
func (t *MatchType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseMatchType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Annotation is attached to a trie node by compilation and is immutable
// afterwards. Source holds the token sequence of the ORIGINAL dictionary
// term, not the (possibly expanded) sequence that reached the node.
type Annotation struct {
	Label  string    `json:"label"`
	Type   MatchType `json:"match_type"`
	Source []string  `json:"source_term"`
}

// Match is one accepted trie descent over a document. Begin and End are
// token indices (End exclusive); CharBegin and CharEnd are rune offsets
// into the original text. Annotations carries every annotation of the
// deepest terminal reached from Begin, in insertion order.
type Match struct {
	Begin       int          `json:"begin_token"`
	End         int          `json:"end_token"`
	CharBegin   int          `json:"begin"`
	CharEnd     int          `json:"end"`
	Tokens      []string     `json:"tokens"`
	Text        string       `json:"text"`
	Annotations []Annotation `json:"annotations"`
}

// Labels returns the labels of all annotations, in order, duplicates kept.
func (m *Match) Labels() []string {
	labels := make([]string, len(m.Annotations))
	for i, ann := range m.Annotations {
		labels[i] = ann.Label
	}
	return labels
}

// String renders the match in the "text (begin,end) -> label; label" form
// used by the CLI's plain output.
func (m *Match) String() string {
	return fmt.Sprintf("%q (%d,%d) -> %s", m.Text, m.CharBegin, m.CharEnd, strings.Join(m.Labels(), "; "))
}
