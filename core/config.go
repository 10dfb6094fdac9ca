package core

import "encoding/binary"

// Config governs dictionary compilation and matching. The same Config
// must be used for both phases so that terms and documents go through
// identical normalization.
type Config struct {
	// ExpandAbbreviations inserts the initial-letter variant of every
	// multi-token term ("Homo sapiens" also matches "H. sapiens").
	ExpandAbbreviations bool

	// ExpandNGrams inserts every contiguous multi-token sub-sequence of
	// every multi-token term as an independently matchable entry.
	ExpandNGrams bool

	// MaxTermLength bounds the trie descent depth during matching, in
	// tokens. Terms longer than this can still be inserted but will
	// never be matched past this depth.
	MaxTermLength int

	// CaseSensitive disables the default lower-casing of tokens.
	CaseSensitive bool
}

// DefaultConfig returns the configuration used when none is given:
// no expansions, case-insensitive matching, descent bounded at 5 tokens.
func DefaultConfig() Config {
	return Config{MaxTermLength: 5}
}

// Fingerprint returns a stable content ID for the configuration, used to
// key cached artifacts that depend on it.
func (c Config) Fingerprint() ID {
	fp := make([]byte, 9)
	if c.ExpandAbbreviations {
		fp[0] |= 1
	}
	if c.ExpandNGrams {
		fp[0] |= 2
	}
	if c.CaseSensitive {
		fp[0] |= 4
	}
	binary.LittleEndian.PutUint64(fp[1:], uint64(c.MaxTermLength))
	return IDFromBytes(fp)
}
