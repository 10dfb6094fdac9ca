package match

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/poiesic/gazetteer/core"
	"github.com/poiesic/gazetteer/token"
	"github.com/poiesic/gazetteer/trie"
)

// How often the scan loop checks for cancellation, in start indices.
const cancelStride = 1024

// Matcher scans tokenized documents against a frozen trie. It holds only
// read-only state and is safe for concurrent use; every Tag call
// allocates its own results.
type Matcher struct {
	trie          *trie.Trie
	filter        *FilterSet
	tokenizer     token.Tokenizer
	maxTermLength int
	logger        *slog.Logger
}

// Option configures a Matcher.
type Option func(*Matcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Matcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
		return nil
	}
}

// NewMatcher creates a matcher over a frozen trie. filter may be nil for
// no filtering. maxTermLength bounds the descent depth per start index.
func NewMatcher(t *trie.Trie, filter *FilterSet, tokenizer token.Tokenizer, maxTermLength int, opts ...Option) (*Matcher, error) {
	if t == nil {
		return nil, ErrTrieRequired
	}
	if tokenizer == nil {
		return nil, ErrTokenizerRequired
	}
	if maxTermLength < 1 {
		return nil, fmt.Errorf("%w (got %d)", core.ErrInvalidMaxTermLength, maxTermLength)
	}

	m := &Matcher{
		trie:          t,
		filter:        filter,
		tokenizer:     tokenizer,
		maxTermLength: maxTermLength,
		logger:        slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Tag scans text once and returns every match, ordered by begin token
// index. Overlapping matches from different start indices are all
// reported; per start index only the longest match is kept, carrying all
// annotations of the deepest terminal reached.
func (m *Matcher) Tag(ctx context.Context, text string) ([]core.Match, error) {
	return m.TagWithMonitor(ctx, text, nil)
}

// TagWithMonitor scans text with monitoring hooks. The monitor receives
// callbacks at each stage of the scan.
func (m *Matcher) TagWithMonitor(ctx context.Context, text string, monitor TagMonitor) ([]core.Match, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(text)

	tokens, spans, err := m.tokenizer.Tokenize(text)
	if err != nil {
		m.logger.Error("error tokenizing document", "err", err)
		return nil, fmt.Errorf("%w: %w", ErrTokenization, err)
	}
	monitor.AfterTokenization(tokens)

	// Rune-indexed view of the document, for slicing matched text out of
	// the original (unnormalized) input.
	runes := []rune(text)

	matches := []core.Match{}
	for i := range tokens {
		if i%cancelStride == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		// The filter only blocks match STARTS. A filtered token is still
		// a valid continuation of a match begun earlier.
		if m.filter.Contains(tokens[i]) {
			monitor.StartSkipped(i, tokens[i])
			continue
		}

		depth, anns := m.trie.Walk(tokens[i:], m.maxTermLength)
		if depth == 0 {
			continue
		}

		end := i + depth
		mtch := core.Match{
			Begin:       i,
			End:         end,
			CharBegin:   spans[i].Begin,
			CharEnd:     spans[end-1].End,
			Tokens:      slices.Clone(tokens[i:end]),
			Text:        string(runes[spans[i].Begin:spans[end-1].End]),
			Annotations: slices.Clone(anns),
		}
		monitor.MatchAccepted(&mtch)
		matches = append(matches, mtch)
	}

	monitor.Finish(matches)
	return matches, nil
}
