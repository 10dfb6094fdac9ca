package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitter_Tokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "whitespace split",
			text: "Sula bassana breeds here",
			want: []string{"sula", "bassana", "breeds", "here"},
		},
		{
			name: "abbreviation dot is a delimiter",
			text: "H. sapiens",
			want: []string{"h", "sapiens"},
		},
		{
			name: "punctuation set",
			text: "one,two;three:four-five_six\"seven(eight)",
			want: []string{"one", "two", "three", "four", "five", "six", "seven", "eight"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "delimiters only",
			text: " .,;() ",
			want: nil,
		},
		{
			name: "consecutive delimiters collapse",
			text: "a..b  c",
			want: []string{"a", "b", "c"},
		},
	}

	splitter := NewSplitter(false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, spans, err := splitter.Tokenize(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tokens)
			assert.Len(t, spans, len(tokens))
		})
	}
}

func TestSplitter_CaseSensitive(t *testing.T) {
	tokens, _, err := NewSplitter(true).Tokenize("Sula Bassana")
	require.NoError(t, err)
	assert.Equal(t, []string{"Sula", "Bassana"}, tokens)

	tokens, _, err = NewSplitter(false).Tokenize("Sula Bassana")
	require.NoError(t, err)
	assert.Equal(t, []string{"sula", "bassana"}, tokens)
}

func TestSplitter_Spans(t *testing.T) {
	text := "Die Rötelmaus (Myodes glareolus)"
	tokens, spans, err := NewSplitter(false).Tokenize(text)
	require.NoError(t, err)
	require.Len(t, spans, len(tokens))

	// Spans are rune offsets into the original text; slicing the rune
	// view with them must recover the original token surface.
	runes := []rune(text)
	surfaces := []string{"Die", "Rötelmaus", "Myodes", "glareolus"}
	require.Len(t, tokens, len(surfaces))
	for i, want := range surfaces {
		got := string(runes[spans[i].Begin:spans[i].End])
		assert.Equal(t, want, got, "span %d", i)
	}

	t.Run("spans are ordered and non-overlapping", func(t *testing.T) {
		for i := 1; i < len(spans); i++ {
			assert.GreaterOrEqual(t, spans[i].Begin, spans[i-1].End)
		}
	})
}

func TestSplitter_TrailingToken(t *testing.T) {
	tokens, spans, err := NewSplitter(false).Tokenize("ends without delimiter")
	require.NoError(t, err)
	require.Equal(t, []string{"ends", "without", "delimiter"}, tokens)
	assert.Equal(t, Span{Begin: 13, End: 22}, spans[2])
}
