package compile

import (
	"context"
	"testing"

	"github.com/poiesic/gazetteer/core"
	"github.com/poiesic/gazetteer/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompiler(t *testing.T) {
	c, err := NewCompiler()
	require.NoError(t, err)
	defer c.Release()
	assert.NotNil(t, c)
}

func TestCompiler_Compile(t *testing.T) {
	c, err := NewCompiler(WithPoolSize(2))
	require.NoError(t, err)
	defer c.Release()

	entries := []core.Entry{
		{Term: "Sula", Label: "L1"},
		{Term: "Sula bassana", Label: "L2"},
		{Term: "Homo sapiens", Label: "L3"},
	}
	cfg := core.Config{ExpandAbbreviations: true, MaxTermLength: 5}

	trie, stats, err := c.Compile(context.Background(), entries, token.NewSplitter(false), cfg)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Entries)
	assert.Equal(t, 0, stats.EmptyTerms)
	// 3 Full variants + 2 Abbreviated variants
	assert.Equal(t, 5, stats.Variants)

	t.Run("full term reachable", func(t *testing.T) {
		depth, anns := trie.Walk([]string{"sula", "bassana"}, 5)
		assert.Equal(t, 2, depth)
		require.Len(t, anns, 1)
		assert.Equal(t, "L2", anns[0].Label)
		assert.Equal(t, core.MatchTypeFull, anns[0].Type)
	})

	t.Run("abbreviated variant reachable", func(t *testing.T) {
		depth, anns := trie.Walk([]string{"h", "sapiens"}, 5)
		assert.Equal(t, 2, depth)
		require.Len(t, anns, 1)
		assert.Equal(t, core.MatchTypeAbbreviated, anns[0].Type)
		assert.Equal(t, []string{"homo", "sapiens"}, anns[0].Source)
	})
}

func TestCompiler_Compile_EmptyTermsSkipped(t *testing.T) {
	c, err := NewCompiler()
	require.NoError(t, err)
	defer c.Release()

	entries := []core.Entry{
		{Term: "...", Label: "JUNK"},
		{Term: "Sula", Label: "L1"},
	}

	trie, stats, err := c.Compile(context.Background(), entries, token.NewSplitter(false), core.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Entries)
	assert.Equal(t, 1, stats.EmptyTerms)
	assert.Equal(t, 1, trie.TerminalCount())
}

func TestCompiler_Compile_NoEntries(t *testing.T) {
	c, err := NewCompiler()
	require.NoError(t, err)
	defer c.Release()

	trie, stats, err := c.Compile(context.Background(), nil, token.NewSplitter(false), core.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats)
	assert.Equal(t, 0, trie.TerminalCount())
}

func TestCompiler_Compile_Validation(t *testing.T) {
	c, err := NewCompiler()
	require.NoError(t, err)
	defer c.Release()

	t.Run("nil tokenizer", func(t *testing.T) {
		_, _, err := c.Compile(context.Background(), nil, nil, core.DefaultConfig())
		assert.Equal(t, ErrTokenizerRequired, err)
	})

	t.Run("invalid config", func(t *testing.T) {
		_, _, err := c.Compile(context.Background(), nil, token.NewSplitter(false), core.Config{})
		assert.ErrorIs(t, err, core.ErrInvalidConfig)
	})
}

func TestCompiler_Compile_Cancelled(t *testing.T) {
	c, err := NewCompiler()
	require.NoError(t, err)
	defer c.Release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	entries := []core.Entry{{Term: "Sula", Label: "L1"}}
	_, _, err = c.Compile(ctx, entries, token.NewSplitter(false), core.DefaultConfig())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompiler_Compile_Deterministic(t *testing.T) {
	entries := []core.Entry{
		{Term: "Sula", Label: "L1"},
		{Term: "Sula", Label: "L5"},
		{Term: "Sula bassana", Label: "L2"},
		{Term: "Sula leucogaster leucogaster", Label: "L4"},
	}
	cfg := core.Config{ExpandAbbreviations: true, ExpandNGrams: true, MaxTermLength: 5}

	compileOnce := func() ([]core.Annotation, int) {
		c, err := NewCompiler(WithPoolSize(4))
		require.NoError(t, err)
		defer c.Release()

		trie, _, err := c.Compile(context.Background(), entries, token.NewSplitter(false), cfg)
		require.NoError(t, err)
		_, anns := trie.Walk([]string{"sula"}, 5)
		return anns, trie.NodeCount()
	}

	firstAnns, firstNodes := compileOnce()
	require.Equal(t, []string{"L1", "L5"}, labelsOf(firstAnns))

	for range 3 {
		anns, nodes := compileOnce()
		assert.Equal(t, firstAnns, anns)
		assert.Equal(t, firstNodes, nodes)
	}
}

func labelsOf(anns []core.Annotation) []string {
	labels := make([]string, len(anns))
	for i, a := range anns {
		labels[i] = a.Label
	}
	return labels
}
