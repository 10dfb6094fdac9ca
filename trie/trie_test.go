package trie

import (
	"testing"

	"github.com/poiesic/gazetteer/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ann(label string) core.Annotation {
	return core.Annotation{Label: label, Type: core.MatchTypeFull}
}

func TestBuilder_InsertAndWalk(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Insert([]string{"sula"}, ann("L1")))
	require.NoError(t, b.Insert([]string{"sula", "bassana"}, ann("L2")))
	trie := b.Freeze()

	t.Run("deepest terminal wins", func(t *testing.T) {
		depth, anns := trie.Walk([]string{"sula", "bassana", "breeds"}, 0)
		assert.Equal(t, 2, depth)
		require.Len(t, anns, 1)
		assert.Equal(t, "L2", anns[0].Label)
	})

	t.Run("shallow terminal when descent stops early", func(t *testing.T) {
		depth, anns := trie.Walk([]string{"sula", "dactylatra"}, 0)
		assert.Equal(t, 1, depth)
		require.Len(t, anns, 1)
		assert.Equal(t, "L1", anns[0].Label)
	})

	t.Run("no terminal", func(t *testing.T) {
		depth, anns := trie.Walk([]string{"morus"}, 0)
		assert.Equal(t, 0, depth)
		assert.Empty(t, anns)
	})

	t.Run("empty input", func(t *testing.T) {
		depth, anns := trie.Walk(nil, 0)
		assert.Equal(t, 0, depth)
		assert.Empty(t, anns)
	})
}

func TestBuilder_InsertEmptySequence(t *testing.T) {
	b := NewBuilder()
	assert.Equal(t, ErrEmptySequence, b.Insert(nil, ann("L1")))
	assert.Equal(t, ErrEmptySequence, b.Insert([]string{}, ann("L1")))
}

func TestTrie_DuplicateAnnotationsKeepInsertionOrder(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Insert([]string{"sula"}, ann("L1")))
	require.NoError(t, b.Insert([]string{"sula"}, ann("L5")))
	require.NoError(t, b.Insert([]string{"sula"}, ann("L1")))
	trie := b.Freeze()

	depth, anns := trie.Walk([]string{"sula"}, 0)
	assert.Equal(t, 1, depth)
	require.Len(t, anns, 3)
	assert.Equal(t, "L1", anns[0].Label)
	assert.Equal(t, "L5", anns[1].Label)
	assert.Equal(t, "L1", anns[2].Label)
}

func TestTrie_SharedPrefixes(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Insert([]string{"sula", "bassana"}, ann("L2")))
	require.NoError(t, b.Insert([]string{"sula", "dactylatra"}, ann("L6")))
	trie := b.Freeze()

	// root + "sula" + two leaves
	assert.Equal(t, 4, trie.NodeCount())
	assert.Equal(t, 2, trie.TerminalCount())

	depth, anns := trie.Walk([]string{"sula", "dactylatra"}, 0)
	assert.Equal(t, 2, depth)
	require.Len(t, anns, 1)
	assert.Equal(t, "L6", anns[0].Label)
}

func TestTrie_WalkMaxDepth(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Insert([]string{"a", "b"}, ann("short")))
	require.NoError(t, b.Insert([]string{"a", "b", "c", "d"}, ann("long")))
	trie := b.Freeze()

	tokens := []string{"a", "b", "c", "d"}

	t.Run("bounded descent stops at shallower terminal", func(t *testing.T) {
		depth, anns := trie.Walk(tokens, 3)
		assert.Equal(t, 2, depth)
		require.Len(t, anns, 1)
		assert.Equal(t, "short", anns[0].Label)
	})

	t.Run("unbounded reaches the deepest terminal", func(t *testing.T) {
		depth, anns := trie.Walk(tokens, 0)
		assert.Equal(t, 4, depth)
		require.Len(t, anns, 1)
		assert.Equal(t, "long", anns[0].Label)
	})
}

func TestTrie_StructuralIdempotence(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Insert([]string{"a", "b"}, ann("L1")))
	nodesBefore := len(b.nodes)
	require.NoError(t, b.Insert([]string{"a", "b"}, ann("L1")))
	assert.Equal(t, nodesBefore, len(b.nodes))
}
