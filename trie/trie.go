package trie

import "github.com/poiesic/gazetteer/core"

// The trie is stored as an arena of nodes addressed by index rather than
// as a pointer structure. Index 0 is the root. A node is terminal iff it
// carries at least one annotation; annotation order is insertion order
// and duplicates are kept, because the same path may be reached from
// several dictionary entries.
type node struct {
	children    map[string]int32
	annotations []core.Annotation
}

// Builder constructs a trie. It is single-writer and must not be used
// after Freeze.
type Builder struct {
	nodes []node
}

// NewBuilder creates a Builder containing only the root node.
func NewBuilder() *Builder {
	return &Builder{nodes: make([]node, 1)}
}

// Insert descends from the root along tokens, creating nodes as needed,
// and appends ann to the final node's annotation set. Inserting the same
// sequence twice grows the annotation set; the structure itself is
// idempotent. Empty sequences are rejected.
func (b *Builder) Insert(tokens []string, ann core.Annotation) error {
	if len(tokens) == 0 {
		return ErrEmptySequence
	}

	cur := int32(0)
	for _, tok := range tokens {
		child, ok := b.nodes[cur].children[tok]
		if !ok {
			child = int32(len(b.nodes))
			b.nodes = append(b.nodes, node{})
			if b.nodes[cur].children == nil {
				b.nodes[cur].children = make(map[string]int32)
			}
			b.nodes[cur].children[tok] = child
		}
		cur = child
	}

	b.nodes[cur].annotations = append(b.nodes[cur].annotations, ann)
	return nil
}

// Freeze publishes the immutable Trie and invalidates the Builder.
func (b *Builder) Freeze() *Trie {
	t := &Trie{nodes: b.nodes}
	b.nodes = nil
	return t
}

// Trie is the frozen, read-only search structure. It is safe for
// unlimited concurrent readers.
type Trie struct {
	nodes []node
}

// Walk descends from the root following tokens and returns the deepest
// terminal reached: its depth (number of tokens consumed) and all of its
// annotations. depth 0 means no terminal was reached. The descent stops
// at the first token without a matching child, after maxDepth tokens
// (0 = unbounded), or at the end of tokens. The returned annotations
// alias the trie's internal storage and must not be modified.
func (t *Trie) Walk(tokens []string, maxDepth int) (depth int, anns []core.Annotation) {
	cur := int32(0)
	for i, tok := range tokens {
		if maxDepth > 0 && i >= maxDepth {
			break
		}
		child, ok := t.nodes[cur].children[tok]
		if !ok {
			break
		}
		cur = child
		if len(t.nodes[cur].annotations) > 0 {
			depth = i + 1
			anns = t.nodes[cur].annotations
		}
	}
	return depth, anns
}

// NodeCount returns the number of nodes including the root.
func (t *Trie) NodeCount() int {
	return len(t.nodes)
}

// TerminalCount returns the number of nodes carrying annotations.
func (t *Trie) TerminalCount() int {
	count := 0
	for _, n := range t.nodes {
		if len(n.annotations) > 0 {
			count++
		}
	}
	return count
}
