package rope

// ChunkIterator walks a rope's chunks in document order. It powers
// serialization without materializing the whole text.
type ChunkIterator struct {
	leaves  []*node
	current *node
	chunkIx int
	text    string
}

// Chunks returns an iterator positioned before the first chunk.
func (r Rope) Chunks() *ChunkIterator {
	it := &ChunkIterator{}
	if r.root != nil {
		it.leaves = collectLeaves(r.root, nil)
	}
	return it
}

func collectLeaves(n *node, acc []*node) []*node {
	if n.isLeaf() {
		if len(n.chunks) > 0 {
			acc = append(acc, n)
		}
		return acc
	}
	for _, child := range n.children {
		acc = collectLeaves(child, acc)
	}
	return acc
}

// Next advances to the next non-empty chunk, reporting whether one exists.
func (it *ChunkIterator) Next() bool {
	for {
		if it.current == nil {
			if len(it.leaves) == 0 {
				return false
			}
			it.current = it.leaves[0]
			it.leaves = it.leaves[1:]
			it.chunkIx = 0
		}
		for it.chunkIx < len(it.current.chunks) {
			c := it.current.chunks[it.chunkIx]
			it.chunkIx++
			if !c.isEmpty() {
				it.text = c.data
				return true
			}
		}
		it.current = nil
	}
}

// Text returns the current chunk's text. Valid only after Next returns true.
func (it *ChunkIterator) Text() string {
	return it.text
}
