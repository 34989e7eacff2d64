package rope

import "strings"

// Tree fan-out bounds.
const (
	maxChildren      = 8
	maxChunksPerLeaf = 4
)

// node is a node in the rope tree. Leaves (height 0) hold chunks; internal
// nodes hold children. Nodes are never mutated after construction.
type node struct {
	height   uint8
	sum      Summary
	children []*node
	chunks   []chunk
}

func newLeaf(chunks []chunk) *node {
	n := &node{chunks: chunks}
	for _, c := range chunks {
		n.sum = n.sum.Add(c.sum)
	}
	return n
}

func newInternal(children []*node) *node {
	if len(children) == 0 {
		return newLeaf(nil)
	}
	n := &node{
		height:   children[0].height + 1,
		children: children,
	}
	for _, child := range children {
		n.sum = n.sum.Add(child.sum)
	}
	return n
}

func (n *node) isLeaf() bool {
	return n.height == 0
}

func (n *node) appendTo(sb *strings.Builder) {
	if n.isLeaf() {
		for _, c := range n.chunks {
			sb.WriteString(c.data)
		}
		return
	}
	for _, child := range n.children {
		child.appendTo(sb)
	}
}

// appendRange writes the text in the rune range [start, end) to sb.
func (n *node) appendRange(sb *strings.Builder, start, end int) {
	if start >= end {
		return
	}
	if n.isLeaf() {
		offset := 0
		for _, c := range n.chunks {
			chunkEnd := offset + c.sum.Chars
			if chunkEnd <= start {
				offset = chunkEnd
				continue
			}
			if offset >= end {
				break
			}
			from := 0
			if start > offset {
				from = charToByte(c.data, start-offset)
			}
			to := len(c.data)
			if end < chunkEnd {
				to = charToByte(c.data, end-offset)
			}
			sb.WriteString(c.data[from:to])
			offset = chunkEnd
		}
		return
	}

	offset := 0
	for _, child := range n.children {
		childEnd := offset + child.sum.Chars
		if childEnd <= start {
			offset = childEnd
			continue
		}
		if offset >= end {
			break
		}
		from := 0
		if start > offset {
			from = start - offset
		}
		to := child.sum.Chars
		if end < childEnd {
			to = end - offset
		}
		child.appendRange(sb, from, to)
		offset = childEnd
	}
}

// split divides the subtree at a rune offset into two trees.
func (n *node) split(chars int) (*node, *node) {
	if chars <= 0 {
		return newLeaf(nil), n
	}
	if chars >= n.sum.Chars {
		return n, newLeaf(nil)
	}
	if n.isLeaf() {
		return n.splitLeaf(chars)
	}
	return n.splitInternal(chars)
}

func (n *node) splitLeaf(chars int) (*node, *node) {
	var left, right []chunk
	offset := 0
	for _, c := range n.chunks {
		chunkEnd := offset + c.sum.Chars
		switch {
		case chunkEnd <= chars:
			left = append(left, c)
		case offset >= chars:
			right = append(right, c)
		default:
			l, r := c.split(chars - offset)
			if !l.isEmpty() {
				left = append(left, l)
			}
			if !r.isEmpty() {
				right = append(right, r)
			}
		}
		offset = chunkEnd
	}
	return newLeaf(left), newLeaf(right)
}

func (n *node) splitInternal(chars int) (*node, *node) {
	var left, right []*node
	offset := 0
	for _, child := range n.children {
		childEnd := offset + child.sum.Chars
		switch {
		case childEnd <= chars:
			left = append(left, child)
		case offset >= chars:
			right = append(right, child)
		default:
			l, r := child.split(chars - offset)
			if l.sum.Chars > 0 {
				left = append(left, l)
			}
			if r.sum.Chars > 0 {
				right = append(right, r)
			}
		}
		offset = childEnd
	}
	return buildFromNodes(left), buildFromNodes(right)
}

// buildFromNodes assembles a balanced tree from an ordered list of subtrees
// of equal height.
func buildFromNodes(nodes []*node) *node {
	if len(nodes) == 0 {
		return newLeaf(nil)
	}
	if len(nodes) == 1 {
		return nodes[0]
	}
	for len(nodes) > maxChildren {
		var parents []*node
		for i := 0; i < len(nodes); i += maxChildren {
			end := i + maxChildren
			if end > len(nodes) {
				end = len(nodes)
			}
			parents = append(parents, newInternal(nodes[i:end]))
		}
		nodes = parents
	}
	return newInternal(nodes)
}

// concatNodes joins two subtrees, rebalancing heights as needed.
func concatNodes(left, right *node) *node {
	if left == nil || left.sum.Chars == 0 {
		if right == nil {
			return newLeaf(nil)
		}
		return right
	}
	if right == nil || right.sum.Chars == 0 {
		return left
	}

	if left.isLeaf() && right.isLeaf() {
		return concatLeaves(left, right)
	}

	for left.height < right.height {
		left = newInternal([]*node{left})
	}
	for right.height < left.height {
		right = newInternal([]*node{right})
	}

	if left.isLeaf() {
		return concatLeaves(left, right)
	}
	merged := make([]*node, 0, len(left.children)+len(right.children))
	merged = append(merged, left.children...)
	merged = append(merged, right.children...)
	return buildFromNodes(merged)
}

func concatLeaves(left, right *node) *node {
	total := len(left.chunks) + len(right.chunks)
	if total <= maxChunksPerLeaf {
		chunks := make([]chunk, 0, total)
		chunks = append(chunks, left.chunks...)
		chunks = append(chunks, right.chunks...)
		return newLeaf(chunks)
	}
	return newInternal([]*node{left, right})
}

// lineStartChar returns the rune offset of the first character of line,
// i.e. the position just after the line-th newline.
func (n *node) lineStartChar(line int) int {
	if line <= 0 {
		return 0
	}
	if line > n.sum.Newlines {
		return n.sum.Chars
	}

	if n.isLeaf() {
		chars := 0
		remaining := line
		for _, c := range n.chunks {
			if c.sum.Newlines >= remaining {
				seen := 0
				for _, r := range c.data {
					chars++
					if r == '\n' {
						seen++
						if seen == remaining {
							return chars
						}
					}
				}
			}
			chars += c.sum.Chars
			remaining -= c.sum.Newlines
		}
		return chars
	}

	chars := 0
	remaining := line
	for _, child := range n.children {
		if child.sum.Newlines >= remaining {
			return chars + child.lineStartChar(remaining)
		}
		chars += child.sum.Chars
		remaining -= child.sum.Newlines
	}
	return chars
}

// newlinesBefore counts newlines in the first `chars` runes of the subtree.
func (n *node) newlinesBefore(chars int) int {
	if chars <= 0 {
		return 0
	}
	if chars >= n.sum.Chars {
		return n.sum.Newlines
	}

	if n.isLeaf() {
		count := 0
		offset := 0
		for _, c := range n.chunks {
			chunkEnd := offset + c.sum.Chars
			if chunkEnd <= chars {
				count += c.sum.Newlines
				offset = chunkEnd
				continue
			}
			want := chars - offset
			seen := 0
			for _, r := range c.data {
				if seen == want {
					break
				}
				seen++
				if r == '\n' {
					count++
				}
			}
			break
		}
		return count
	}

	count := 0
	offset := 0
	for _, child := range n.children {
		childEnd := offset + child.sum.Chars
		if childEnd <= chars {
			count += child.sum.Newlines
			offset = childEnd
			continue
		}
		count += child.newlinesBefore(chars - offset)
		break
	}
	return count
}
