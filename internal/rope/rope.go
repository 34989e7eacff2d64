package rope

import (
	"io"
	"strings"
)

// Rope is an immutable rope. The zero value is usable and empty.
type Rope struct {
	root *node
}

// New returns an empty rope.
func New() Rope {
	return Rope{root: newLeaf(nil)}
}

// FromString builds a rope from s.
func FromString(s string) Rope {
	if len(s) == 0 {
		return New()
	}
	chunks := splitIntoChunks(s)
	leaves := make([]*node, 0, (len(chunks)+maxChunksPerLeaf-1)/maxChunksPerLeaf)
	for i := 0; i < len(chunks); i += maxChunksPerLeaf {
		end := i + maxChunksPerLeaf
		if end > len(chunks) {
			end = len(chunks)
		}
		leaves = append(leaves, newLeaf(chunks[i:end]))
	}
	return Rope{root: buildFromNodes(leaves)}
}

// FromReader builds a rope from the full contents of r.
func FromReader(r io.Reader) (Rope, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Rope{}, err
	}
	return FromString(string(data)), nil
}

// Len returns the number of Unicode scalar values in the rope.
func (r Rope) Len() int {
	if r.root == nil {
		return 0
	}
	return r.root.sum.Chars
}

// LenBytes returns the UTF-8 encoded size.
func (r Rope) LenBytes() int {
	if r.root == nil {
		return 0
	}
	return r.root.sum.Bytes
}

// LineCount returns the number of lines. An empty rope has one line; a
// trailing newline opens a final empty line, matching how editors count.
func (r Rope) LineCount() int {
	if r.root == nil {
		return 1
	}
	return r.root.sum.Newlines + 1
}

// String materializes the full text. Use sparingly on large ropes.
func (r Rope) String() string {
	if r.root == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(r.root.sum.Bytes)
	r.root.appendTo(&sb)
	return sb.String()
}

// Slice returns the text in the rune range [start, end), clamped to the
// rope bounds.
func (r Rope) Slice(start, end int) string {
	if r.root == nil {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if end > r.Len() {
		end = r.Len()
	}
	if start >= end {
		return ""
	}
	var sb strings.Builder
	sb.Grow(end - start) // at least one byte per rune
	r.root.appendRange(&sb, start, end)
	return sb.String()
}

// Insert returns a rope with text inserted at the given rune offset.
// Offsets outside [0, Len] are clamped.
func (r Rope) Insert(at int, text string) Rope {
	if len(text) == 0 {
		return r
	}
	if r.root == nil || r.Len() == 0 {
		return FromString(text)
	}
	if at <= 0 {
		return FromString(text).Concat(r)
	}
	if at >= r.Len() {
		return r.Concat(FromString(text))
	}
	left, right := r.Split(at)
	return left.Concat(FromString(text)).Concat(right)
}

// Delete returns a rope with the rune range [start, end) removed.
// The range is clamped to the rope bounds.
func (r Rope) Delete(start, end int) Rope {
	if r.root == nil {
		return r
	}
	length := r.Len()
	if start < 0 {
		start = 0
	}
	if end > length {
		end = length
	}
	if start >= end {
		return r
	}
	if start == 0 && end == length {
		return New()
	}
	if start == 0 {
		_, right := r.Split(end)
		return right
	}
	if end == length {
		left, _ := r.Split(start)
		return left
	}
	left, rest := r.Split(start)
	_, right := rest.Split(end - start)
	return left.Concat(right)
}

// Split divides the rope at a rune offset.
func (r Rope) Split(at int) (Rope, Rope) {
	if r.root == nil || at <= 0 {
		return New(), r
	}
	if at >= r.Len() {
		return r, New()
	}
	left, right := r.root.split(at)
	return Rope{root: left}, Rope{root: right}
}

// Concat joins two ropes.
func (r Rope) Concat(other Rope) Rope {
	if r.root == nil || r.root.sum.Chars == 0 {
		return other
	}
	if other.root == nil || other.root.sum.Chars == 0 {
		return r
	}
	return Rope{root: concatNodes(r.root, other.root)}
}

// LineToChar returns the rune offset of the start of the given line.
// Lines at or past LineCount map to Len.
func (r Rope) LineToChar(line int) int {
	if r.root == nil || line <= 0 {
		return 0
	}
	return r.root.lineStartChar(line)
}

// CharToLine returns the line containing the given rune offset. An offset
// at Len belongs to the last line.
func (r Rope) CharToLine(at int) int {
	if r.root == nil || at <= 0 {
		return 0
	}
	return r.root.newlinesBefore(at)
}

// Line returns the text of the given line without its trailing newline.
func (r Rope) Line(line int) string {
	start, end := r.lineBounds(line)
	return r.Slice(start, end)
}

// LineLen returns the rune length of the given line, excluding its newline.
func (r Rope) LineLen(line int) int {
	start, end := r.lineBounds(line)
	return end - start
}

// lineBounds returns the rune range [start, end) of a line's content.
func (r Rope) lineBounds(line int) (int, int) {
	if r.root == nil {
		return 0, 0
	}
	last := r.LineCount() - 1
	if line < 0 {
		line = 0
	}
	if line > last {
		line = last
	}
	start := r.LineToChar(line)
	if line == last {
		return start, r.Len()
	}
	return start, r.LineToChar(line+1) - 1
}

// WriteTo streams the rope's chunks to w in document order.
func (r Rope) WriteTo(w io.Writer) (int64, error) {
	var total int64
	it := r.Chunks()
	for it.Next() {
		n, err := io.WriteString(w, it.Text())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
