// internal/buffer/rope_buffer.go
package buffer

import (
	"io"

	"github.com/driftedit/drift/internal/rope"
)

// RopeBuffer is the rope-backed Buffer implementation. The rope itself is
// immutable; RopeBuffer holds the current revision and swaps it on every
// edit, which keeps mutations cheap and reads consistent.
type RopeBuffer struct {
	content  rope.Rope
	filePath string
	modified bool
}

// NewRopeBuffer creates an empty buffer.
func NewRopeBuffer() *RopeBuffer {
	return &RopeBuffer{content: rope.New()}
}

// NewRopeBufferFromString creates a buffer holding text.
func NewRopeBufferFromString(text string) *RopeBuffer {
	return &RopeBuffer{content: rope.FromString(text)}
}

// NewRopeBufferFromRope wraps an already-built rope, recording the path it
// was loaded from.
func NewRopeBufferFromRope(r rope.Rope, filePath string) *RopeBuffer {
	return &RopeBuffer{content: r, filePath: filePath}
}

func (b *RopeBuffer) Len() int                { return b.content.Len() }
func (b *RopeBuffer) LineCount() int          { return b.content.LineCount() }
func (b *RopeBuffer) Line(line int) string    { return b.content.Line(line) }
func (b *RopeBuffer) LineLen(line int) int    { return b.content.LineLen(line) }
func (b *RopeBuffer) LineToChar(line int) int { return b.content.LineToChar(line) }
func (b *RopeBuffer) CharToLine(at int) int   { return b.content.CharToLine(at) }

func (b *RopeBuffer) Slice(start, end int) string {
	return b.content.Slice(start, end)
}

func (b *RopeBuffer) Insert(at int, text string) {
	if len(text) == 0 {
		return
	}
	b.content = b.content.Insert(at, text)
	b.modified = true
}

func (b *RopeBuffer) Delete(start, end int) {
	if start >= end {
		return
	}
	b.content = b.content.Delete(start, end)
	b.modified = true
}

func (b *RopeBuffer) Contents() string {
	return b.content.String()
}

func (b *RopeBuffer) WriteTo(w io.Writer) (int64, error) {
	return b.content.WriteTo(w)
}

func (b *RopeBuffer) FilePath() string {
	return b.filePath
}

func (b *RopeBuffer) SetFilePath(path string) {
	b.filePath = path
}

func (b *RopeBuffer) IsModified() bool {
	return b.modified
}

func (b *RopeBuffer) MarkSaved() {
	b.modified = false
}

// Ensure RopeBuffer satisfies the Buffer interface
var _ Buffer = (*RopeBuffer)(nil)
