// internal/buffer/buffer.go
package buffer

import "io"

// Buffer is the text storage contract the editor core depends on. All
// offsets are character (rune) indices; implementations must support these
// operations in O(log n) for large documents.
//
// Mutations are expected to succeed for any arguments: out-of-range offsets
// are clamped, never rejected. The editor constructs offsets from live
// queries against the same buffer, so clamping only matters at the margins.
type Buffer interface {
	// Len returns the document length in characters.
	Len() int
	// LineCount returns the number of lines (always >= 1).
	LineCount() int
	// Line returns a line's text without its trailing newline.
	Line(line int) string
	// LineLen returns a line's length in characters, excluding the newline.
	LineLen(line int) int
	// LineToChar converts a line index to the absolute character offset of
	// the line's first character.
	LineToChar(line int) int
	// CharToLine converts an absolute character offset to its line index.
	CharToLine(at int) int
	// Slice returns the text in the character range [start, end).
	Slice(start, end int) string
	// Insert places text at an absolute character offset.
	Insert(at int, text string)
	// Delete removes the character range [start, end).
	Delete(start, end int)
	// Contents materializes the full document text.
	Contents() string
	// WriteTo streams the document to w in order, without materializing it.
	WriteTo(w io.Writer) (int64, error)

	// FilePath returns the path the buffer was loaded from, if any.
	FilePath() string
	// SetFilePath records the backing path (e.g. after save-as).
	SetFilePath(path string)
	// IsModified reports whether the buffer changed since load or last save.
	IsModified() bool
	// MarkSaved clears the modified flag after a successful save.
	MarkSaved()
}
