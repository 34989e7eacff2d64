// Package history provides the undo/redo engine: a linear log of
// reversible edit commands applied against a buffer.
package history

import (
	"unicode/utf8"

	"github.com/driftedit/drift/internal/buffer"
)

// Kind indicates whether a command inserted or deleted text.
type Kind int

const (
	Insert Kind = iota
	Delete
)

// Command is a single reversible edit. At is the absolute character offset
// of the edit; Text is the exact text inserted, or the exact text removed
// captured before removal. A command carries everything needed to apply or
// revert itself, so replay never consults buffer state beyond the offset.
type Command struct {
	Kind Kind
	At   int
	Text string
}

// span returns the character length of the command's text.
func (c Command) span() int {
	return utf8.RuneCountInString(c.Text)
}

// Apply performs the command against the buffer.
func (c Command) Apply(buf buffer.Buffer) {
	switch c.Kind {
	case Insert:
		buf.Insert(c.At, c.Text)
	case Delete:
		buf.Delete(c.At, c.At+c.span())
	}
}

// Revert performs the exact inverse of the command.
func (c Command) Revert(buf buffer.Buffer) {
	switch c.Kind {
	case Insert:
		buf.Delete(c.At, c.At+c.span())
	case Delete:
		buf.Insert(c.At, c.Text)
	}
}
