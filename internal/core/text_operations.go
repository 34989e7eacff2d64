// internal/core/text_operations.go
package core

import (
	"github.com/driftedit/drift/internal/buffer"
	"github.com/driftedit/drift/internal/core/history"
)

// InsertRune inserts a single character at the cursor. An active selection
// is deleted first, as its own undo entry.
func (e *Editor) InsertRune(buf buffer.Buffer, r rune) {
	e.InsertText(buf, string(r))
}

// InsertText inserts text at the cursor, replacing the active selection if
// there is one. The cursor advances past the inserted text; embedded
// newlines move it to later lines.
func (e *Editor) InsertText(buf buffer.Buffer, text string) {
	if e.HasSelection() {
		e.DeleteSelection(buf)
	}
	if len(text) == 0 {
		e.ClearSelection()
		return
	}

	fromLine := e.cursor.Line
	at := e.absOffset(buf)
	e.history.RecordAndApply(buf, history.Command{Kind: history.Insert, At: at, Text: text})

	line, col := e.cursor.Line, e.cursor.Col
	for _, r := range text {
		if r == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	e.cursor.Line, e.cursor.Col = line, col
	if max := buf.LineLen(e.cursor.Line); e.cursor.Col > max {
		e.cursor.Col = max
	}

	e.ClearSelection()
	e.ScrollToCursor(buf)
	e.dispatchModified(buf, buf.LineToChar(fromLine))
}

// InsertNewLine breaks the line at the cursor. The cursor ends up at the
// start of the new line.
func (e *Editor) InsertNewLine(buf buffer.Buffer) {
	e.InsertText(buf, "\n")
}

// DeleteBackward removes the character before the cursor (backspace). With
// an active selection it removes the selection instead. At the very start
// of the document it does nothing.
func (e *Editor) DeleteBackward(buf buffer.Buffer) {
	if e.HasSelection() {
		e.DeleteSelection(buf)
		return
	}

	at := e.absOffset(buf)
	if at == 0 {
		return
	}

	// Work out where the cursor lands before mutating; deleting a newline
	// joins this line onto the previous one.
	var landing = e.cursor
	if e.cursor.Col > 0 {
		landing.Col--
	} else {
		landing.Line--
		landing.Col = buf.LineLen(landing.Line)
	}

	removed := buf.Slice(at-1, at)
	e.history.RecordAndApply(buf, history.Command{Kind: history.Delete, At: at - 1, Text: removed})
	e.cursor = landing
	e.ScrollToCursor(buf)
	e.dispatchModified(buf, buf.LineToChar(landing.Line))
}

// DeleteForward removes the character at the cursor (forward delete). The
// cursor does not move. At the end of the document it does nothing.
func (e *Editor) DeleteForward(buf buffer.Buffer) {
	if e.HasSelection() {
		e.DeleteSelection(buf)
		return
	}

	at := e.absOffset(buf)
	if at >= buf.Len() {
		return
	}

	removed := buf.Slice(at, at+1)
	e.history.RecordAndApply(buf, history.Command{Kind: history.Delete, At: at, Text: removed})
	e.ScrollToCursor(buf)
	e.dispatchModified(buf, at)
}

// DeleteSelection removes the selected range as one undo entry and moves
// the cursor to the selection's start. The selection is consumed even when
// its range turns out to be empty. Without a selection this is a no-op.
func (e *Editor) DeleteSelection(buf buffer.Buffer) {
	if !e.selecting {
		return
	}
	sel := e.selection.Normalized()
	e.ClearSelection()

	start := buf.LineToChar(sel.Start.Line) + sel.Start.Col
	end := buf.LineToChar(sel.End.Line) + sel.End.Col
	if start >= end {
		return
	}

	removed := buf.Slice(start, end)
	e.history.RecordAndApply(buf, history.Command{Kind: history.Delete, At: start, Text: removed})
	e.cursor = sel.Start
	e.ScrollToCursor(buf)
	e.dispatchModified(buf, buf.LineToChar(sel.Start.Line))
}
