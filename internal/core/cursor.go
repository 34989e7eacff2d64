// internal/core/cursor.go
package core

import (
	"github.com/driftedit/drift/internal/buffer"
	"github.com/rivo/uniseg"
)

// Movement collapses any active selection. That is the documented contract
// for unmodified cursor keys; the input layer re-anchors selections itself
// when a modifier is held.

// MoveCursorLeft moves one character left, wrapping to the end of the
// previous line at column 0. At the start of the document it is a no-op.
func (e *Editor) MoveCursorLeft(buf buffer.Buffer) {
	e.ClearSelection()
	if e.cursor.Col > 0 {
		e.cursor.Col--
	} else if e.cursor.Line > 0 {
		e.cursor.Line--
		e.cursor.Col = buf.LineLen(e.cursor.Line)
	}
	e.ScrollToCursor(buf)
}

// MoveCursorRight moves one character right, wrapping to the start of the
// next line at end-of-line. At the end of the document it is a no-op.
func (e *Editor) MoveCursorRight(buf buffer.Buffer) {
	e.ClearSelection()
	if e.cursor.Col < buf.LineLen(e.cursor.Line) {
		e.cursor.Col++
	} else if e.cursor.Line < buf.LineCount()-1 {
		e.cursor.Line++
		e.cursor.Col = 0
	}
	e.ScrollToCursor(buf)
}

// MoveCursorUp moves one line up, clamping the column to the target line's
// length. There is no sticky-column memory; each move clamps independently.
func (e *Editor) MoveCursorUp(buf buffer.Buffer) {
	e.ClearSelection()
	if e.cursor.Line > 0 {
		e.cursor.Line--
		if max := buf.LineLen(e.cursor.Line); e.cursor.Col > max {
			e.cursor.Col = max
		}
	}
	e.ScrollToCursor(buf)
}

// MoveCursorDown moves one line down, clamping the column.
func (e *Editor) MoveCursorDown(buf buffer.Buffer) {
	e.ClearSelection()
	if e.cursor.Line < buf.LineCount()-1 {
		e.cursor.Line++
		if max := buf.LineLen(e.cursor.Line); e.cursor.Col > max {
			e.cursor.Col = max
		}
	}
	e.ScrollToCursor(buf)
}

// Home moves the cursor to column 0 of the current line.
func (e *Editor) Home(buf buffer.Buffer) {
	e.ClearSelection()
	e.cursor.Col = 0
	e.ScrollToCursor(buf)
}

// End moves the cursor past the last character of the current line.
func (e *Editor) End(buf buffer.Buffer) {
	e.ClearSelection()
	e.cursor.Col = buf.LineLen(e.cursor.Line)
	e.ScrollToCursor(buf)
}

// PageMove jumps the cursor and viewport by whole pages; deltaPages is
// typically +1 (page down) or -1 (page up).
func (e *Editor) PageMove(buf buffer.Buffer, deltaPages int) {
	e.ClearSelection()
	if e.viewHeight <= 0 {
		return
	}

	target := e.cursor.Line + e.viewHeight*deltaPages
	if target < 0 {
		target = 0
	}
	if last := buf.LineCount() - 1; target > last {
		target = last
	}
	e.cursor.Line = target
	if max := buf.LineLen(e.cursor.Line); e.cursor.Col > max {
		e.cursor.Col = max
	}

	// Jump the viewport a full page; ScrollToCursor alone would only creep.
	e.ViewportY += e.viewHeight * deltaPages
	maxViewportY := buf.LineCount() - e.viewHeight
	if maxViewportY < 0 {
		maxViewportY = 0
	}
	if e.ViewportY > maxViewportY {
		e.ViewportY = maxViewportY
	}
	if e.ViewportY < 0 {
		e.ViewportY = 0
	}

	e.ScrollToCursor(buf)
}

// SetViewSize updates the cached view dimensions. Called on resize and
// before drawing.
func (e *Editor) SetViewSize(buf buffer.Buffer, width, height int) {
	e.viewWidth = width
	e.viewHeight = height
	if e.viewHeight < 0 {
		e.viewHeight = 0
	}
	if e.ScrollOff*2 >= e.viewHeight && e.viewHeight > 0 {
		e.ScrollOff = (e.viewHeight - 1) / 2
	} else if e.viewHeight <= 0 {
		e.ScrollOff = 0
	}
	e.ScrollToCursor(buf)
}

// Viewport returns the current scroll origin (top line, left visual column).
func (e *Editor) Viewport() (int, int) {
	return e.ViewportY, e.ViewportX
}

// VisualColumn computes the visual width of a line's prefix up to a rune
// index, accounting for wide characters and grapheme clusters.
func VisualColumn(lineText string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	width := 0
	seen := 0
	gr := uniseg.NewGraphemes(lineText)
	for gr.Next() {
		if seen >= runeIndex {
			break
		}
		width += gr.Width()
		seen += len(gr.Runes())
	}
	return width
}

// ScrollToCursor adjusts the viewport so the cursor stays visible, keeping
// ScrollOff lines of context where possible.
func (e *Editor) ScrollToCursor(buf buffer.Buffer) {
	if e.viewHeight <= 0 || e.viewWidth <= 0 {
		return
	}

	scrollOff := e.ScrollOff
	if scrollOff*2 >= e.viewHeight {
		scrollOff = (e.viewHeight - 1) / 2
	}

	if e.cursor.Line < e.ViewportY+scrollOff {
		e.ViewportY = e.cursor.Line - scrollOff
	} else if e.cursor.Line >= e.ViewportY+e.viewHeight-scrollOff {
		e.ViewportY = e.cursor.Line - e.viewHeight + 1 + scrollOff
	}

	// Horizontal scroll tracks the visual column, not the rune index.
	visualCol := VisualColumn(buf.Line(e.cursor.Line), e.cursor.Col)
	if visualCol < e.ViewportX {
		e.ViewportX = visualCol
	} else if visualCol >= e.ViewportX+e.viewWidth {
		e.ViewportX = visualCol - e.viewWidth + 1
	}

	if e.ViewportY < 0 {
		e.ViewportY = 0
	}
	if e.ViewportX < 0 {
		e.ViewportX = 0
	}
}
