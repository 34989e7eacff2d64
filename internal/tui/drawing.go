// internal/tui/drawing.go
package tui

import (
	"fmt"
	"math"

	"github.com/driftedit/drift/internal/buffer"
	"github.com/driftedit/drift/internal/core"
	"github.com/driftedit/drift/internal/render"
	"github.com/driftedit/drift/internal/theme"
	"github.com/driftedit/drift/internal/types"
)

// Renderer draws the buffer area. It pulls glyph layouts from the layout
// cache and styles from the per-line highlighter.
type Renderer struct {
	tui           *TUI
	layouts       *render.LayoutCache
	highlightLine types.LineHighlighter
	tabWidth      int
	statusHeight  int
}

// NewRenderer creates a renderer. highlightLine may be nil for plain text.
func NewRenderer(t *TUI, layouts *render.LayoutCache, highlightLine types.LineHighlighter, tabWidth, statusHeight int) *Renderer {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return &Renderer{
		tui:           t,
		layouts:       layouts,
		highlightLine: highlightLine,
		tabWidth:      tabWidth,
		statusHeight:  statusHeight,
	}
}

// gutterWidth computes the line-number gutter width for a buffer, or 0 when
// the screen is too narrow for one.
func gutterWidth(lineCount, screenWidth int) (gutter, digits int) {
	if lineCount <= 0 {
		lineCount = 1
	}
	digits = int(math.Log10(float64(lineCount))) + 1
	gutter = digits + 1 // one space of padding
	if gutter >= screenWidth {
		return 0, digits
	}
	return gutter, digits
}

// isPositionWithin reports whether pos lies in [start, end), both normalized.
func isPositionWithin(pos, start, end types.Position) bool {
	if pos.Line < start.Line || pos.Line > end.Line {
		return false
	}
	if pos.Line == start.Line && pos.Col < start.Col {
		return false
	}
	if pos.Line == end.Line && pos.Col >= end.Col {
		return false
	}
	return true
}

// DrawBuffer draws the visible portion of the buffer with line numbers,
// selection, and syntax highlighting.
func (r *Renderer) DrawBuffer(editor *core.Editor, buf buffer.Buffer, activeTheme *theme.Theme) {
	if activeTheme == nil {
		activeTheme = &theme.DriftDark
	}

	defaultStyle := activeTheme.GetStyle("Default")
	lineNumberStyle := activeTheme.GetStyle("LineNumber")
	selectionStyle := activeTheme.GetStyle("Selection")

	width, height := r.tui.Size()
	viewY, viewX := editor.Viewport()
	sel, selectionActive := editor.Selection()
	viewHeight := height - r.statusHeight
	if viewHeight <= 0 || width <= 0 {
		return
	}

	lineCount := buf.LineCount()
	gutter, digits := gutterWidth(lineCount, width)
	textAreaWidth := width - gutter

	screen := r.tui.Screen()
	filePath := buf.FilePath()

	for screenY := 0; screenY < viewHeight; screenY++ {
		bufferLine := screenY + viewY

		for fillX := 0; fillX < width; fillX++ {
			screen.SetContent(fillX, screenY, ' ', nil, defaultStyle)
		}

		if bufferLine < 0 || bufferLine >= lineCount {
			continue
		}

		if gutter > 0 {
			numStyle := lineNumberStyle
			if editor.Cursor().Line == bufferLine {
				numStyle = lineNumberStyle.Bold(true)
			}
			for i, ch := range fmt.Sprintf("%*d", digits, bufferLine+1) {
				if i < gutter-1 {
					screen.SetContent(i, screenY, ch, nil, numStyle)
				}
			}
		}

		lineText := buf.Line(bufferLine)
		layout := r.layouts.Get(bufferLine, lineText)

		var syntaxRanges []types.StyledRange
		if r.highlightLine != nil {
			syntaxRanges = r.highlightLine(lineText, filePath)
		}

		for _, glyph := range layout.Glyphs {
			screenX := (glyph.VisualCol - viewX) + gutter
			if glyph.VisualCol+glyph.Width <= viewX {
				continue
			}
			if glyph.VisualCol >= viewX+textAreaWidth {
				break
			}

			style := defaultStyle
			pos := types.Position{Line: bufferLine, Col: glyph.Col}
			for _, sr := range syntaxRanges {
				if glyph.Col >= sr.StartCol && glyph.Col < sr.EndCol {
					style = activeTheme.GetStyle(string(sr.Style))
					break
				}
			}
			if selectionActive && isPositionWithin(pos, sel.Start, sel.End) {
				style = selectionStyle
			}

			if screenX < gutter || screenX >= width {
				continue
			}

			mainRune := glyph.Runes[0]
			if mainRune == '\t' {
				spaces := r.tabWidth - ((screenX - gutter) % r.tabWidth)
				for i := 0; i < spaces && screenX+i < width; i++ {
					screen.SetContent(screenX+i, screenY, ' ', nil, style)
				}
				continue
			}

			screen.SetContent(screenX, screenY, mainRune, glyph.Runes[1:], style)
			for cw := 1; cw < glyph.Width; cw++ {
				if screenX+cw < width {
					screen.SetContent(screenX+cw, screenY, ' ', nil, style)
				}
			}
		}
	}
}

// DrawCursor positions the terminal cursor, or hides it when it falls
// outside the drawable area.
func (r *Renderer) DrawCursor(editor *core.Editor, buf buffer.Buffer) {
	cursor := editor.Cursor()
	viewY, viewX := editor.Viewport()

	width, height := r.tui.Size()
	gutter, _ := gutterWidth(buf.LineCount(), width)

	layout := r.layouts.Get(cursor.Line, buf.Line(cursor.Line))
	visualCol := layout.VisualColumn(cursor.Col)

	screenX := (visualCol - viewX) + gutter
	screenY := cursor.Line - viewY
	viewHeight := height - r.statusHeight

	screen := r.tui.Screen()
	if screenX < gutter || screenX >= width || screenY < 0 || screenY >= viewHeight || viewHeight <= 0 {
		screen.HideCursor()
	} else {
		screen.ShowCursor(screenX, screenY)
	}
}
