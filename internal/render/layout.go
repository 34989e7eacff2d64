// Package render computes and caches per-line glyph layouts. Layouts map
// rune columns to visual columns, which is where wide characters, combining
// marks, and grapheme clusters make the two diverge.
package render

import (
	"github.com/rivo/uniseg"
)

// Glyph is one grapheme cluster placed on a line.
type Glyph struct {
	Runes     []rune // runes forming the cluster; first is the base
	Col       int    // rune index of the cluster start
	VisualCol int    // visual column of the cluster start
	Width     int    // visual cells occupied
}

// LineLayout is the full glyph layout of one line.
type LineLayout struct {
	Glyphs      []Glyph
	VisualWidth int // total visual width of the line
	RuneCount   int
}

// LayoutLine computes the glyph layout of a line of text.
func LayoutLine(lineText string) LineLayout {
	var layout LineLayout
	gr := uniseg.NewGraphemes(lineText)
	col := 0
	visualCol := 0
	for gr.Next() {
		runes := gr.Runes()
		width := gr.Width()
		layout.Glyphs = append(layout.Glyphs, Glyph{
			Runes:     runes,
			Col:       col,
			VisualCol: visualCol,
			Width:     width,
		})
		col += len(runes)
		visualCol += width
	}
	layout.VisualWidth = visualCol
	layout.RuneCount = col
	return layout
}

// VisualColumn returns the visual column of a rune index within the layout.
// Indices past the end map to the line's total width.
func (l LineLayout) VisualColumn(runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	for _, g := range l.Glyphs {
		if runeIndex <= g.Col {
			return g.VisualCol
		}
	}
	return l.VisualWidth
}
