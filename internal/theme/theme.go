// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/driftedit/drift/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Theme maps style names to terminal styles. Syntax style names match the
// highlighter's capture names; UI element names are capitalized.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle resolves a style name, falling back from "keyword.control" to
// "keyword", then to "Default", then to tcell's default.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		if style, ok := t.Styles[name[:dotIndex]]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles["Default"]; ok {
		return defStyle
	}

	logger.Warnf("theme %q: style %q and Default both missing", t.Name, name)
	return tcell.StyleDefault
}

// DriftDark is the built-in theme.
var DriftDark Theme

func init() {
	background := tcell.NewHexColor(0x2a2f38)
	foreground := tcell.NewHexColor(0xc5cdd9)
	comment := tcell.NewHexColor(0x5c6370)
	orange := tcell.NewHexColor(0xd19a66)
	yellow := tcell.NewHexColor(0xe5c07b)
	green := tcell.NewHexColor(0x98c379)
	cyan := tcell.NewHexColor(0x56b6c2)
	blue := tcell.NewHexColor(0x61afef)

	baseStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(foreground)

	DriftDark = Theme{
		Name:   "Drift Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			"Default":           baseStyle,
			"Selection":         baseStyle.Reverse(true),
			"LineNumber":        baseStyle.Foreground(comment),
			"StatusBar":         tcell.StyleDefault.Background(background).Foreground(foreground),
			"StatusBarModified": tcell.StyleDefault.Background(background).Foreground(yellow),
			"StatusBarMessage":  tcell.StyleDefault.Background(background).Foreground(foreground).Bold(true),

			"keyword":  baseStyle.Foreground(blue).Bold(true),
			"string":   baseStyle.Foreground(green),
			"comment":  baseStyle.Foreground(comment).Italic(true),
			"number":   baseStyle.Foreground(orange),
			"type":     baseStyle.Foreground(cyan),
			"function": baseStyle.Foreground(yellow),
		},
	}
}
