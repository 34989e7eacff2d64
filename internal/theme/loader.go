// internal/theme/loader.go
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/driftedit/drift/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// TomlStyleDef is one style definition in a theme file. Pointers distinguish
// missing values from explicit ones, so unset attributes inherit.
type TomlStyleDef struct {
	Fg        *string `toml:"fg"`
	Bg        *string `toml:"bg"`
	Bold      *bool   `toml:"bold"`
	Italic    *bool   `toml:"italic"`
	Underline *bool   `toml:"underline"`
	Reverse   *bool   `toml:"reverse"`
}

// TomlTheme is the on-disk shape of a theme file.
type TomlTheme struct {
	Name   string                  `toml:"name"`
	IsDark bool                    `toml:"is_dark"`
	Styles map[string]TomlStyleDef `toml:"styles"`
}

// LoadThemeFromFile parses a TOML theme file. Styles inherit unset
// attributes from the theme's own Default style.
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file %q: %w", filePath, err)
	}

	var tomlTheme TomlTheme
	metadata, err := toml.Decode(string(data), &tomlTheme)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme file %q: %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("theme file %q: unrecognized keys: %v", filePath, undecoded)
	}

	if tomlTheme.Name == "" {
		tomlTheme.Name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	}

	t := &Theme{
		Name:   tomlTheme.Name,
		IsDark: tomlTheme.IsDark,
		Styles: make(map[string]tcell.Style),
	}

	baseStyle := tcell.StyleDefault
	if defaultDef, ok := tomlTheme.Styles["Default"]; ok {
		baseStyle, err = convertTomlStyle(defaultDef, tcell.StyleDefault)
		if err != nil {
			logger.Warnf("theme %q: bad Default style, using terminal default: %v", t.Name, err)
			baseStyle = tcell.StyleDefault
		}
	}
	t.Styles["Default"] = baseStyle

	for name, def := range tomlTheme.Styles {
		if name == "Default" {
			continue
		}
		style, err := convertTomlStyle(def, baseStyle)
		if err != nil {
			logger.Warnf("theme %q: skipping style %q: %v", t.Name, name, err)
			continue
		}
		t.Styles[name] = style
	}

	return t, nil
}

func convertTomlStyle(def TomlStyleDef, baseStyle tcell.Style) (tcell.Style, error) {
	style := baseStyle

	if def.Fg != nil {
		color, err := parseColorString(*def.Fg)
		if err != nil {
			return style, fmt.Errorf("invalid foreground color %q: %w", *def.Fg, err)
		}
		style = style.Foreground(color)
	}
	if def.Bg != nil {
		color, err := parseColorString(*def.Bg)
		if err != nil {
			return style, fmt.Errorf("invalid background color %q: %w", *def.Bg, err)
		}
		style = style.Background(color)
	}
	if def.Bold != nil {
		style = style.Bold(*def.Bold)
	}
	if def.Italic != nil {
		style = style.Italic(*def.Italic)
	}
	if def.Underline != nil {
		style = style.Underline(*def.Underline)
	}
	if def.Reverse != nil {
		style = style.Reverse(*def.Reverse)
	}

	return style, nil
}

// parseColorString accepts #RRGGBB hex codes and the keywords "reset" and
// "default".
func parseColorString(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 {
			return tcell.ColorDefault, fmt.Errorf("invalid hex color %q, must be #RRGGBB", s)
		}
		val, err := strconv.ParseInt(s[1:], 16, 32)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid hex value %q: %w", s, err)
		}
		return tcell.NewHexColor(int32(val)), nil
	}

	switch s {
	case "reset":
		return tcell.ColorReset, nil
	case "default":
		return tcell.ColorDefault, nil
	}

	return tcell.ColorDefault, fmt.Errorf("unknown color %q", s)
}
