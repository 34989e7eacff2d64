package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStyleFallbackChain(t *testing.T) {
	defStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	kwStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	th := &Theme{
		Name: "test",
		Styles: map[string]tcell.Style{
			"Default": defStyle,
			"keyword": kwStyle,
		},
	}

	assert.Equal(t, kwStyle, th.GetStyle("keyword"))
	assert.Equal(t, kwStyle, th.GetStyle("keyword.control"), "dotted name falls back to base")
	assert.Equal(t, defStyle, th.GetStyle("unknown"), "missing name falls back to Default")
}

func TestLoadThemeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sepia.toml")
	content := `
name = "Sepia"
is_dark = false

[styles.Default]
fg = "#704214"
bg = "default"

[styles.keyword]
fg = "#8b0000"
bold = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	th, err := LoadThemeFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Sepia", th.Name)
	assert.False(t, th.IsDark)

	fg, _, _ := th.GetStyle("keyword").Decompose()
	assert.Equal(t, tcell.NewHexColor(0x8b0000), fg)

	// Unset attributes inherit from the theme's Default style.
	inheritedFg, _, _ := th.GetStyle("comment").Decompose()
	assert.Equal(t, tcell.NewHexColor(0x704214), inheritedFg)
}

func TestLoadThemeBadColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	content := `
name = "Bad"

[styles.keyword]
fg = "not-a-color"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	th, err := LoadThemeFromFile(path)
	require.NoError(t, err, "bad styles are skipped, not fatal")
	_, ok := th.Styles["keyword"]
	assert.False(t, ok)
}
