// internal/tui/tui.go
package tui

import (
	"fmt"

	"github.com/driftedit/drift/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// TUI manages the terminal screen using tcell.
type TUI struct {
	screen tcell.Screen
}

// New creates and initializes a TUI instance.
func New(activeTheme *theme.Theme) (*TUI, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize tcell screen: %w", err)
	}

	if activeTheme != nil {
		s.SetStyle(activeTheme.GetStyle("Default"))
	}

	return &TUI{screen: s}, nil
}

// Close finalizes the tcell screen.
func (t *TUI) Close() {
	if t.screen != nil {
		t.screen.Fini()
	}
}

// PollEvent retrieves the next terminal event, blocking.
func (t *TUI) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// Clear clears the entire screen.
func (t *TUI) Clear() {
	t.screen.Clear()
}

// Show makes pending changes visible.
func (t *TUI) Show() {
	t.screen.Show()
}

// Size returns the terminal dimensions.
func (t *TUI) Size() (int, int) {
	return t.screen.Size()
}

// Screen exposes the underlying tcell screen for drawing.
func (t *TUI) Screen() tcell.Screen {
	return t.screen
}
