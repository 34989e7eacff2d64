// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/driftedit/drift/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style
	StyleModified  tcell.Style
	StyleMessage   tcell.Style
	MessageTimeout time.Duration
}

// DefaultConfig provides fallback styles for use without a theme.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleModified:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlue).Bold(true),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		MessageTimeout: 4 * time.Second,
	}
}

// StatusBar is the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.Mutex

	filePath   string
	cursorPos  types.Position
	isModified bool

	tempMessage     string
	tempMessageTime time.Time
}

// New creates a StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{config: config}
}

// SetFileInfo updates the file path and modified flag shown in the bar.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
	sb.isModified = modified
}

// SetCursorInfo updates the cursor position shown.
func (sb *StatusBar) SetCursorInfo(pos types.Position) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursorPos = pos
}

// SetTemporaryMessage shows a message until the configured timeout passes.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = time.Now()
}

// ResetTemporaryMessage clears any temporary message immediately.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

func (sb *StatusBar) defaultDisplayText() string {
	fPath := sb.filePath
	if fPath == "" {
		fPath = "[No Name]"
	}
	modifiedIndicator := ""
	if sb.isModified {
		modifiedIndicator = " [Modified]"
	}
	return fmt.Sprintf("%s%s -- Line: %d, Col: %d",
		fPath, modifiedIndicator, sb.cursorPos.Line+1, sb.cursorPos.Col+1)
}

// Draw renders the status bar on the bottom screen row.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	sb.mu.Lock()
	tempActive := !sb.tempMessageTime.IsZero() && time.Since(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !tempActive {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	var style tcell.Style
	var text string
	if tempActive {
		text = sb.tempMessage
		style = sb.config.StyleMessage
	} else {
		text = sb.defaultDisplayText()
		if sb.isModified {
			style = sb.config.StyleModified
		} else {
			style = sb.config.StyleDefault
		}
	}
	sb.mu.Unlock()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			screen.SetContent(currentX, y, runes[0], runes[1:], style)
		}
		currentX += clusterWidth
	}
}
