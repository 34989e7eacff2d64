// internal/app/app.go
package app

import (
	"fmt"

	"github.com/driftedit/drift/internal/buffer"
	"github.com/driftedit/drift/internal/config"
	"github.com/driftedit/drift/internal/core"
	"github.com/driftedit/drift/internal/event"
	"github.com/driftedit/drift/internal/filebridge"
	"github.com/driftedit/drift/internal/highlighter"
	"github.com/driftedit/drift/internal/input"
	"github.com/driftedit/drift/internal/logger"
	"github.com/driftedit/drift/internal/render"
	"github.com/driftedit/drift/internal/statusbar"
	"github.com/driftedit/drift/internal/theme"
	"github.com/driftedit/drift/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// App owns the editor's components and runs the main loop.
type App struct {
	cfg            *config.Config
	tuiManager     *tui.TUI
	renderer       *tui.Renderer
	editor         *core.Editor
	buf            buffer.Buffer
	statusBar      *statusbar.StatusBar
	eventManager   *event.Manager
	layouts        *render.LayoutCache
	themeManager   *theme.Manager
	inputProcessor *input.InputProcessor

	anchor selectionAnchor

	quit          chan struct{}
	redrawRequest chan struct{}
}

// NewApp creates and wires an application instance around one file.
func NewApp(filePath string, cfg *config.Config) (*App, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	themeManager := theme.NewManager()
	activeTheme := themeManager.Current()

	tuiManager, err := tui.New(activeTheme)
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	buf, err := filebridge.Load(filePath, cfg.File.LargeFileThreshold)
	if err != nil {
		tuiManager.Close()
		return nil, err
	}

	eventManager := event.NewManager()

	editor := core.NewEditor(cfg.Editor.MaxHistory)
	editor.ScrollOff = cfg.Editor.ScrollOff
	editor.SetEventManager(eventManager)
	editor.SetSystemClipboard(cfg.Editor.SystemClipboard)

	layouts := render.NewLayoutCache()
	layouts.Attach(eventManager)

	highlighterSvc := highlighter.New()
	renderer := tui.NewRenderer(tuiManager, layouts, highlighterSvc.LineHighlighter(),
		cfg.Editor.TabWidth, config.StatusBarHeight)

	barCfg := statusbar.DefaultConfig()
	barCfg.StyleDefault = activeTheme.GetStyle("StatusBar")
	barCfg.StyleModified = activeTheme.GetStyle("StatusBarModified")
	barCfg.StyleMessage = activeTheme.GetStyle("StatusBarMessage")
	statusBar := statusbar.New(barCfg)

	a := &App{
		cfg:            cfg,
		tuiManager:     tuiManager,
		renderer:       renderer,
		editor:         editor,
		buf:            buf,
		statusBar:      statusBar,
		eventManager:   eventManager,
		layouts:        layouts,
		themeManager:   themeManager,
		inputProcessor: input.NewInputProcessor(),
		quit:           make(chan struct{}),
		redrawRequest:  make(chan struct{}, 1),
	}

	eventManager.Subscribe(event.TypeBufferModified, func(e event.Event) bool {
		a.updateStatusBarContent()
		return false
	})
	eventManager.Subscribe(event.TypeBufferSaved, func(e event.Event) bool {
		a.updateStatusBarContent()
		return false
	})

	width, height := tuiManager.Size()
	editor.SetViewSize(buf, width, height-config.StatusBarHeight)

	eventManager.Dispatch(event.TypeBufferLoaded, event.BufferLoadedData{FilePath: filePath})
	return a, nil
}

// Run starts the event and drawing loops and blocks until quit.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.eventLoop()

	a.eventManager.Dispatch(event.TypeAppReady, nil)
	a.statusBar.SetTemporaryMessage("drift - Ctrl+S save | Esc quit")
	a.requestRedraw()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, nil)
			if a.buf.IsModified() {
				logger.Warnf("exited with unsaved changes")
			}
			return nil
		case <-a.redrawRequest:
			w, h := a.tuiManager.Size()
			a.editor.SetViewSize(a.buf, w, h-config.StatusBarHeight)
			a.drawEditor()
		}
	}
}

// eventLoop polls terminal events and dispatches them.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}

		needsRedraw := false
		switch eventData := ev.(type) {
		case *tcell.EventResize:
			a.tuiManager.Screen().Sync()
			needsRedraw = true
		case *tcell.EventKey:
			needsRedraw = a.handleKeyEvent(eventData)
		}

		if needsRedraw {
			a.requestRedraw()
		}
	}
}

func (a *App) drawEditor() {
	a.updateStatusBarContent()

	screen := a.tuiManager.Screen()
	width, height := a.tuiManager.Size()

	a.tuiManager.Clear()
	a.renderer.DrawBuffer(a.editor, a.buf, a.themeManager.Current())
	a.statusBar.Draw(screen, width, height)
	a.renderer.DrawCursor(a.editor, a.buf)
	a.tuiManager.Show()
}

func (a *App) updateStatusBarContent() {
	a.statusBar.SetFileInfo(a.buf.FilePath(), a.buf.IsModified())
	a.statusBar.SetCursorInfo(a.editor.Cursor())
}

// requestRedraw signals the drawing loop without blocking.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default:
	}
}

func (a *App) save() {
	if err := filebridge.Save(a.buf, ""); err != nil {
		logger.Errorf("save failed: %v", err)
		a.statusBar.SetTemporaryMessage("Save failed: %v", err)
		return
	}
	a.eventManager.Dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: a.buf.FilePath()})
	a.statusBar.SetTemporaryMessage("Saved %s", a.buf.FilePath())
}
