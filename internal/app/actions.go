// internal/app/actions.go
package app

import (
	"github.com/driftedit/drift/internal/event"
	"github.com/driftedit/drift/internal/input"
	"github.com/driftedit/drift/internal/types"
	"github.com/gdamore/tcell/v2"
)

// selectionAnchor tracks where a shift-selection started. Movement methods
// collapse the editor's selection, so the app re-applies the range after
// each shifted move.
type selectionAnchor struct {
	pos    types.Position
	active bool
}

// handleKeyEvent decodes and executes one key event. Returns true when the
// screen needs redrawing.
func (a *App) handleKeyEvent(ev *tcell.EventKey) bool {
	action := a.inputProcessor.ProcessEvent(ev)

	switch action.Action {
	case input.ActionQuit:
		if a.buf.IsModified() {
			a.statusBar.SetTemporaryMessage("Unsaved changes - Ctrl+S to save, Ctrl+Q to discard")
			return true
		}
		close(a.quit)
		return false
	case input.ActionForceQuit:
		close(a.quit)
		return false

	case input.ActionSave:
		a.save()
		return true

	case input.ActionMoveUp, input.ActionMoveDown, input.ActionMoveLeft, input.ActionMoveRight,
		input.ActionMovePageUp, input.ActionMovePageDown, input.ActionMoveHome, input.ActionMoveEnd:
		a.handleMovement(action)
		return true

	case input.ActionInsertRune:
		a.editor.InsertRune(a.buf, action.Rune)
		a.anchor.active = false
		return true
	case input.ActionInsertNewLine:
		a.editor.InsertNewLine(a.buf)
		a.anchor.active = false
		return true
	case input.ActionDeleteCharBackward:
		a.editor.DeleteBackward(a.buf)
		a.anchor.active = false
		return true
	case input.ActionDeleteCharForward:
		a.editor.DeleteForward(a.buf)
		a.anchor.active = false
		return true

	case input.ActionUndo:
		if !a.editor.Undo(a.buf) {
			a.statusBar.SetTemporaryMessage("Nothing to undo")
		}
		a.anchor.active = false
		return true
	case input.ActionRedo:
		if !a.editor.Redo(a.buf) {
			a.statusBar.SetTemporaryMessage("Nothing to redo")
		}
		a.anchor.active = false
		return true

	case input.ActionYank:
		a.editor.Yank(a.buf)
		return true
	case input.ActionCut:
		a.editor.Yank(a.buf)
		a.editor.DeleteSelection(a.buf)
		a.anchor.active = false
		return true
	case input.ActionPaste:
		a.editor.Paste(a.buf)
		a.anchor.active = false
		return true
	}

	return false
}

// handleMovement runs a cursor movement, maintaining the shift-selection
// anchor across consecutive shifted moves.
func (a *App) handleMovement(action input.ActionEvent) {
	if action.Selecting && !a.anchor.active {
		a.anchor = selectionAnchor{pos: a.editor.Cursor(), active: true}
	}
	if !action.Selecting {
		a.anchor.active = false
	}

	switch action.Action {
	case input.ActionMoveUp:
		a.editor.MoveCursorUp(a.buf)
	case input.ActionMoveDown:
		a.editor.MoveCursorDown(a.buf)
	case input.ActionMoveLeft:
		a.editor.MoveCursorLeft(a.buf)
	case input.ActionMoveRight:
		a.editor.MoveCursorRight(a.buf)
	case input.ActionMovePageUp:
		a.editor.PageMove(a.buf, -1)
	case input.ActionMovePageDown:
		a.editor.PageMove(a.buf, 1)
	case input.ActionMoveHome:
		a.editor.Home(a.buf)
	case input.ActionMoveEnd:
		a.editor.End(a.buf)
	}

	if action.Selecting {
		a.editor.SetSelectionRange(a.anchor.pos, a.editor.Cursor())
	}

	a.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: a.editor.Cursor()})
}
