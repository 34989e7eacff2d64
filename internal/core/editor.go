// internal/core/editor.go
package core

import (
	"unicode/utf8"

	"github.com/driftedit/drift/internal/buffer"
	"github.com/driftedit/drift/internal/config"
	"github.com/driftedit/drift/internal/core/history"
	"github.com/driftedit/drift/internal/event"
	"github.com/driftedit/drift/internal/types"
)

// Editor holds the editing state for one open document: cursor, optional
// selection, viewport scroll, and the undo/redo log. It never owns the
// buffer — every operation takes it as a parameter, so the same editor
// state works over whichever buffer the owning document holds.
type Editor struct {
	cursor    types.Position
	selection types.Selection
	selecting bool

	ViewportY  int // Top visible line index (0-based)
	ViewportX  int // Leftmost visible visual column (0-based)
	viewWidth  int
	viewHeight int
	ScrollOff  int // Lines kept visible above/below the cursor

	history *history.Log

	clipboard       []byte // Internal register for yank/put
	systemClipboard bool

	eventManager *event.Manager
}

// NewEditor creates editor state for a freshly opened document.
// maxHistory <= 0 selects the default undo depth.
func NewEditor(maxHistory int) *Editor {
	return &Editor{
		history:   history.NewLog(maxHistory),
		ScrollOff: config.DefaultScrollOff,
	}
}

// SetEventManager sets the event manager for dispatching events.
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

// SetSystemClipboard toggles yank/paste through the OS clipboard.
func (e *Editor) SetSystemClipboard(enabled bool) {
	e.systemClipboard = enabled
}

// Cursor returns the current cursor position.
func (e *Editor) Cursor() types.Position {
	return e.cursor
}

// SetCursor moves the cursor, clamping it into the buffer.
func (e *Editor) SetCursor(buf buffer.Buffer, pos types.Position) {
	e.cursor = pos
	e.clampCursor(buf)
	e.ScrollToCursor(buf)
}

// clampCursor pulls the cursor back inside the buffer after any operation
// that may have invalidated it. Out-of-range positions are recovered, never
// reported.
func (e *Editor) clampCursor(buf buffer.Buffer) {
	if e.cursor.Line < 0 {
		e.cursor.Line = 0
	}
	if last := buf.LineCount() - 1; e.cursor.Line > last {
		e.cursor.Line = last
	}
	if e.cursor.Col < 0 {
		e.cursor.Col = 0
	}
	if max := buf.LineLen(e.cursor.Line); e.cursor.Col > max {
		e.cursor.Col = max
	}
}

// absOffset converts the cursor to an absolute character offset.
func (e *Editor) absOffset(buf buffer.Buffer) int {
	return buf.LineToChar(e.cursor.Line) + e.cursor.Col
}

// positionFor converts an absolute character offset to a document position.
func positionFor(buf buffer.Buffer, at int) types.Position {
	if at < 0 {
		at = 0
	}
	if max := buf.Len(); at > max {
		at = max
	}
	line := buf.CharToLine(at)
	return types.Position{Line: line, Col: at - buf.LineToChar(line)}
}

// --- Selection lifecycle ---

// HasSelection reports whether a non-empty selection is active.
func (e *Editor) HasSelection() bool {
	return e.selecting && e.selection.IsActive()
}

// Selection returns the normalized active selection, if any.
func (e *Editor) Selection() (types.Selection, bool) {
	if !e.HasSelection() {
		return types.Selection{}, false
	}
	return e.selection.Normalized(), true
}

// StartSelection anchors a new selection at the current cursor. Both
// endpoints start there; extending moves only the end.
func (e *Editor) StartSelection() {
	e.selection = types.Selection{Start: e.cursor, End: e.cursor}
	e.selecting = true
}

// ExtendSelection moves the selection's end to the current cursor,
// anchoring a new selection there first if none is active.
func (e *Editor) ExtendSelection() {
	if !e.selecting {
		e.StartSelection()
		return
	}
	e.selection.End = e.cursor
}

// SetSelectionRange sets the selection endpoints directly. The input layer
// uses this for modifier-key selection, where the anchor predates the
// cursor movement that cleared the previous selection.
func (e *Editor) SetSelectionRange(start, end types.Position) {
	e.selection = types.Selection{Start: start, End: end}
	e.selecting = true
}

// ClearSelection drops the selection.
func (e *Editor) ClearSelection() {
	e.selection = types.Selection{}
	e.selecting = false
}

// --- Undo/redo ---

// Undo reverts the most recent edit. It reports whether the buffer
// changed, so the caller can maintain its dirty state.
func (e *Editor) Undo(buf buffer.Buffer) bool {
	e.ClearSelection()
	cmd, ok := e.history.Undo(buf)
	if !ok {
		return false
	}
	at := cmd.At
	if cmd.Kind == history.Delete {
		// The deleted text was just reinserted; land after it.
		at += utf8.RuneCountInString(cmd.Text)
	}
	e.cursor = positionFor(buf, at)
	e.ScrollToCursor(buf)
	e.dispatchModified(buf, cmd.At)
	return true
}

// Redo reapplies the most recently undone edit.
func (e *Editor) Redo(buf buffer.Buffer) bool {
	e.ClearSelection()
	cmd, ok := e.history.Redo(buf)
	if !ok {
		return false
	}
	at := cmd.At
	if cmd.Kind == history.Insert {
		at += utf8.RuneCountInString(cmd.Text)
	}
	e.cursor = positionFor(buf, at)
	e.ScrollToCursor(buf)
	e.dispatchModified(buf, cmd.At)
	return true
}

// CanUndo reports whether undo history is available.
func (e *Editor) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether redo history is available.
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// ClearHistory discards the undo/redo log. Call when a new file is loaded
// into the buffer this editor state serves.
func (e *Editor) ClearHistory() { e.history.Clear() }

// dispatchModified notifies listeners that the buffer changed at the given
// absolute offset. Line-keyed caches invalidate from that line onward.
func (e *Editor) dispatchModified(buf buffer.Buffer, at int) {
	if e.eventManager == nil {
		return
	}
	e.eventManager.Dispatch(event.TypeBufferModified, event.BufferModifiedData{
		Edit: types.EditInfo{FromLine: buf.CharToLine(at)},
	})
}
