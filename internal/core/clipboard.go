// internal/core/clipboard.go
package core

import (
	"github.com/atotto/clipboard"
	"github.com/driftedit/drift/internal/buffer"
	"github.com/driftedit/drift/internal/logger"
)

// Yank copies the active selection into the internal register and, when
// system clipboard integration is enabled, mirrors it to the OS clipboard.
// Without a selection it is a no-op. The selection survives a yank.
func (e *Editor) Yank(buf buffer.Buffer) {
	sel, ok := e.Selection()
	if !ok {
		return
	}
	start := buf.LineToChar(sel.Start.Line) + sel.Start.Col
	end := buf.LineToChar(sel.End.Line) + sel.End.Col
	if start >= end {
		return
	}
	text := buf.Slice(start, end)
	e.clipboard = []byte(text)

	if e.systemClipboard {
		if err := clipboard.WriteAll(text); err != nil {
			logger.Warnf("system clipboard write failed: %v", err)
		}
	}
	logger.Debugf("yanked %d chars", end-start)
}

// Paste inserts clipboard contents at the cursor, replacing any active
// selection. With system clipboard integration enabled the OS clipboard
// takes precedence over the internal register. The paste is recorded as a
// single undoable edit.
func (e *Editor) Paste(buf buffer.Buffer) {
	text := string(e.clipboard)
	if e.systemClipboard {
		if sys, err := clipboard.ReadAll(); err == nil && sys != "" {
			text = sys
		} else if err != nil {
			logger.Debugf("system clipboard read failed, using register: %v", err)
		}
	}
	if text == "" {
		return
	}
	e.InsertText(buf, text)
}
