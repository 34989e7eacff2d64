package history

import (
	"sync"

	"github.com/driftedit/drift/internal/buffer"
	"github.com/driftedit/drift/internal/logger"
)

const DefaultMaxEntries = 100

// Log is a linear undo/redo history. Entries before index have been
// applied; entries at or after it are redoable. Recording while redo
// entries exist discards them — the history never branches.
//
// Commands are not coalesced: one user action, one entry. Undo granularity
// is worth more than a compact log.
type Log struct {
	mu         sync.Mutex
	entries    []Command
	index      int // next redo slot; undo takes entries[index-1]
	maxEntries int
}

// NewLog creates a history log. maxEntries <= 0 selects the default.
func NewLog(maxEntries int) *Log {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Log{
		entries:    make([]Command, 0, maxEntries),
		maxEntries: maxEntries,
	}
}

// RecordAndApply applies cmd to the buffer and appends it at the current
// history position, truncating any redo entries.
func (l *Log) RecordAndApply(buf buffer.Buffer, cmd Command) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cmd.Apply(buf)

	if l.index < len(l.entries) {
		l.entries = l.entries[:l.index]
	}
	l.entries = append(l.entries, cmd)
	l.index = len(l.entries)

	// Evict oldest entries past the cap; the index shifts with them.
	if len(l.entries) > l.maxEntries {
		excess := len(l.entries) - l.maxEntries
		l.entries = append(l.entries[:0:0], l.entries[excess:]...)
		l.index -= excess
	}

	logger.Debugf("History: recorded command kind=%d at=%d len=%d (index=%d, count=%d)",
		cmd.Kind, cmd.At, len(cmd.Text), l.index, len(l.entries))
}

// Undo reverts the command before the history position. It returns the
// reverted command and true, or false if there is nothing to undo.
func (l *Log) Undo(buf buffer.Buffer) (Command, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.index <= 0 {
		return Command{}, false
	}
	l.index--
	cmd := l.entries[l.index]
	cmd.Revert(buf)
	logger.Debugf("History: undo to index %d", l.index)
	return cmd, true
}

// Redo reapplies the command at the history position. It returns the
// reapplied command and true, or false if there is nothing to redo.
func (l *Log) Redo(buf buffer.Buffer) (Command, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.index >= len(l.entries) {
		return Command{}, false
	}
	cmd := l.entries[l.index]
	cmd.Apply(buf)
	l.index++
	logger.Debugf("History: redo to index %d", l.index)
	return cmd, true
}

// CanUndo reports whether an undo is available.
func (l *Log) CanUndo() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.index > 0
}

// CanRedo reports whether a redo is available.
func (l *Log) CanRedo() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.index < len(l.entries)
}

// Clear resets the log. Call on file load.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = l.entries[:0]
	l.index = 0
}
