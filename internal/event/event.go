// internal/event/event.go
package event

import (
	"github.com/driftedit/drift/internal/types"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	TypeBufferModified // buffer content changed (insert/delete/undo/redo)
	TypeBufferLoaded   // a file was loaded into the buffer
	TypeBufferSaved    // buffer contents were written to disk
	TypeCursorMoved    // cursor position changed

	TypeAppReady // application finished initializing
	TypeAppQuit  // application is about to terminate
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// BufferModifiedData describes a buffer change; Edit carries the first
// affected line so caches can invalidate incrementally.
type BufferModifiedData struct {
	Edit types.EditInfo
}

// BufferLoadedData is dispatched after a successful file load.
type BufferLoadedData struct {
	FilePath string
}

// BufferSavedData is dispatched after a successful save.
type BufferSavedData struct {
	FilePath string
}

// CursorMovedData carries the new cursor position.
type CursorMovedData struct {
	NewPosition types.Position
}
