package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftedit/drift/internal/buffer"
)

func TestRecordUndoRedo(t *testing.T) {
	buf := buffer.NewRopeBufferFromString("ab")
	log := NewLog(0)

	log.RecordAndApply(buf, Command{Kind: Insert, At: 1, Text: "X"})
	require.Equal(t, "aXb", buf.Contents())

	log.RecordAndApply(buf, Command{Kind: Delete, At: 0, Text: "a"})
	require.Equal(t, "Xb", buf.Contents())

	_, ok := log.Undo(buf)
	require.True(t, ok)
	assert.Equal(t, "aXb", buf.Contents())

	_, ok = log.Undo(buf)
	require.True(t, ok)
	assert.Equal(t, "ab", buf.Contents())

	_, ok = log.Undo(buf)
	assert.False(t, ok, "exhausted history must refuse to undo")

	_, ok = log.Redo(buf)
	require.True(t, ok)
	assert.Equal(t, "aXb", buf.Contents())

	_, ok = log.Redo(buf)
	require.True(t, ok)
	assert.Equal(t, "Xb", buf.Contents())

	_, ok = log.Redo(buf)
	assert.False(t, ok)
}

func TestRecordTruncatesRedo(t *testing.T) {
	buf := buffer.NewRopeBufferFromString("")
	log := NewLog(0)

	log.RecordAndApply(buf, Command{Kind: Insert, At: 0, Text: "a"})
	log.RecordAndApply(buf, Command{Kind: Insert, At: 1, Text: "b"})
	require.Equal(t, "ab", buf.Contents())

	_, ok := log.Undo(buf)
	require.True(t, ok)
	require.Equal(t, "a", buf.Contents())
	require.True(t, log.CanRedo())

	// A new edit discards the redoable "b".
	log.RecordAndApply(buf, Command{Kind: Insert, At: 1, Text: "c"})
	assert.Equal(t, "ac", buf.Contents())
	assert.False(t, log.CanRedo())

	_, ok = log.Redo(buf)
	assert.False(t, ok)
	assert.Equal(t, "ac", buf.Contents())
}

func TestUnicodeInverse(t *testing.T) {
	buf := buffer.NewRopeBufferFromString("日本語")
	log := NewLog(0)

	// Delete the middle character; the inverse must reinsert it at the
	// same rune offset, not a byte offset.
	log.RecordAndApply(buf, Command{Kind: Delete, At: 1, Text: "本"})
	require.Equal(t, "日語", buf.Contents())

	_, ok := log.Undo(buf)
	require.True(t, ok)
	assert.Equal(t, "日本語", buf.Contents())
}

func TestEvictionKeepsIndexCorrect(t *testing.T) {
	buf := buffer.NewRopeBufferFromString("")
	log := NewLog(3)

	for i := 0; i < 5; i++ {
		log.RecordAndApply(buf, Command{Kind: Insert, At: i, Text: "x"})
	}
	require.Equal(t, "xxxxx", buf.Contents())

	// Only the newest three entries survive.
	undone := 0
	for {
		if _, ok := log.Undo(buf); !ok {
			break
		}
		undone++
	}
	assert.Equal(t, 3, undone)
	assert.Equal(t, "xx", buf.Contents())
}

func TestClear(t *testing.T) {
	buf := buffer.NewRopeBufferFromString("")
	log := NewLog(0)
	log.RecordAndApply(buf, Command{Kind: Insert, At: 0, Text: "a"})
	log.Clear()
	assert.False(t, log.CanUndo())
	assert.False(t, log.CanRedo())
}
