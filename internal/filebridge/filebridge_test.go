package filebridge

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/driftedit/drift/internal/buffer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	content := "hello\nworld\nhé界\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	buf, err := Load(path, 0)
	require.NoError(t, err)
	assert.Equal(t, content, buf.Contents())
	assert.Equal(t, path, buf.FilePath())
	assert.False(t, buf.IsModified())

	buf.Insert(0, "x")
	require.True(t, buf.IsModified())
	require.NoError(t, Save(buf, ""))
	assert.False(t, buf.IsModified())

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x"+content, string(onDisk))
}

func TestLoadMissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")

	buf, err := Load(path, 0)
	require.NoError(t, err)
	assert.Equal(t, "", buf.Contents())
	assert.Equal(t, path, buf.FilePath())
	assert.False(t, buf.IsModified())

	// First save creates the file.
	buf.Insert(0, "fresh")
	require.NoError(t, Save(buf, ""))
	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(onDisk))
}

func TestLoadRejectsInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.bin")
	require.NoError(t, os.WriteFile(path, []byte{0x68, 0x69, 0xff, 0xfe}, 0644))

	_, err := Load(path, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestLoadRejectsDirectory(t *testing.T) {
	_, err := Load(t.TempDir(), 0)
	assert.Error(t, err)
}

func TestLoadLargeFileViaMmap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.txt")
	line := strings.Repeat("abcdefghij", 10) + "\n" // 101 bytes
	content := strings.Repeat(line, 12000)          // > 1 MiB
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	// Threshold of 1 forces the mapped path regardless of platform default.
	mapped, err := Load(path, 1)
	require.NoError(t, err)

	plain, err := Load(path, int64(len(content))+1)
	require.NoError(t, err)

	assert.Equal(t, plain.Contents(), mapped.Contents())
	assert.Equal(t, content, mapped.Contents())
	assert.Equal(t, 12001, mapped.LineCount())
}

func TestSaveAsUpdatesPath(t *testing.T) {
	dir := t.TempDir()
	buf := buffer.NewRopeBufferFromString("content")
	buf.SetFilePath(filepath.Join(dir, "a.txt"))

	newPath := filepath.Join(dir, "b.txt")
	require.NoError(t, Save(buf, newPath))

	assert.Equal(t, newPath, buf.FilePath())
	onDisk, err := os.ReadFile(newPath)
	require.NoError(t, err)
	assert.Equal(t, "content", string(onDisk))
}

func TestSaveWithoutPathFails(t *testing.T) {
	buf := buffer.NewRopeBufferFromString("content")
	assert.Error(t, Save(buf, ""))
}

func TestSaveTruncatesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("long", 100)), 0644))

	buf := buffer.NewRopeBufferFromString("short")
	buf.SetFilePath(path)
	require.NoError(t, Save(buf, ""))

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short", string(onDisk))
}
