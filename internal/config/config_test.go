package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsSurviveSparseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[editor]\ntab_width = 8\n"), 0644))

	cfg := NewDefaultConfig()
	require.NoError(t, loadFromFile(path, cfg))

	assert.Equal(t, 8, cfg.Editor.TabWidth)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, DefaultScrollOff, cfg.Editor.ScrollOff)
	assert.Equal(t, DefaultSystemClipboard, cfg.Editor.SystemClipboard)
	assert.Equal(t, DefaultMaxHistory, cfg.Editor.MaxHistory)
	assert.Equal(t, "info", cfg.Logger.LogLevel)
}

func TestFileCanDisableSystemClipboard(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[editor]\nsystem_clipboard = false\n"), 0644))

	cfg := NewDefaultConfig()
	require.NoError(t, loadFromFile(path, cfg))

	assert.False(t, cfg.Editor.SystemClipboard)
}

func TestMissingFileIsNotAnError(t *testing.T) {
	cfg := NewDefaultConfig()
	require.NoError(t, loadFromFile(filepath.Join(t.TempDir(), "absent.toml"), cfg))
	assert.Equal(t, DefaultTabWidth, cfg.Editor.TabWidth)
}

func TestMalformedFileFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[editor\ntab_width = "), 0644))

	cfg := NewDefaultConfig()
	assert.Error(t, loadFromFile(path, cfg))
}

func TestValidateResetsBadValues(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Editor.TabWidth = -1
	cfg.Editor.ScrollOff = -5
	cfg.Editor.MaxHistory = 0
	cfg.File.LargeFileThreshold = -1
	cfg.Logger.LogLevel = ""

	cfg.validate()

	assert.Equal(t, DefaultTabWidth, cfg.Editor.TabWidth)
	assert.Equal(t, DefaultScrollOff, cfg.Editor.ScrollOff)
	assert.Equal(t, DefaultMaxHistory, cfg.Editor.MaxHistory)
	assert.Equal(t, int64(DefaultLargeFileThreshold), cfg.File.LargeFileThreshold)
	assert.Equal(t, "info", cfg.Logger.LogLevel)
}
