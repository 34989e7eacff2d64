// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/driftedit/drift/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Editor EditorConfig  `toml:"editor"`
	File   FileConfig    `toml:"file"`
}

// EditorConfig holds editor behavior settings.
type EditorConfig struct {
	TabWidth        int  `toml:"tab_width"`
	ScrollOff       int  `toml:"scroll_off"`
	SystemClipboard bool `toml:"system_clipboard"`
	MaxHistory      int  `toml:"max_history"`
}

// FileConfig holds file loading and saving settings.
type FileConfig struct {
	LargeFileThreshold int64 `toml:"large_file_threshold"`
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config populated with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: "",
		},
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			ScrollOff:       DefaultScrollOff,
			SystemClipboard: DefaultSystemClipboard,
			MaxHistory:      DefaultMaxHistory,
		},
		File: FileConfig{
			LargeFileThreshold: DefaultLargeFileThreshold,
		},
	}
}

// loadFromFile decodes a TOML file over cfg, so keys absent from the file
// keep their current values. A missing file is not an error.
func loadFromFile(filePath string, cfg *Config) error {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file %q: %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file %q: %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("config file %q: unrecognized keys: %v", filePath, undecoded)
	}
	return nil
}

// validate resets out-of-range values to their defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.ScrollOff < 0 {
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if c.Editor.MaxHistory <= 0 {
		c.Editor.MaxHistory = defaults.Editor.MaxHistory
	}
	if c.File.LargeFileThreshold <= 0 {
		c.File.LargeFileThreshold = defaults.File.LargeFileThreshold
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// LoadConfig merges defaults, the config file, and flag overrides. Call once
// from main; later calls return the same result.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		cfg := NewDefaultConfig()

		effectivePath := configFilePath
		if effectivePath == "" {
			if configDir, err := os.UserConfigDir(); err == nil {
				effectivePath = filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
			}
		}

		if effectivePath != "" {
			if err := loadFromFile(effectivePath, cfg); err != nil {
				loadErr = err
			}
		}

		if flags != nil {
			flags.ApplyOverrides(cfg)
		}

		cfg.validate()
		loadedConfig = cfg
	})

	return loadedConfig, loadErr
}

// Get returns the loaded configuration. Panics if LoadConfig was not called.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}
