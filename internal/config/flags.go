// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
)

// Flags holds values parsed from command-line flags. Pointers distinguish
// unset flags from zero-value flags.
type Flags struct {
	ConfigFilePath  *string
	Version         *bool
	LogLevel        *string
	LogFilePath     *string
	TabWidth        *int
	ScrollOff       *int
	MaxHistory      *int
	SystemClipboard *bool
}

// DefineFlags registers the command-line flags.
func (f *Flags) DefineFlags() {
	f.ConfigFilePath = flag.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", ConfigDirName, DefaultConfigFileName))
	f.Version = flag.Bool("version", false, "Show version information and exit")
	f.LogLevel = flag.String("loglevel", "", "Log level (debug, info, warn, error) - overrides config file")
	f.LogFilePath = flag.String("logfile", "", "Path to write log file (use '-' for stderr) - overrides config file")
	f.TabWidth = flag.Int("tabwidth", 0, "Number of spaces per tab - overrides config file")
	f.ScrollOff = flag.Int("scrolloff", -1, "Lines of context above/below cursor - overrides config file")
	f.MaxHistory = flag.Int("maxhistory", 0, "Maximum number of undoable edits - overrides config file")
	f.SystemClipboard = flag.Bool("system-clipboard", false, "Use the system clipboard instead of the internal register")
}

// ParseFlags parses the command line and returns the remaining non-flag
// arguments (typically the file to open).
func (f *Flags) ParseFlags() []string {
	f.DefineFlags()
	flag.Parse()
	return flag.Args()
}

// ApplyOverrides copies flags that were explicitly set onto the Config.
func (f *Flags) ApplyOverrides(cfg *Config) {
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			if f.LogLevel != nil && *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			if f.LogFilePath != nil {
				cfg.Logger.LogFilePath = *f.LogFilePath
			}
		case "tabwidth":
			if f.TabWidth != nil && *f.TabWidth > 0 {
				cfg.Editor.TabWidth = *f.TabWidth
			}
		case "scrolloff":
			if f.ScrollOff != nil && *f.ScrollOff >= 0 {
				cfg.Editor.ScrollOff = *f.ScrollOff
			}
		case "maxhistory":
			if f.MaxHistory != nil && *f.MaxHistory > 0 {
				cfg.Editor.MaxHistory = *f.MaxHistory
			}
		case "system-clipboard":
			if f.SystemClipboard != nil {
				cfg.Editor.SystemClipboard = *f.SystemClipboard
			}
		}
	})
}
