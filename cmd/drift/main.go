// cmd/drift/main.go
package main

import (
	"fmt"
	"io"
	stlog "log"
	"os"
	"path/filepath"

	"github.com/driftedit/drift/internal/app"
	"github.com/driftedit/drift/internal/config"
	"github.com/driftedit/drift/internal/logger"
)

var version = "dev"

func main() {
	flags := &config.Flags{}
	args := flags.ParseFlags()

	if flags.Version != nil && *flags.Version {
		fmt.Printf("drift %s\n", version)
		os.Exit(0)
	}

	configPath := ""
	if flags.ConfigFilePath != nil {
		configPath = *flags.ConfigFilePath
	}
	cfg, err := config.LoadConfig(configPath, flags)
	if err != nil {
		stlog.Printf("Warning: %v", err)
	}

	logOutput, closeLog, err := openLogOutput(cfg.Logger.LogFilePath)
	if err != nil {
		stlog.Fatalf("Failed to open log file: %v", err)
	}
	defer closeLog()

	logger.Init(logger.ParseLevel(cfg.Logger.LogLevel), logOutput)
	logger.Infof("starting drift %s", version)

	filePath := ""
	if len(args) > 0 {
		filePath = args[0]
	}

	driftApp, err := app.NewApp(filePath, cfg)
	if err != nil {
		logger.Errorf("error initializing application: %v", err)
		fmt.Fprintf(os.Stderr, "drift: %v\n", err)
		os.Exit(1)
	}

	if err := driftApp.Run(); err != nil {
		logger.Errorf("application exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "drift: %v\n", err)
		os.Exit(1)
	}

	logger.Infof("drift finished")
}

// openLogOutput resolves the log destination: "-" means stderr, empty means
// the default file under the user config directory.
func openLogOutput(path string) (io.Writer, func(), error) {
	if path == "-" {
		return os.Stderr, func() {}, nil
	}
	if path == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return os.Stderr, func() {}, nil
		}
		dir := filepath.Join(configDir, config.ConfigDirName)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return os.Stderr, func() {}, nil
		}
		path = filepath.Join(dir, config.DefaultLogFileName)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
