// internal/theme/manager.go
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/driftedit/drift/internal/config"
	"github.com/driftedit/drift/internal/logger"
)

// Manager holds loaded themes and tracks the active one.
type Manager struct {
	mu          sync.RWMutex
	themes      map[string]*Theme // keyed by lowercase name
	activeTheme *Theme
	themesDir   string
}

// NewManager creates a manager with the built-in theme registered and any
// user themes loaded from the config directory.
func NewManager() *Manager {
	m := &Manager{
		themes: map[string]*Theme{
			strings.ToLower(DriftDark.Name): &DriftDark,
		},
		activeTheme: &DriftDark,
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		logger.Warnf("theme: cannot find user config dir, skipping user themes: %v", err)
		return m
	}
	m.themesDir = filepath.Join(configDir, config.ConfigDirName, "themes")
	if err := m.loadThemesFromDir(); err != nil {
		logger.Warnf("theme: error loading themes from %q: %v", m.themesDir, err)
	}
	return m
}

func (m *Manager) loadThemesFromDir() error {
	entries, err := os.ReadDir(m.themesDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		t, err := LoadThemeFromFile(filepath.Join(m.themesDir, entry.Name()))
		if err != nil {
			logger.Warnf("theme: skipping %q: %v", entry.Name(), err)
			continue
		}
		m.themes[strings.ToLower(t.Name)] = t
	}
	return nil
}

// Current returns the active theme.
func (m *Manager) Current() *Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.activeTheme
}

// SetTheme activates a theme by name (case-insensitive).
func (m *Manager) SetTheme(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.themes[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("theme %q not found", name)
	}
	m.activeTheme = t
	logger.Infof("theme switched to %s", t.Name)
	return nil
}

// ListThemes returns the names of all loaded themes, sorted.
func (m *Manager) ListThemes() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.themes))
	for _, t := range m.themes {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}
