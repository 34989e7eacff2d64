package lang

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/driftedit/drift/internal/logger"
)

var (
	registry struct {
		sync.RWMutex
		languages     []*Language
		extToLanguage map[string]*Language
	}

	initOnce sync.Once
)

// Initialize prepares the registry for use.
func Initialize() {
	initOnce.Do(func() {
		registry.extToLanguage = make(map[string]*Language)
	})
}

// Register adds a language to the registry, mapping its extensions.
func Register(l *Language) {
	Initialize()

	registry.Lock()
	defer registry.Unlock()

	registry.languages = append(registry.languages, l)
	for _, ext := range l.Extensions {
		lowerExt := strings.ToLower(ext)
		if existing, ok := registry.extToLanguage[lowerExt]; ok {
			logger.Warnf("lang: extension %s already registered to %s, overriding with %s",
				lowerExt, existing.Name, l.Name)
		}
		registry.extToLanguage[lowerExt] = l
	}
}

// GetForFile returns the language registered for a file's extension, or nil.
func GetForFile(filePath string) *Language {
	Initialize()

	registry.RLock()
	defer registry.RUnlock()

	return registry.extToLanguage[strings.ToLower(filepath.Ext(filePath))]
}

// GetAll returns all registered languages.
func GetAll() []*Language {
	Initialize()

	registry.RLock()
	defer registry.RUnlock()

	result := make([]*Language, len(registry.languages))
	copy(result, registry.languages)
	return result
}
