package lang

import (
	"fmt"
	"io/fs"

	"github.com/driftedit/drift/internal/logger"
	sitter "github.com/smacker/go-tree-sitter"
)

// QueryFS holds the embedded highlight query files. The parent package sets
// it during registration.
var QueryFS fs.FS

// Language binds a tree-sitter grammar to file extensions and the location
// of its highlight query.
type Language struct {
	Name           string
	TreeSitterLang *sitter.Language
	Extensions     []string
	QueryPath      string // directory name under queries/
}

// GetQuery loads the highlight query source for this language.
func (l *Language) GetQuery() []byte {
	if QueryFS == nil {
		logger.Warnf("lang: QueryFS not set, cannot load queries")
		return nil
	}
	if l.QueryPath == "" {
		return nil
	}

	queryPath := fmt.Sprintf("queries/%s/highlights.scm", l.QueryPath)
	query, err := fs.ReadFile(QueryFS, queryPath)
	if err != nil {
		logger.Warnf("lang: failed to load query for %s: %v", l.Name, err)
		return nil
	}
	return query
}
