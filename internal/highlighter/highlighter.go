// Package highlighter computes syntax highlights with tree-sitter. It is
// consumed through the LineHighlighter contract: a function from one line's
// text to styled spans, so callers stay independent of the parsing machinery.
package highlighter

import (
	"context"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/driftedit/drift/internal/highlighter/lang"
	"github.com/driftedit/drift/internal/logger"
	"github.com/driftedit/drift/internal/types"
	sitter "github.com/smacker/go-tree-sitter"
)

// Service owns a tree-sitter parser and compiled queries per language.
// Parsers are not safe for concurrent use; the mutex serializes calls.
type Service struct {
	mu      sync.Mutex
	parser  *sitter.Parser
	queries map[string]*sitter.Query // keyed by language name
}

// New creates a highlighter service with all built-in languages registered.
func New() *Service {
	registerOnce.Do(registerLanguages)
	return &Service{
		parser:  sitter.NewParser(),
		queries: make(map[string]*sitter.Query),
	}
}

// LineHighlighter returns the service as the per-line contract consumed by
// the rendering layer.
func (s *Service) LineHighlighter() types.LineHighlighter {
	return s.HighlightLine
}

// HighlightLine parses a single line in isolation and returns its styled
// spans in rune columns, ordered by start column. Unknown file types and
// parse failures yield no spans.
func (s *Service) HighlightLine(lineText, filePath string) []types.StyledRange {
	l := lang.GetForFile(filePath)
	if l == nil || lineText == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := s.queryFor(l)
	if query == nil {
		return nil
	}

	s.parser.SetLanguage(l.TreeSitterLang)
	source := []byte(lineText)
	tree, err := s.parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		logger.Debugf("highlighter: parse failed for %s line: %v", l.Name, err)
		return nil
	}
	defer tree.Close()

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(query, tree.RootNode())

	var ranges []types.StyledRange
	for {
		match, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, capture := range match.Captures {
			node := capture.Node
			// Spans beyond the first row don't apply to this line.
			if node.StartPoint().Row != 0 {
				continue
			}
			startCol := byteOffsetToRuneIndex(source, int(node.StartByte()))
			endByte := int(node.EndByte())
			if node.EndPoint().Row != 0 {
				endByte = len(source)
			}
			endCol := byteOffsetToRuneIndex(source, endByte)
			if endCol <= startCol {
				continue
			}
			ranges = append(ranges, types.StyledRange{
				StartCol: startCol,
				EndCol:   endCol,
				Style:    captureNameToStyle(query.CaptureNameForId(capture.Index)),
			})
		}
	}
	return ranges
}

// queryFor returns the compiled highlight query for a language, compiling
// and caching it on first use. A language whose query fails to compile is
// cached as nil so the error is logged once.
func (s *Service) queryFor(l *lang.Language) *sitter.Query {
	if query, ok := s.queries[l.Name]; ok {
		return query
	}

	var query *sitter.Query
	if src := l.GetQuery(); src != nil {
		var err error
		query, err = sitter.NewQuery(src, l.TreeSitterLang)
		if err != nil {
			logger.Warnf("highlighter: query compile failed for %s: %v", l.Name, err)
			query = nil
		}
	}
	s.queries[l.Name] = query
	return query
}

// captureNameToStyle maps a capture name like "keyword.control" to a style
// name, keeping the part before the first dot.
func captureNameToStyle(captureName string) types.StyleName {
	captureName = strings.TrimPrefix(captureName, "@")
	if dot := strings.Index(captureName, "."); dot != -1 {
		captureName = captureName[:dot]
	}
	return types.StyleName(captureName)
}

// byteOffsetToRuneIndex converts a byte offset within line to a rune index.
func byteOffsetToRuneIndex(line []byte, byteOffset int) int {
	if byteOffset <= 0 {
		return 0
	}
	if byteOffset > len(line) {
		byteOffset = len(line)
	}
	return utf8.RuneCount(line[:byteOffset])
}
