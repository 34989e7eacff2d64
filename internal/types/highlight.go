// internal/types/highlight.go
package types

// StyleName identifies a visual style for a span of text. The mapping from
// names to concrete colors/attributes belongs to the rendering layer.
type StyleName string

const (
	StyleNone     StyleName = ""
	StyleKeyword  StyleName = "keyword"
	StyleString   StyleName = "string"
	StyleComment  StyleName = "comment"
	StyleNumber   StyleName = "number"
	StyleFunction StyleName = "function"
	StyleType     StyleName = "type"
)

// StyledRange is a styled span within a single line, in rune columns.
// StartCol is inclusive, EndCol exclusive.
type StyledRange struct {
	StartCol int
	EndCol   int
	Style    StyleName
}

// LineHighlighter is the contract the editor core consumes from the syntax
// highlighter: a pure function from a line's text (and the file path, for
// language detection) to an ordered list of styled spans.
type LineHighlighter func(lineText string, filePath string) []StyledRange
