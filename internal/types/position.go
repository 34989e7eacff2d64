// internal/types/position.go
package types

// Position represents a cursor or text position within the buffer.
// Line is the 0-based line index.
// Col is the 0-based column (rune) index within the line.
// Rune indices keep positions stable across multi-byte characters.
type Position struct {
	Line int
	Col  int // Rune index
}

// Before reports whether p comes before other in document order
// (line-major, then column).
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}
