// internal/types/selection.go
package types

// Selection is a span of text between two positions. Start is the anchor
// and End follows the cursor; the pair is not kept ordered.
type Selection struct {
	Start Position
	End   Position
}

// IsActive reports whether the selection covers a non-empty span.
func (s Selection) IsActive() bool {
	return s.Start != s.End
}

// Normalized returns the selection ordered so Start precedes End in
// document order. Range-based operations must normalize before converting
// endpoints to buffer offsets.
func (s Selection) Normalized() Selection {
	if s.End.Before(s.Start) {
		return Selection{Start: s.End, End: s.Start}
	}
	return s
}
