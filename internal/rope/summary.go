// Package rope implements a balanced, chunked rope over Unicode scalar
// values. All public offsets are character (rune) indices; byte lengths are
// tracked internally for storage but never leak into the API. Ropes are
// immutable: every edit returns a new value sharing structure with the old
// one, which keeps insert/delete/slice at O(log n) for large documents.
package rope

// Summary holds aggregated metrics for a span of text. It forms a monoid
// under Add, which is what lets the tree answer offset and line queries
// without touching the text itself.
type Summary struct {
	Bytes    int // UTF-8 byte count
	Chars    int // Unicode scalar count
	Newlines int // '\n' count
}

// Add combines two summaries of adjacent spans.
func (s Summary) Add(other Summary) Summary {
	return Summary{
		Bytes:    s.Bytes + other.Bytes,
		Chars:    s.Chars + other.Chars,
		Newlines: s.Newlines + other.Newlines,
	}
}

// computeSummary calculates metrics for a string in one pass.
func computeSummary(text string) Summary {
	sum := Summary{Bytes: len(text)}
	for _, r := range text {
		sum.Chars++
		if r == '\n' {
			sum.Newlines++
		}
	}
	return sum
}

// charToByte returns the byte offset of the given rune index within s.
// A rune index at or past the end of s maps to len(s).
func charToByte(s string, chars int) int {
	if chars <= 0 {
		return 0
	}
	seen := 0
	for i := range s {
		if seen == chars {
			return i
		}
		seen++
	}
	return len(s)
}
