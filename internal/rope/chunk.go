package rope

// Chunk size bounds, in bytes. Splits happen on rune boundaries, preferably
// just after a newline, so a chunk never holds a torn character.
const (
	minChunkSize    = 128
	maxChunkSize    = 256
	targetChunkSize = (minChunkSize + maxChunkSize) / 2
)

// chunk is a bounded immutable string stored in leaf nodes, with its
// metrics precomputed.
type chunk struct {
	data string
	sum  Summary
}

func newChunk(s string) chunk {
	return chunk{data: s, sum: computeSummary(s)}
}

func (c chunk) isEmpty() bool {
	return len(c.data) == 0
}

// split divides the chunk at a rune offset.
func (c chunk) split(chars int) (chunk, chunk) {
	if chars <= 0 {
		return chunk{}, c
	}
	if chars >= c.sum.Chars {
		return c, chunk{}
	}
	at := charToByte(c.data, chars)
	return newChunk(c.data[:at]), newChunk(c.data[at:])
}

// splitIntoChunks cuts a string into chunks of roughly targetChunkSize.
func splitIntoChunks(s string) []chunk {
	if len(s) == 0 {
		return nil
	}
	if len(s) <= maxChunkSize {
		return []chunk{newChunk(s)}
	}

	var chunks []chunk
	remaining := s
	for len(remaining) > 0 {
		if len(remaining) <= maxChunkSize {
			chunks = append(chunks, newChunk(remaining))
			break
		}
		at := findSplitPoint(remaining, targetChunkSize)
		chunks = append(chunks, newChunk(remaining[:at]))
		remaining = remaining[at:]
	}
	return chunks
}

// findSplitPoint picks a cut position near target: just after a nearby
// newline when one exists, otherwise the closest rune boundary.
func findSplitPoint(s string, target int) int {
	if target >= len(s) {
		return len(s)
	}

	lo := target - minChunkSize/4
	if lo < 0 {
		lo = 0
	}
	hi := target + minChunkSize/4
	if hi > len(s) {
		hi = len(s)
	}
	for i := target; i < hi; i++ {
		if s[i] == '\n' {
			return i + 1
		}
	}
	for i := target - 1; i >= lo; i-- {
		if s[i] == '\n' {
			return i + 1
		}
	}

	// No newline nearby; back up to a rune start.
	at := target
	for at > 0 && !isRuneStart(s[at]) {
		at--
	}
	if at == 0 {
		at = target
		for at < len(s) && !isRuneStart(s[at]) {
			at++
		}
	}
	return at
}

// isRuneStart reports whether b begins a UTF-8 sequence
// (continuation bytes look like 10xxxxxx).
func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
