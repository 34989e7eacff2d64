package rope

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestFromStringRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"hello",
		"hello\nworld",
		"trailing newline\n",
		"héllo wörld 世界",
		strings.Repeat("0123456789", 100),
		strings.Repeat("line of text\n", 500),
	}
	for _, text := range tests {
		r := FromString(text)
		assert.Equal(t, text, r.String())
		assert.Equal(t, len([]rune(text)), r.Len())
		assert.Equal(t, len(text), r.LenBytes())
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name string
		base string
		at   int
		text string
		want string
	}{
		{"middle", "ab", 1, "X", "aXb"},
		{"start", "ab", 0, "X", "Xab"},
		{"end", "ab", 2, "X", "abX"},
		{"past end clamps", "ab", 99, "X", "abX"},
		{"negative clamps", "ab", -1, "X", "Xab"},
		{"into empty", "", 0, "hello", "hello"},
		{"multi line", "ab", 1, "X\nY", "aX\nYb"},
		{"unicode offset", "héllo", 2, "界", "hé界llo"},
		{"empty text", "ab", 1, "", "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromString(tt.base).Insert(tt.at, tt.text)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name       string
		base       string
		start, end int
		want       string
	}{
		{"middle", "hello", 1, 3, "hlo"},
		{"prefix", "hello", 0, 2, "llo"},
		{"suffix", "hello", 3, 5, "hel"},
		{"all", "hello", 0, 5, ""},
		{"empty range", "hello", 2, 2, "hello"},
		{"inverted range", "hello", 3, 1, "hello"},
		{"clamped end", "hello", 3, 99, "hel"},
		{"across newline", "ab\ncd", 1, 4, "ad"},
		{"unicode", "hé界lo", 1, 3, "hlo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromString(tt.base).Delete(tt.start, tt.end)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestSlice(t *testing.T) {
	r := FromString("hello\nworld")
	assert.Equal(t, "hello", r.Slice(0, 5))
	assert.Equal(t, "o\nw", r.Slice(4, 7))
	assert.Equal(t, "", r.Slice(3, 3))
	assert.Equal(t, "world", r.Slice(6, 99))
	assert.Equal(t, "hello\nworld", r.Slice(-5, 99))
}

func TestLineQueries(t *testing.T) {
	r := FromString("ab\ncd\n\nefg")
	require.Equal(t, 4, r.LineCount())

	assert.Equal(t, 0, r.LineToChar(0))
	assert.Equal(t, 3, r.LineToChar(1))
	assert.Equal(t, 6, r.LineToChar(2))
	assert.Equal(t, 7, r.LineToChar(3))
	assert.Equal(t, r.Len(), r.LineToChar(99))

	assert.Equal(t, "ab", r.Line(0))
	assert.Equal(t, "cd", r.Line(1))
	assert.Equal(t, "", r.Line(2))
	assert.Equal(t, "efg", r.Line(3))

	assert.Equal(t, 2, r.LineLen(0))
	assert.Equal(t, 0, r.LineLen(2))
	assert.Equal(t, 3, r.LineLen(3))

	assert.Equal(t, 0, r.CharToLine(0))
	assert.Equal(t, 0, r.CharToLine(2))
	assert.Equal(t, 1, r.CharToLine(3))
	assert.Equal(t, 2, r.CharToLine(6))
	assert.Equal(t, 3, r.CharToLine(r.Len()))
}

func TestEmptyRope(t *testing.T) {
	r := New()
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 1, r.LineCount())
	assert.Equal(t, "", r.Line(0))
	assert.Equal(t, 0, r.LineLen(0))
	assert.Equal(t, "", r.String())

	var zero Rope
	assert.Equal(t, 0, zero.Len())
	assert.Equal(t, 1, zero.LineCount())
	assert.Equal(t, "", zero.String())
}

func TestTrailingNewlineOpensLine(t *testing.T) {
	r := FromString("ab\n")
	assert.Equal(t, 2, r.LineCount())
	assert.Equal(t, "", r.Line(1))
	assert.Equal(t, 3, r.LineToChar(1))
}

func TestSplitConcat(t *testing.T) {
	text := strings.Repeat("some moderately long line of text\n", 200)
	r := FromString(text)
	for _, at := range []int{0, 1, 100, r.Len() / 2, r.Len() - 1, r.Len()} {
		left, right := r.Split(at)
		assert.Equal(t, at, left.Len())
		assert.Equal(t, text, left.Concat(right).String(), "split at %d", at)
	}
}

func TestWriteTo(t *testing.T) {
	text := strings.Repeat("chunked content with ünïcode\n", 300)
	r := FromString(text)

	var buf bytes.Buffer
	n, err := r.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len(text)), n)
	assert.Equal(t, text, buf.String())
}

func TestEditsOnLargeText(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 2000; i++ {
		sb.WriteString("the quick brown fox jumps over the lazy dog\n")
	}
	text := sb.String()
	r := FromString(text)

	r = r.Insert(r.LineToChar(1000), "INSERTED\n")
	assert.Equal(t, 2002, r.LineCount())
	assert.Equal(t, "INSERTED", r.Line(1000))

	start := r.LineToChar(1000)
	r = r.Delete(start, start+len("INSERTED")+1)
	assert.Equal(t, text, r.String())
}

// naiveLines mirrors the rope's line model: a trailing newline opens an
// empty final line.
func naiveLines(s string) []string {
	return strings.Split(s, "\n")
}

func TestRopeMatchesNaiveModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		model := rapid.StringMatching(`[a-z\n]{0,64}`).Draw(t, "initial")
		r := FromString(model)

		steps := rapid.IntRange(0, 20).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			runes := []rune(model)
			if rapid.Bool().Draw(t, "insert") || len(runes) == 0 {
				at := rapid.IntRange(0, len(runes)).Draw(t, "at")
				text := rapid.StringMatching(`[a-z\n]{0,8}`).Draw(t, "text")
				r = r.Insert(at, text)
				model = string(runes[:at]) + text + string(runes[at:])
			} else {
				start := rapid.IntRange(0, len(runes)).Draw(t, "start")
				end := rapid.IntRange(start, len(runes)).Draw(t, "end")
				r = r.Delete(start, end)
				model = string(runes[:start]) + string(runes[end:])
			}
		}

		require.Equal(t, model, r.String())
		require.Equal(t, len([]rune(model)), r.Len())

		lines := naiveLines(model)
		require.Equal(t, len(lines), r.LineCount())
		for i, line := range lines {
			require.Equal(t, line, r.Line(i), "line %d", i)
			require.Equal(t, len([]rune(line)), r.LineLen(i), "line %d", i)
			require.Equal(t, i, r.CharToLine(r.LineToChar(i)), "line %d", i)
		}
	})
}
