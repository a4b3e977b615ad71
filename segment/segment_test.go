package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlainOnly(t *testing.T) {
	assert.Equal(t, []Segment{{Kind: PlainText, Content: "just words"}}, Parse("just words"))
	assert.Empty(t, Parse(""))
}

func TestParseFencedWithLanguage(t *testing.T) {
	text := "Look:\n```Python\n    def foo():\n        return 1\n```\nDone."
	require.Equal(t, []Segment{
		{Kind: PlainText, Content: "Look:\n"},
		{Kind: FencedCode, Content: "    def foo():\n        return 1", Language: "python"},
		{Kind: PlainText, Content: "\nDone."},
	}, Parse(text))
}

func TestParseFenceWithoutTag(t *testing.T) {
	require.Equal(t, []Segment{
		{Kind: FencedCode, Content: "x := 1"},
	}, Parse("```\nx := 1\n```"))
}

func TestParseUnterminatedFence(t *testing.T) {
	require.Equal(t, []Segment{
		{Kind: PlainText, Content: "Before "},
		{Kind: FencedCode, Content: "print(1)"},
	}, Parse("Before ```print(1)"))
}

func TestParseLongTagIsCode(t *testing.T) {
	segs := Parse("```abcdefghijklmnopqrstuvwxyz\n```")
	require.Len(t, segs, 1)
	assert.Equal(t, "", segs[0].Language)
	assert.Equal(t, "abcdefghijklmnopqrstuvwxyz", segs[0].Content)
}

func TestParseInline(t *testing.T) {
	require.Equal(t, []Segment{
		{Kind: PlainText, Content: "Use "},
		{Kind: InlineCode, Content: "$x"},
		{Kind: PlainText, Content: " and "},
		{Kind: InlineCode, Content: "count()"},
		{Kind: PlainText, Content: "."},
	}, Parse("Use `$x` and `count()`."))
}

func TestParseUnpairedBacktick(t *testing.T) {
	assert.Equal(t, []Segment{{Kind: PlainText, Content: "it`s fine"}}, Parse("it`s fine"))
	assert.Equal(t, []Segment{{Kind: PlainText, Content: "trailing ```"}}, Parse("trailing ```"))
	assert.Equal(t, []Segment{{Kind: PlainText, Content: "empty `` span"}}, Parse("empty `` span"))
}

func TestParseStructureRoundTrip(t *testing.T) {
	texts := []string{
		"a `b` c ```d``` e",
		"`x``y`",
		"one ```two``` three `four` five",
		"```go```tail",
	}
	for _, text := range texts {
		segs := Parse(text)
		var b strings.Builder
		for i, s := range segs {
			assert.NotEmpty(t, s.Content, text)
			if i > 0 {
				assert.False(t, s.Kind == PlainText && segs[i-1].Kind == PlainText, "adjacent plain segments in %q", text)
			}
			b.WriteString(s.Content)
		}
		assert.Equal(t, strings.ReplaceAll(text, "`", ""), b.String(), text)
	}
}

func TestLinesAndHasCode(t *testing.T) {
	segs := Parse("see ```\na\n  b\n```")
	require.Len(t, segs, 2)
	assert.Equal(t, []string{"a", "  b"}, Lines(segs[1]))
	assert.True(t, HasCode(segs))
	assert.False(t, HasCode(Parse("plain")))
	assert.Nil(t, Lines(Segment{Kind: FencedCode}))
}
