package layout

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/arran4/qapdf/highlight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tenPerRune measures every rune as 10pt wide, so a 100pt column holds ten.
var tenPerRune = MeasureFunc(func(s string) float64 { return float64(utf8.RuneCountInString(s)) * 10 })

func newTestEngine() *Engine {
	return New(tenPerRune, tenPerRune, highlight.Standard(), DefaultConfig(12))
}

func lineTexts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text()
	}
	return out
}

func TestWrapGreedyWords(t *testing.T) {
	e := newTestEngine()
	lines := e.Layout("the quick brown fox jumps over the lazy dog", 100)
	assert.Equal(t, []string{"the quick", "brown fox", "jumps over", "the lazy", "dog"}, lineTexts(lines))
	for _, l := range lines {
		assert.LessOrEqual(t, l.Width, 100.0, l.Text())
		assert.False(t, l.Forced)
		assert.Equal(t, 18.0, l.Height)
	}
}

func TestWrapRespectsWidthProperty(t *testing.T) {
	e := newTestEngine()
	texts := []string{
		"Explain `array_map` versus `foreach` when iterating over `$items` in PHP, and mention SELECT statements.",
		"a b c d e f g h i j k l m n o p q r s t u v w x y z",
		"supercalifragilisticexpialidocious is a word that does not fit",
		"`averyveryverylonginlinecodespan` then text",
	}
	for _, width := range []float64{30, 50, 100, 170} {
		for _, text := range texts {
			for _, l := range e.Layout(text, width) {
				if !l.Forced {
					assert.LessOrEqual(t, l.Width, width, "%q at %v", l.Text(), width)
				}
			}
		}
	}
}

func TestWrapHardBreaksLongWord(t *testing.T) {
	e := newTestEngine()
	lines := e.Layout("abcdefghijklmnopqrstuvwxy", 100)
	assert.Equal(t, []string{"abcdefghij", "klmnopqrst", "uvwxy"}, lineTexts(lines))
}

func TestWrapSingleGlyphIsForced(t *testing.T) {
	e := newTestEngine()
	lines := e.Layout("ab", 5)
	assert.Equal(t, []string{"a", "b"}, lineTexts(lines))
	for _, l := range lines {
		assert.True(t, l.Forced)
	}
}

func TestWrapInlineCodeMovesToFreshLine(t *testing.T) {
	e := newTestEngine()
	lines := e.Layout("call `strlen` now", 100)
	require.Equal(t, []string{"call", "strlen now"}, lineTexts(lines))
	require.Len(t, lines[1].Runs, 2)
	assert.Equal(t, Run{Text: "strlen", Style: InlineCode, Kind: highlight.Function, Width: 60}, lines[1].Runs[0])
	assert.Equal(t, Prose, lines[1].Runs[1].Style)
}

func TestWrapInlineCodeStaysInline(t *testing.T) {
	e := newTestEngine()
	lines := e.Layout("use `$x` ok", 200)
	require.Len(t, lines, 1)
	assert.Equal(t, "use $x ok", lines[0].Text())
	assert.Equal(t, highlight.Variable, lines[0].Runs[1].Kind)
}

func TestWrapInlineCodeIsFollowedBySpace(t *testing.T) {
	e := newTestEngine()
	lines := e.Layout("`$a``$b`", 200)
	require.Len(t, lines, 1)
	assert.Equal(t, "$a $b", lines[0].Text())
	require.Len(t, lines[0].Runs, 3)
	assert.Equal(t, Run{Text: " ", Style: Prose, Width: 10}, lines[0].Runs[1])
	assert.Equal(t, 50.0, lines[0].Width)

	lines = e.Layout("see `x`.", 200)
	assert.Equal(t, []string{"see x ."}, lineTexts(lines))
}

func TestWrapInlineCodeHardSplit(t *testing.T) {
	e := newTestEngine()
	lines := e.Layout("x `abcdefghijklmnopqrstuvwxy`", 100)
	assert.Equal(t, []string{"x", "abcdefghij", "klmnopqrst", "uvwxy"}, lineTexts(lines))
	for _, l := range lines[1:] {
		require.Len(t, l.Runs, 1)
		assert.Equal(t, InlineCode, l.Runs[0].Style)
	}
}

func TestWrapFencedCodeIsVerbatim(t *testing.T) {
	e := newTestEngine()
	text := "Intro\n```python\n    def foo():\n        return 1\n```\nAfter"
	lines := e.Layout(text, 100)
	require.Equal(t, []string{"Intro", "    def foo():", "        return 1", "After"}, lineTexts(lines))

	code := lines[1]
	assert.True(t, code.Code)
	assert.True(t, code.Forced)
	assert.Equal(t, 5.0, code.Before)
	assert.Equal(t, 0.0, code.After)
	assert.InDelta(t, 14.4, code.Height, 1e-9)
	assert.Equal(t, Run{Text: "    ", Style: BlockCode, Kind: highlight.Default, Width: 40}, code.Runs[0])
	assert.Equal(t, Run{Text: "def", Style: BlockCode, Kind: highlight.Keyword, Width: 30}, code.Runs[1])
	assert.Equal(t, Run{Text: "foo", Style: BlockCode, Kind: highlight.Function, Width: 30}, code.Runs[3])

	assert.Equal(t, 7.5, lines[2].After)
	assert.False(t, lines[3].Code)
}

func TestWrapExpandsTabsInCode(t *testing.T) {
	e := newTestEngine()
	lines := e.Layout("```\n\tx\n```", 400)
	require.Len(t, lines, 1)
	assert.Equal(t, "    x", lines[0].Text())
}

func TestWrapParagraphs(t *testing.T) {
	e := newTestEngine()
	assert.Equal(t, []string{"one", "", "two", "three"}, lineTexts(e.Layout("one\n\ntwo\nthree", 100)))
	assert.Equal(t, []string{"lead"}, lineTexts(e.Layout("\n\nlead\n\n", 100)))
}

type recordingDrawer struct {
	calls []string
	ys    []float64
	fail  bool
}

func (r *recordingDrawer) DrawRun(x, baseline float64, run Run) error {
	if r.fail {
		return errors.New("boom")
	}
	r.calls = append(r.calls, run.Text)
	r.ys = append(r.ys, baseline)
	return nil
}

func TestDrawTracksCursorAndOverflow(t *testing.T) {
	e := newTestEngine()
	lines := e.Layout("aa\nbb\ncc", 100)
	require.Len(t, lines, 3)

	d := &recordingDrawer{}
	pages := 0
	y, err := e.Draw(d, lines, Frame{X: 0, Width: 100, Bottom: 50, Overflow: func() (float64, error) {
		pages++
		return 10, nil
	}}, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, pages)
	assert.Equal(t, []string{"aa", "bb", "cc"}, d.calls)
	assert.Equal(t, []float64{20, 38, 10}, d.ys)
	assert.Equal(t, 28.0, y)
}

func TestDrawKeepsCodePaddingAfterOverflow(t *testing.T) {
	e := newTestEngine()
	lines := e.Layout("```\ncode\n```", 100)
	require.Len(t, lines, 1)

	d := &recordingDrawer{}
	pages := 0
	_, err := e.Draw(d, lines, Frame{Width: 100, Bottom: 22, Overflow: func() (float64, error) {
		pages++
		return 30, nil
	}}, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, pages)
	assert.Equal(t, []float64{35}, d.ys)
}

func TestDrawPropagatesErrors(t *testing.T) {
	e := newTestEngine()
	_, err := e.Render(&recordingDrawer{fail: true}, "text", Frame{Width: 100, Bottom: 1000}, 0)
	assert.Error(t, err)

	_, err = e.Render(&recordingDrawer{}, "a\nb", Frame{Width: 100, Bottom: 5, Overflow: func() (float64, error) {
		return 0, errors.New("no page")
	}}, 0)
	assert.Error(t, err)
}

func TestRenderReturnsFinalCursor(t *testing.T) {
	e := newTestEngine()
	d := &recordingDrawer{}
	lines := e.Layout("x\n```\ncode\n```", 100)
	y, err := e.Render(d, "x\n```\ncode\n```", Frame{Width: 100, Bottom: 1000}, 100)
	require.NoError(t, err)
	assert.InDelta(t, 100+Height(lines), y, 1e-9)
	assert.InDelta(t, 18+5+14.4+7.5, Height(lines), 1e-9)
}

func TestEstimateLines(t *testing.T) {
	assert.Equal(t, 5, EstimateLines("short\n```\na\nb\nc\n```", 60))
	assert.Equal(t, 3, EstimateLines(strings.Repeat("x", 130), 60))
	assert.Equal(t, 2, EstimateLines("one\ntwo", 60))
	assert.Equal(t, 0, EstimateLines("", 60))
}
