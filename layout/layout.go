// Package layout wraps segmented text into lines and draws them with a
// running vertical cursor.
//
// Coordinates follow the PDF canvas used by the renderer: the origin is the
// top-left corner and the cursor grows downward, so a larger y is lower on
// the page. The cursor passed around is the baseline of the next line.
package layout

import (
	"strings"

	"github.com/arran4/qapdf/highlight"
	"github.com/arran4/qapdf/segment"
)

// Measurer reports the advance width of s in points.
type Measurer interface {
	Width(s string) float64
}

// MeasureFunc adapts a function to Measurer.
type MeasureFunc func(s string) float64

func (f MeasureFunc) Width(s string) float64 { return f(s) }

// Style selects the font a run is drawn with.
type Style int

const (
	Prose Style = iota
	InlineCode
	BlockCode
)

// Run is a piece of a line drawn in one font and colour.
type Run struct {
	Text  string
	Style Style
	Kind  highlight.Kind
	Width float64
}

// Line is one wrapped line. Height is the advance to the next baseline and
// Before/After add padding around code blocks. Forced marks lines that are
// wider than the frame because they cannot be split (one glyph, or a
// verbatim code line).
type Line struct {
	Runs   []Run
	Width  float64
	Height float64
	Before float64
	After  float64
	Code   bool
	Forced bool
}

// Text joins the run texts.
func (l Line) Text() string {
	var b strings.Builder
	for _, r := range l.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Config controls vertical rhythm.
type Config struct {
	FontSize        float64
	LineSpacing     float64
	CodeLineSpacing float64
	CodePadTop      float64
	CodePadBottom   float64
	TabWidth        int
}

// DefaultConfig returns the standard spacing for size.
func DefaultConfig(size float64) Config {
	return Config{
		FontSize:        size,
		LineSpacing:     1.5,
		CodeLineSpacing: 1.2,
		CodePadTop:      5,
		CodePadBottom:   7.5,
		TabWidth:        4,
	}
}

// LineHeight is the prose line advance.
func (c Config) LineHeight() float64 { return c.FontSize * c.LineSpacing }

// CodeLineHeight is the code line advance.
func (c Config) CodeLineHeight() float64 { return c.FontSize * c.CodeLineSpacing }

// Engine wraps and draws text. It holds no per-render state.
type Engine struct {
	prose Measurer
	mono  Measurer
	hl    *highlight.Highlighter
	cfg   Config
}

// New builds an Engine. prose measures body text and mono measures code,
// both at cfg.FontSize.
func New(prose, mono Measurer, hl *highlight.Highlighter, cfg Config) *Engine {
	if hl == nil {
		hl = highlight.Standard()
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 4
	}
	return &Engine{prose: prose, mono: mono, hl: hl, cfg: cfg}
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// Highlighter returns the injected highlighter.
func (e *Engine) Highlighter() *highlight.Highlighter { return e.hl }

// Layout parses and wraps text.
func (e *Engine) Layout(text string, maxWidth float64) []Line {
	return e.Wrap(segment.Parse(text), maxWidth)
}

// Height is the vertical space lines occupy.
func Height(lines []Line) float64 {
	var h float64
	for _, l := range lines {
		h += l.Before + l.Height + l.After
	}
	return h
}

// EstimateLines approximates how many prose-height lines text needs at
// charsPerLine characters per line. Fenced blocks count every code line
// plus one line of padding so code never runs into what follows.
func EstimateLines(text string, charsPerLine int) int {
	if charsPerLine <= 0 {
		charsPerLine = 1
	}
	n := 0
	var plain strings.Builder
	countPlain := func() {
		s := strings.TrimSpace(plain.String())
		plain.Reset()
		if s == "" {
			return
		}
		for _, para := range strings.Split(s, "\n") {
			l := len([]rune(strings.TrimSpace(para)))
			n += max(1, (l+charsPerLine-1)/charsPerLine)
		}
	}
	for _, s := range segment.Parse(text) {
		switch s.Kind {
		case segment.FencedCode:
			countPlain()
			n += len(segment.Lines(s)) + 1
		default:
			plain.WriteString(s.Content)
		}
	}
	countPlain()
	return n
}
