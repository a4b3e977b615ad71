package layout

import (
	"strings"
	"unicode"

	"github.com/arran4/qapdf/segment"
)

// Wrap turns segments into lines no wider than maxWidth. Prose breaks at
// whitespace, inline code is followed by a space and moves to a fresh line
// before it is split, and fenced code keeps its own line breaks.
func (e *Engine) Wrap(segs []segment.Segment, maxWidth float64) []Line {
	w := &wrapper{e: e, max: maxWidth}
	for _, s := range segs {
		switch s.Kind {
		case segment.PlainText:
			w.plain(s.Content)
		case segment.InlineCode:
			w.inline(s.Content)
		case segment.FencedCode:
			w.fenced(s)
		}
	}
	w.flush()
	return w.lines
}

type wrapper struct {
	e     *Engine
	max   float64
	lines []Line
	cur   []Run
	curW  float64
	gap   bool
}

func (w *wrapper) add(r Run) {
	if w.gap && len(w.cur) == 0 {
		w.gap = false
		if n := len(w.lines); n > 0 && !w.lines[n-1].Code && len(w.lines[n-1].Runs) > 0 {
			w.lines = append(w.lines, Line{Height: w.e.cfg.LineHeight()})
		}
	}
	if n := len(w.cur); n > 0 && r.Style == Prose && w.cur[n-1].Style == Prose {
		w.cur[n-1].Text += r.Text
		w.cur[n-1].Width += r.Width
	} else {
		w.cur = append(w.cur, r)
	}
	w.curW += r.Width
}

func (w *wrapper) flush() {
	if len(w.cur) == 0 {
		return
	}
	last := &w.cur[len(w.cur)-1]
	if last.Style == Prose {
		if trimmed := strings.TrimRight(last.Text, " "); trimmed != last.Text {
			w.curW -= last.Width
			last.Text = trimmed
			last.Width = w.e.prose.Width(trimmed)
			w.curW += last.Width
			if trimmed == "" {
				w.cur = w.cur[:len(w.cur)-1]
			}
		}
	}
	if len(w.cur) > 0 {
		w.lines = append(w.lines, Line{
			Runs:   w.cur,
			Width:  w.curW,
			Height: w.e.cfg.LineHeight(),
			Forced: w.curW > w.max,
		})
	}
	w.cur = nil
	w.curW = 0
}

// paragraph ends the current line. A blank line is inserted before the
// next prose, unless the text so far ends in a code block.
func (w *wrapper) paragraph() {
	w.flush()
	w.gap = true
}

func (w *wrapper) space() {
	n := len(w.cur)
	if n == 0 || (w.cur[n-1].Style == Prose && strings.HasSuffix(w.cur[n-1].Text, " ")) {
		return
	}
	sw := w.e.prose.Width(" ")
	if w.curW+sw > w.max {
		w.flush()
		return
	}
	w.add(Run{Text: " ", Style: Prose, Width: sw})
}

func (w *wrapper) plain(text string) {
	for _, tok := range splitTextPreserveSpaces(text) {
		if strings.TrimSpace(tok) == "" {
			switch nl := strings.Count(tok, "\n"); {
			case nl > 1:
				w.paragraph()
			case nl == 1:
				w.flush()
			default:
				w.space()
			}
			continue
		}
		ww := w.e.prose.Width(tok)
		if w.curW+ww <= w.max {
			w.add(Run{Text: tok, Style: Prose, Width: ww})
			continue
		}
		w.flush()
		if ww <= w.max {
			w.add(Run{Text: tok, Style: Prose, Width: ww})
			continue
		}
		for _, part := range breakToWidth(w.e.prose, tok, w.max) {
			w.add(Run{Text: part, Style: Prose, Width: w.e.prose.Width(part)})
			w.flush()
		}
	}
}

func (w *wrapper) inline(code string) {
	kind := w.e.hl.ClassifySpan(code)
	cw := w.e.mono.Width(code)
	if w.curW+cw > w.max {
		w.flush()
	}
	if cw <= w.max {
		w.add(Run{Text: code, Style: InlineCode, Kind: kind, Width: cw})
		w.space()
		return
	}
	for _, part := range breakToWidth(w.e.mono, code, w.max) {
		w.add(Run{Text: part, Style: InlineCode, Kind: kind, Width: w.e.mono.Width(part)})
		w.flush()
	}
}

func (w *wrapper) fenced(s segment.Segment) {
	w.flush()
	w.gap = false
	code := segment.Lines(s)
	if len(code) == 0 {
		return
	}
	tab := strings.Repeat(" ", w.e.cfg.TabWidth)
	start := len(w.lines)
	for _, src := range code {
		src = strings.ReplaceAll(src, "\t", tab)
		line := Line{Height: w.e.cfg.CodeLineHeight(), Code: true}
		for _, tok := range w.e.hl.Classify(src, s.Language) {
			tw := w.e.mono.Width(tok.Text)
			line.Runs = append(line.Runs, Run{Text: tok.Text, Style: BlockCode, Kind: tok.Kind, Width: tw})
			line.Width += tw
		}
		line.Forced = line.Width > w.max
		w.lines = append(w.lines, line)
	}
	w.lines[start].Before = w.e.cfg.CodePadTop
	w.lines[len(w.lines)-1].After = w.e.cfg.CodePadBottom
}

// splitTextPreserveSpaces splits s into alternating runs of whitespace and
// non-whitespace.
func splitTextPreserveSpaces(s string) []string {
	var parts []string
	start := 0
	inSpace := false
	for i, r := range s {
		sp := unicode.IsSpace(r)
		if i == 0 {
			inSpace = sp
			continue
		}
		if sp != inSpace {
			parts = append(parts, s[start:i])
			start = i
			inSpace = sp
		}
	}
	if start < len(s) {
		parts = append(parts, s[start:])
	}
	return parts
}

// breakToWidth splits token into pieces that each fit maxWidth. Every piece
// holds at least one rune so the loop always makes progress.
func breakToWidth(m Measurer, token string, maxWidth float64) []string {
	var parts []string
	var current strings.Builder
	for _, r := range token {
		ch := string(r)
		if current.Len() > 0 && m.Width(current.String()+ch) > maxWidth {
			parts = append(parts, current.String())
			current.Reset()
		}
		current.WriteString(ch)
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	if len(parts) == 0 {
		parts = append(parts, token)
	}
	return parts
}
