// Package segment splits question and answer text into prose, inline code
// spans and fenced code blocks.
package segment

import (
	"regexp"
	"strings"
)

// Kind of a segment.
type Kind int

const (
	PlainText Kind = iota
	InlineCode
	FencedCode
)

func (k Kind) String() string {
	switch k {
	case InlineCode:
		return "inline"
	case FencedCode:
		return "fenced"
	default:
		return "plain"
	}
}

// Segment is one run of text. Language is only set for fenced blocks and is
// empty when the fence carried no tag.
type Segment struct {
	Kind     Kind
	Content  string
	Language string
}

const (
	fence     = "```"
	maxTagLen = 20
)

var inlineCode = regexp.MustCompile("`([^`]+)`")

// Parse splits text into segments in order. It never fails: an unterminated
// fence makes the rest of the text code and unpaired backticks stay plain.
func Parse(text string) []Segment {
	var segs []Segment
	add := func(s Segment) {
		if s.Content == "" {
			return
		}
		if n := len(segs); n > 0 && s.Kind == PlainText && segs[n-1].Kind == PlainText {
			segs[n-1].Content += s.Content
			return
		}
		segs = append(segs, s)
	}

	plainStart, i := 0, 0
	for {
		idx := strings.Index(text[i:], fence)
		if idx < 0 {
			break
		}
		open := i + idx
		if open+len(fence) >= len(text) {
			// A fence with nothing after it opens nothing.
			break
		}
		for _, s := range parseInline(text[plainStart:open]) {
			add(s)
		}
		lang, body := fenceTag(text, open+len(fence))
		next := len(text)
		content := text[body:]
		if end := strings.Index(text[body:], fence); end >= 0 {
			content = text[body : body+end]
			next = body + end + len(fence)
		}
		add(Segment{Kind: FencedCode, Content: trimCode(content), Language: lang})
		plainStart, i = next, next
	}
	for _, s := range parseInline(text[plainStart:]) {
		add(s)
	}
	return segs
}

// fenceTag reads an optional language tag starting at pos: 1-20 ASCII
// letters followed by optional blanks and then a newline or the end of text.
// It returns the lower-cased tag and the offset where the code begins.
func fenceTag(text string, pos int) (string, int) {
	n := pos
	for n < len(text) && n-pos < maxTagLen && isLetter(text[n]) {
		n++
	}
	tag := text[pos:n]
	for n < len(text) && (text[n] == ' ' || text[n] == '\t' || text[n] == '\r') {
		n++
	}
	switch {
	case n == len(text):
		return strings.ToLower(tag), n
	case text[n] == '\n':
		return strings.ToLower(tag), n + 1
	}
	return "", pos
}

func parseInline(text string) []Segment {
	var segs []Segment
	last := 0
	for _, m := range inlineCode.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > last {
			segs = append(segs, Segment{Kind: PlainText, Content: text[last:m[0]]})
		}
		segs = append(segs, Segment{Kind: InlineCode, Content: text[m[2]:m[3]]})
		last = m[1]
	}
	if last < len(text) {
		segs = append(segs, Segment{Kind: PlainText, Content: text[last:]})
	}
	return segs
}

// trimCode drops blank lines around a block and carriage returns, keeping
// the indentation of every remaining line.
func trimCode(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r")
	}
	return strings.Join(lines, "\n")
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// Lines splits a fenced block into the lines drawn verbatim.
func Lines(s Segment) []string {
	if s.Content == "" {
		return nil
	}
	return strings.Split(s.Content, "\n")
}

// HasCode reports whether any segment is code.
func HasCode(segs []Segment) bool {
	for _, s := range segs {
		if s.Kind != PlainText {
			return true
		}
	}
	return false
}
