// Package highlight splits lines of source code into coloured tokens.
//
// Two small grammars (Python-like and PHP-like) are scanned by hand with a
// fixed category order: comment, string, tag, variable or decorator sigil,
// keyword, number, then function-call name. Other languages known to chroma
// are tokenised by chroma and mapped onto the same kinds.
package highlight

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Config holds the tables a Highlighter is built from.
type Config struct {
	Grammars []Grammar
	Spans    SpanRules
}

// Highlighter classifies code. It is immutable once built and safe for
// concurrent use.
type Highlighter struct {
	grammars map[string]*compiledGrammar
	spans    compiledSpans
}

// New builds a Highlighter from cfg.
func New(cfg Config) *Highlighter {
	h := &Highlighter{
		grammars: make(map[string]*compiledGrammar),
		spans:    compileSpans(cfg.Spans),
	}
	for _, g := range cfg.Grammars {
		cg := compile(g)
		h.grammars[strings.ToLower(g.Name)] = cg
		for _, a := range g.Aliases {
			h.grammars[strings.ToLower(a)] = cg
		}
	}
	return h
}

// Standard returns a Highlighter with the Python and PHP grammars and the PHP
// inline span rules.
func Standard() *Highlighter {
	return New(Config{
		Grammars: []Grammar{Python(), PHP()},
		Spans:    PHPSpans(),
	})
}

// Language resolves a fence tag to the canonical grammar name, or "" when
// no built-in grammar handles it.
func (h *Highlighter) Language(lang string) string {
	g, _ := h.resolve(lang)
	if g == nil {
		return ""
	}
	return g.name
}

func (h *Highlighter) resolve(lang string) (*compiledGrammar, chroma.Lexer) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return nil, nil
	}
	if g, ok := h.grammars[lang]; ok {
		return g, nil
	}
	lexer := lexers.Get(lang)
	if lexer == nil {
		return nil, nil
	}
	cfg := lexer.Config()
	if g, ok := h.grammars[strings.ToLower(cfg.Name)]; ok {
		return g, nil
	}
	for _, a := range cfg.Aliases {
		if g, ok := h.grammars[strings.ToLower(a)]; ok {
			return g, nil
		}
	}
	return nil, lexer
}

// Classify splits one line of code into tokens. It never fails: unknown
// languages and odd input degrade to default tokens.
func (h *Highlighter) Classify(line, lang string) []Token {
	if line == "" {
		return nil
	}
	body := strings.TrimLeftFunc(line, unicode.IsSpace)
	var out []Token
	if indent := line[:len(line)-len(body)]; indent != "" {
		out = append(out, Token{Kind: Default, Text: indent})
	}
	if body == "" {
		return out
	}
	g, lexer := h.resolve(lang)
	switch {
	case g != nil:
		return append(out, g.classify(body)...)
	case lexer != nil:
		return append(out, classifyChroma(lexer, body)...)
	default:
		return append(out, Token{Kind: Default, Text: body})
	}
}

func (g *compiledGrammar) classify(body string) []Token {
	if g.lineComment(body) > 0 {
		return []Token{{Kind: Comment, Text: body}}
	}
	var out []Token
	emit := func(k Kind, s string) {
		if k == Default && len(out) > 0 && out[len(out)-1].Kind == Default {
			out[len(out)-1].Text += s
			return
		}
		out = append(out, Token{Kind: k, Text: s})
	}
	rest := body
	for rest != "" {
		k, n := g.match(rest)
		if n <= 0 {
			k, n = Default, fallbackLen(rest)
		}
		emit(k, rest[:n])
		rest = rest[n:]
	}
	return out
}

// match tries each category at the start of s and returns the first hit.
func (g *compiledGrammar) match(s string) (Kind, int) {
	if g.lineComment(s) > 0 {
		return Comment, len(s)
	}
	if n := g.stringLen(s); n > 0 {
		return String, n
	}
	for _, tag := range g.tags {
		if strings.HasPrefix(s, tag) {
			return Keyword, len(tag)
		}
	}
	if n := sigilLen(s, g.variable, isWord); n > 0 {
		return Variable, n
	}
	if n := sigilLen(s, g.decorator, func(r rune) bool { return isWord(r) || r == '.' }); n > 0 {
		return Decorator, n
	}
	word := identLen(s)
	if word > 0 {
		if _, ok := g.keywords[s[:word]]; ok {
			return Keyword, word
		}
		if _, ok := g.types[s[:word]]; ok {
			return Type, word
		}
	}
	if n := numberLen(s); n > 0 {
		return Number, n
	}
	if word > 0 && strings.HasPrefix(strings.TrimLeft(s[word:], " \t"), "(") {
		return Function, word
	}
	return Default, 0
}

func (g *compiledGrammar) lineComment(s string) int {
	for _, c := range g.comments {
		if c != "" && strings.HasPrefix(s, c) {
			return len(c)
		}
	}
	return 0
}

// stringLen matches a quoted literal honouring backslash escapes. An
// unterminated literal runs to the end of the line.
func (g *compiledGrammar) stringLen(s string) int {
	if s == "" || !strings.ContainsRune(g.quotes, rune(s[0])) {
		return 0
	}
	q := s[0]
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case q:
			return i + 1
		}
	}
	return len(s)
}

func sigilLen(s string, sigil rune, body func(rune) bool) int {
	if sigil == 0 {
		return 0
	}
	r, size := utf8.DecodeRuneInString(s)
	if r != sigil {
		return 0
	}
	n := size
	for n < len(s) {
		r, sz := utf8.DecodeRuneInString(s[n:])
		if !body(r) {
			break
		}
		n += sz
	}
	if n == size {
		return 0
	}
	return n
}

// identLen returns the length of an identifier starting at s[0].
func identLen(s string) int {
	r, size := utf8.DecodeRuneInString(s)
	if !(unicode.IsLetter(r) || r == '_') {
		return 0
	}
	n := size
	for n < len(s) {
		r, sz := utf8.DecodeRuneInString(s[n:])
		if !isWord(r) {
			break
		}
		n += sz
	}
	return n
}

// numberLen matches decimal or hex literals that are not glued to a
// following identifier character.
func numberLen(s string) int {
	n := 0
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') && isHex(s[2]) {
		n = 2
		for n < len(s) && isHex(s[n]) {
			n++
		}
	} else {
		for n < len(s) && isDigit(s[n]) {
			n++
		}
		if n == 0 {
			return 0
		}
		if n < len(s) && s[n] == '.' {
			n++
			for n < len(s) && isDigit(s[n]) {
				n++
			}
		}
	}
	if n < len(s) {
		r, _ := utf8.DecodeRuneInString(s[n:])
		if isWord(r) {
			return 0
		}
	}
	return n
}

// fallbackLen consumes a whole word run so that keywords are never matched
// inside longer identifiers, or a single rune otherwise.
func fallbackLen(s string) int {
	r, size := utf8.DecodeRuneInString(s)
	if !isWord(r) {
		return size
	}
	n := size
	for n < len(s) {
		r, sz := utf8.DecodeRuneInString(s[n:])
		if !isWord(r) {
			break
		}
		n += sz
	}
	return n
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
