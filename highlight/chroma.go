package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
)

// classifyChroma tokenises body with a chroma lexer. If the lexer output does
// not reproduce body exactly the whole body is returned as one default token.
func classifyChroma(lexer chroma.Lexer, body string) []Token {
	it, err := chroma.Coalesce(lexer).Tokenise(nil, body)
	if err != nil {
		return []Token{{Kind: Default, Text: body}}
	}
	var out []Token
	for _, t := range it.Tokens() {
		if t.Value == "" {
			continue
		}
		k := chromaKind(t.Type)
		if n := len(out); n > 0 && out[n-1].Kind == k {
			out[n-1].Text += t.Value
			continue
		}
		out = append(out, Token{Kind: k, Text: t.Value})
	}
	// Lexers configured with EnsureNL append a newline the line never had.
	if n := len(out); n > 0 && !strings.HasSuffix(body, "\n") {
		out[n-1].Text = strings.TrimSuffix(out[n-1].Text, "\n")
		if out[n-1].Text == "" {
			out = out[:n-1]
		}
	}
	if Join(out) != body {
		return []Token{{Kind: Default, Text: body}}
	}
	return out
}

func chromaKind(t chroma.TokenType) Kind {
	switch t {
	case chroma.KeywordType, chroma.NameClass:
		return Type
	case chroma.NameFunction, chroma.NameFunctionMagic, chroma.NameBuiltin:
		return Function
	case chroma.NameDecorator:
		return Decorator
	case chroma.NameVariable, chroma.NameVariableClass, chroma.NameVariableGlobal,
		chroma.NameVariableInstance, chroma.NameVariableMagic:
		return Variable
	}
	switch {
	case t.InCategory(chroma.Comment):
		return Comment
	case t.InCategory(chroma.Keyword):
		return Keyword
	case t.InSubCategory(chroma.LiteralString):
		return String
	case t.InSubCategory(chroma.LiteralNumber):
		return Number
	}
	return Default
}
