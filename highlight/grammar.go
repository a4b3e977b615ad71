package highlight

// Grammar describes a small line-oriented language. Values are copied when a
// Highlighter is built, so changing a Grammar afterwards has no effect.
type Grammar struct {
	Name           string
	Aliases        []string
	LineComments   []string
	Quotes         string
	Tags           []string
	VariableSigil  rune
	DecoratorSigil rune
	Keywords       []string
	Types          []string
}

// Python returns the Python-like grammar.
func Python() Grammar {
	return Grammar{
		Name:           "python",
		Aliases:        []string{"py", "py3", "python3"},
		LineComments:   []string{"#"},
		Quotes:         `"'`,
		DecoratorSigil: '@',
		Keywords: []string{
			"def", "class", "import", "from", "as", "if", "elif", "else", "try",
			"except", "finally", "with", "return", "yield", "break", "continue",
			"pass", "raise", "assert", "for", "while", "in", "is", "not", "and",
			"or", "True", "False", "None", "lambda", "global", "nonlocal",
			"async", "await",
		},
		Types: []string{
			"int", "float", "str", "bool", "bytes", "list", "dict", "tuple",
			"set", "frozenset", "object", "complex",
		},
	}
}

// PHP returns the PHP-like grammar.
func PHP() Grammar {
	return Grammar{
		Name:          "php",
		Aliases:       []string{"php3", "php4", "php5", "php7", "php8"},
		LineComments:  []string{"//", "#"},
		Quotes:        `"'`,
		Tags:          []string{"<?php", "<?=", "?>"},
		VariableSigil: '$',
		Keywords: []string{
			"if", "else", "elseif", "while", "do", "for", "foreach", "break",
			"continue", "switch", "case", "default", "return", "function",
			"class", "interface", "trait", "public", "private", "protected",
			"static", "final", "abstract", "const", "global", "echo", "print",
			"include", "require", "include_once", "require_once", "namespace",
			"use", "as", "implements", "extends", "new", "clone", "yield",
			"throw", "try", "catch", "finally", "array", "list", "and", "or",
			"xor", "isset", "empty", "unset", "exit", "die", "match", "fn",
		},
		Types: []string{
			"int", "float", "string", "bool", "void", "mixed", "object",
			"iterable", "callable", "never", "self",
		},
	}
}

type compiledGrammar struct {
	name      string
	comments  []string
	quotes    string
	tags      []string
	variable  rune
	decorator rune
	keywords  map[string]struct{}
	types     map[string]struct{}
}

func compile(g Grammar) *compiledGrammar {
	cg := &compiledGrammar{
		name:      g.Name,
		comments:  append([]string(nil), g.LineComments...),
		quotes:    g.Quotes,
		tags:      append([]string(nil), g.Tags...),
		variable:  g.VariableSigil,
		decorator: g.DecoratorSigil,
		keywords:  toSet(g.Keywords),
		types:     toSet(g.Types),
	}
	return cg
}

func toSet(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
