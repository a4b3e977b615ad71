package highlight

import (
	"strings"
	"unicode"
)

// SpanRules classify a whole inline code span with a single colour.
type SpanRules struct {
	Operators   []string
	Keywords    []string
	SQLKeywords []string // matched case-insensitively
	Literals    []string
	Builtins    []string
	Sigil       rune
}

// PHPSpans returns the rules used for inline code in prose: PHP keywords,
// SQL keywords and common PHP/MySQL built-ins.
func PHPSpans() SpanRules {
	return SpanRules{
		Operators: []string{
			"==", "===", "!=", "!==", "<", ">", "<=", ">=", "=>", "<=>", "&&",
			"||", "!", "and", "or", "xor", "?:", "??", ".", "+", "-", "*", "/",
			"%", "**",
		},
		Keywords: []string{
			"if", "else", "elseif", "while", "do", "for", "foreach", "break",
			"continue", "switch", "case", "default", "return", "function",
			"class", "interface", "trait", "public", "private", "protected",
			"static", "final", "abstract", "const", "global", "echo", "print",
			"include", "require", "include_once", "require_once", "namespace",
			"use", "as", "implements", "extends", "new", "clone", "yield", "throw",
		},
		SQLKeywords: []string{
			"SELECT", "FROM", "WHERE", "INSERT", "UPDATE", "DELETE", "JOIN",
			"LEFT", "RIGHT", "INNER", "OUTER", "FULL", "GROUP", "ORDER", "BY",
			"HAVING", "LIMIT", "OFFSET", "CREATE", "ALTER", "DROP", "TABLE",
			"INDEX", "VIEW", "DATABASE", "FOREIGN", "KEY", "CONSTRAINT",
			"PRIMARY", "REFERENCES", "CASCADE", "RESTRICT", "SET", "NULL", "NOT",
			"DEFAULT", "AUTO_INCREMENT", "ENGINE", "CHARSET", "COLLATE", "UNIQUE",
			"AND", "OR", "IN", "BETWEEN", "LIKE", "DESC", "ASC", "COUNT", "SUM",
			"AVG", "MIN", "MAX", "DISTINCT", "AS", "ON", "UNION", "ALL", "INTO",
			"VALUES", "ADD",
		},
		Literals: []string{"true", "false", "null", "TRUE", "FALSE", "NULL"},
		Builtins: []string{
			"array", "isset", "empty", "unset", "count", "strlen", "strpos",
			"str_replace", "explode", "implode", "json_encode", "json_decode",
			"date", "time", "mysqli_connect", "mysqli_query", "PDO", "print_r",
			"var_dump", "die", "exit", "mysqli", "mysql_connect", "mysql_query",
			"fetch_assoc", "fetch_array",
		},
		Sigil: '$',
	}
}

type compiledSpans struct {
	operators map[string]struct{}
	keywords  map[string]struct{}
	sql       map[string]struct{}
	literals  map[string]struct{}
	builtins  map[string]struct{}
	sigil     rune
}

func compileSpans(r SpanRules) compiledSpans {
	sql := make([]string, len(r.SQLKeywords))
	for i, k := range r.SQLKeywords {
		sql[i] = strings.ToUpper(k)
	}
	return compiledSpans{
		operators: toSet(r.Operators),
		keywords:  toSet(r.Keywords),
		sql:       toSet(sql),
		literals:  toSet(r.Literals),
		builtins:  toSet(r.Builtins),
		sigil:     r.Sigil,
	}
}

// ClassifySpan picks one kind for an entire inline code span.
func (h *Highlighter) ClassifySpan(text string) Kind {
	s := h.spans
	has := func(m map[string]struct{}, k string) bool {
		_, ok := m[k]
		return ok
	}
	switch {
	case text == "":
		return Default
	case has(s.operators, text):
		return Keyword
	case s.sigil != 0 && strings.HasPrefix(text, string(s.sigil)):
		return Variable
	case has(s.keywords, text), has(s.sql, strings.ToUpper(text)):
		return Keyword
	case has(s.literals, text), allDigits(text):
		return Number
	case quoted(text):
		return String
	case has(s.builtins, text):
		return Function
	}
	return Default
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

func quoted(s string) bool {
	if len(s) < 2 {
		return false
	}
	return (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"')
}
