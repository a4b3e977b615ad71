package highlight

// Kind is the colour class of a token.
type Kind int

const (
	Default Kind = iota
	Keyword
	String
	Number
	Comment
	Function
	Decorator
	Variable
	Type
)

var kindNames = [...]string{
	Default:   "default",
	Keyword:   "keyword",
	String:    "string",
	Number:    "number",
	Comment:   "comment",
	Function:  "function",
	Decorator: "decorator",
	Variable:  "variable",
	Type:      "type",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "default"
	}
	return kindNames[k]
}

// Kinds lists every token kind in declaration order.
func Kinds() []Kind {
	return []Kind{Default, Keyword, String, Number, Comment, Function, Decorator, Variable, Type}
}

// Token is a classified substring of a code line. The Text of all tokens
// returned for a line concatenates back to that line.
type Token struct {
	Kind Kind
	Text string
}

// Join concatenates token texts.
func Join(tokens []Token) string {
	n := 0
	for _, t := range tokens {
		n += len(t.Text)
	}
	b := make([]byte, 0, n)
	for _, t := range tokens {
		b = append(b, t.Text...)
	}
	return string(b)
}
