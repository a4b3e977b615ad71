package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyIsLossless(t *testing.T) {
	h := Standard()
	lines := []string{
		"",
		"    ",
		"def foo(bar, baz=3):",
		"\tif x is not None: return 'a\\'b'  # trailing",
		"@decorator.with_dots",
		"print(\"unterminated",
		"x = 0x1F + 3.14 - 2abc",
		"<?php echo $name; ?>",
		"$arr = array(1, 2); // done",
		"   # only a comment",
		"naïve = ünïcode(1)",
		"a\"b'c`d",
		"func main() { fmt.Println(\"hi\") }",
	}
	for _, lang := range []string{"python", "php", "py", "PHP", "go", "nosuchlang", ""} {
		for _, line := range lines {
			tokens := h.Classify(line, lang)
			require.Equal(t, line, Join(tokens), "lang=%q line=%q", lang, line)
			for _, tok := range tokens {
				require.NotEmpty(t, tok.Text, "lang=%q line=%q", lang, line)
			}
		}
	}
}

func TestClassifyPythonDefinition(t *testing.T) {
	h := Standard()
	tokens := h.Classify("    def foo():", "python")
	require.Equal(t, []Token{
		{Kind: Default, Text: "    "},
		{Kind: Keyword, Text: "def"},
		{Kind: Default, Text: " "},
		{Kind: Function, Text: "foo"},
		{Kind: Default, Text: "():"},
	}, tokens)
}

func TestClassifyPHPLine(t *testing.T) {
	h := Standard()
	tokens := h.Classify(`$x = strlen("hi"); // note`, "php")
	require.Equal(t, []Token{
		{Kind: Variable, Text: "$x"},
		{Kind: Default, Text: " = "},
		{Kind: Function, Text: "strlen"},
		{Kind: Default, Text: "("},
		{Kind: String, Text: `"hi"`},
		{Kind: Default, Text: "); "},
		{Kind: Comment, Text: "// note"},
	}, tokens)
}

func TestClassifyPHPTags(t *testing.T) {
	h := Standard()
	tokens := h.Classify("<?php echo 1;", "php")
	require.Equal(t, []Token{
		{Kind: Keyword, Text: "<?php"},
		{Kind: Default, Text: " "},
		{Kind: Keyword, Text: "echo"},
		{Kind: Default, Text: " "},
		{Kind: Number, Text: "1"},
		{Kind: Default, Text: ";"},
	}, tokens)
}

func TestClassifyWholeLineComment(t *testing.T) {
	h := Standard()
	require.Equal(t, []Token{{Kind: Comment, Text: "# hello"}}, h.Classify("# hello", "python"))
	require.Equal(t, []Token{
		{Kind: Default, Text: "  "},
		{Kind: Comment, Text: "// x"},
	}, h.Classify("  // x", "php"))
}

func TestClassifyKeywordInsideIdentifier(t *testing.T) {
	h := Standard()
	require.Equal(t, []Token{
		{Kind: Default, Text: "define = "},
		{Kind: Number, Text: "1"},
	}, h.Classify("define = 1", "python"))
}

func TestClassifyDecoratorAndStrings(t *testing.T) {
	h := Standard()
	require.Equal(t, []Token{
		{Kind: Decorator, Text: "@app.route"},
		{Kind: Default, Text: "("},
		{Kind: String, Text: "'/'"},
		{Kind: Default, Text: ")"},
	}, h.Classify("@app.route('/')", "python"))

	require.Equal(t, []Token{
		{Kind: Default, Text: "x = "},
		{Kind: String, Text: `"abc`},
	}, h.Classify(`x = "abc`, "python"))
}

func TestClassifyTypes(t *testing.T) {
	h := Standard()
	tokens := h.Classify("n = int(s)", "python")
	assert.Contains(t, tokens, Token{Kind: Type, Text: "int"})
}

func TestClassifyUnknownLanguage(t *testing.T) {
	h := Standard()
	require.Equal(t, []Token{
		{Kind: Default, Text: "  "},
		{Kind: Default, Text: "x = 1"},
	}, h.Classify("  x = 1", "nosuchlang"))
}

func TestClassifyChromaFallback(t *testing.T) {
	h := Standard()
	line := "func main() {"
	tokens := h.Classify(line, "go")
	require.Equal(t, line, Join(tokens))
	assert.Contains(t, tokens, Token{Kind: Keyword, Text: "func"})
}

func TestLanguageAliases(t *testing.T) {
	h := Standard()
	assert.Equal(t, "python", h.Language("py"))
	assert.Equal(t, "python", h.Language("Python3"))
	assert.Equal(t, "php", h.Language("php5"))
	assert.Equal(t, "", h.Language("go"))
	assert.Equal(t, "", h.Language(""))
}

func TestGrammarIsCopied(t *testing.T) {
	g := Python()
	h := New(Config{Grammars: []Grammar{g}})
	g.Keywords[0] = "zzz"
	assert.Contains(t, h.Classify("def", "python"), Token{Kind: Keyword, Text: "def"})
}

func TestClassifySpan(t *testing.T) {
	h := Standard()
	cases := map[string]Kind{
		"$user":   Variable,
		"SELECT":  Keyword,
		"select":  Keyword,
		"foreach": Keyword,
		"===":     Keyword,
		"42":      Number,
		"true":    Number,
		"null":    Keyword,
		"'abc'":   String,
		`"x"`:     String,
		"strlen":  Function,
		"PDO":     Function,
		"foo()":   Default,
		"":        Default,
	}
	for in, want := range cases {
		assert.Equal(t, want, h.ClassifySpan(in), "span %q", in)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "keyword", Keyword.String())
	assert.Equal(t, "type", Type.String())
	assert.Equal(t, "default", Kind(99).String())
	assert.Len(t, Kinds(), 9)
}
