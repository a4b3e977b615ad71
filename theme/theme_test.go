package theme

import (
	"bytes"
	"testing"

	"github.com/arran4/qapdf/highlight"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	c, err := Hex("#ff8000")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.R, 1e-9)
	assert.InDelta(t, 128.0/255, c.G, 1e-9)
	assert.InDelta(t, 0.0, c.B, 1e-9)

	short, err := Hex("fff")
	require.NoError(t, err)
	assert.Equal(t, RGB{1, 1, 1}, short)

	_, err = Hex("#12345")
	assert.Error(t, err)
	_, err = Hex("zzzzzz")
	assert.Error(t, err)

	_, err = Hex("#1234567")
	assert.Error(t, err)

	assert.Equal(t, "#1a73e8", MustHex("#1A73E8").String())
}

func TestMix(t *testing.T) {
	black, white := Gray(0), Gray(1)
	assert.Equal(t, Gray(0.5), black.Mix(white, 0.5))
	assert.Equal(t, white, black.Mix(white, 2))
	assert.Equal(t, "#808080", black.Mix(white, 0.5).String())
}

func TestResolveIsIdempotent(t *testing.T) {
	r := NewResolver(nil, zerolog.Nop())
	for _, name := range Names() {
		assert.Equal(t, r.Resolve(name), r.Resolve(name), name)
	}
}

func TestResolveUnknownFallsBackToBlue(t *testing.T) {
	var buf bytes.Buffer
	r := NewResolver(nil, zerolog.New(&buf))
	got := r.Resolve("neon")
	assert.Equal(t, r.Resolve("blue"), got)
	assert.Equal(t, "blue", got.Name)
	assert.Contains(t, buf.String(), "unknown colour scheme")
	assert.Contains(t, buf.String(), "neon")
}

func TestResolveDarkDetection(t *testing.T) {
	dark := Resolve("dark")
	assert.True(t, dark.Dark)
	assert.Equal(t, DarkCode, dark.Code)
	assert.Equal(t, dark.Text, dark.Label())

	blue := Resolve(" Blue ")
	assert.False(t, blue.Dark)
	assert.Equal(t, LightCode, blue.Code)
	assert.Equal(t, blue.Primary, blue.Label())
	assert.Equal(t, MustHex("#1a73e8"), blue.Primary)

	r := NewResolver(map[string]Scheme{"night": {Background: "#101010"}}, zerolog.Nop())
	night := r.Resolve("night")
	assert.True(t, night.Dark)
	assert.Equal(t, RGB{1, 1, 1}, night.Text)
}

func TestResolveCascade(t *testing.T) {
	r := NewResolver(map[string]Scheme{
		"accent-only": {Accent: "#ff0000", Text: "#000000"},
		"primary-bad": {Primary: "nope", Accent: "#00ff00"},
		"empty":       {},
		"dark":        {},
	}, zerolog.Nop())

	a := r.Resolve("accent-only")
	assert.Equal(t, RGB{1, 0, 0}, a.Primary)
	assert.Equal(t, RGB{1, 0, 0}, a.Accent)
	assert.Equal(t, a.Background, a.Secondary)
	assert.Equal(t, RGB{0, 0, 0}, a.Title)
	assert.Equal(t, Gray(0.5), a.Muted)

	b := r.Resolve("primary-bad")
	assert.Equal(t, RGB{0, 1, 0}, b.Primary)

	e := r.Resolve("empty")
	assert.False(t, e.Dark)
	assert.Equal(t, RGB{1, 1, 1}, e.Background)
	assert.Equal(t, MustHex("#1a1a1a"), e.Text)
	assert.Equal(t, e.Text, e.Primary)

	d := r.Resolve("dark")
	assert.True(t, d.Dark)
	assert.Equal(t, MustHex("#080808"), d.Background)
	assert.Equal(t, RGB{1, 1, 1}, d.Text)
}

func TestPaletteColor(t *testing.T) {
	assert.Equal(t, RGB{0, 0, 1}, LightCode.Color(highlight.Keyword))
	assert.Equal(t, RGB{1, 0.4, 0}, LightCode.Color(highlight.Function))
	assert.Equal(t, LightCode.Default, LightCode.Color(highlight.Kind(42)))
	assert.Equal(t, RGB{0.4, 0.9, 0.4}, DarkCode.Color(highlight.String))
}

func TestBuiltinIsCopied(t *testing.T) {
	m := Builtin()
	m["blue"] = Scheme{Primary: "#000000"}
	assert.Equal(t, MustHex("#1a73e8"), Resolve("blue").Primary)
}
