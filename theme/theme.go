// Package theme resolves named colour schemes into fully populated themes.
package theme

import (
	"strings"

	"github.com/rs/zerolog"
)

// DefaultScheme is used when a requested scheme is unknown.
const DefaultScheme = "blue"

// Scheme is the raw table entry for a named scheme. Empty or unparsable
// roles are filled in by the resolver.
type Scheme struct {
	Primary    string `yaml:"primary"`
	Secondary  string `yaml:"secondary"`
	Accent     string `yaml:"accent"`
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
	Muted      string `yaml:"muted"`
	Title      string `yaml:"title"`
}

var builtinOrder = []string{"blue", "green", "purple", "orange", "red", "dark"}

var builtin = map[string]Scheme{
	"blue":   {Primary: "#1a73e8", Secondary: "#4285f4", Accent: "#34a853", Background: "#ffffff", Text: "#202124", Muted: "#5f6368"},
	"green":  {Primary: "#0f9d58", Secondary: "#34a853", Accent: "#4285f4", Background: "#ffffff", Text: "#202124", Muted: "#5f6368"},
	"purple": {Primary: "#673ab7", Secondary: "#7b1fa2", Accent: "#e91e63", Background: "#ffffff", Text: "#202124", Muted: "#5f6368"},
	"orange": {Primary: "#f57c00", Secondary: "#ff9800", Accent: "#ff5722", Background: "#ffffff", Text: "#202124", Muted: "#5f6368"},
	"red":    {Primary: "#d32f2f", Secondary: "#f44336", Accent: "#ff9800", Background: "#ffffff", Text: "#202124", Muted: "#5f6368"},
	"dark":   {Primary: "#bb86fc", Secondary: "#03dac6", Accent: "#cf6679", Background: "#080808", Text: "#ffffff", Muted: "#b3b3b3"},
}

// Builtin returns a copy of the built-in scheme table.
func Builtin() map[string]Scheme {
	m := make(map[string]Scheme, len(builtin))
	for k, v := range builtin {
		m[k] = v
	}
	return m
}

// Names lists the built-in scheme names in display order.
func Names() []string {
	return append([]string(nil), builtinOrder...)
}

// ColorTheme is a resolved scheme. Every role is set.
type ColorTheme struct {
	Name       string
	Primary    RGB
	Secondary  RGB
	Accent     RGB
	Background RGB
	Text       RGB
	Muted      RGB
	Title      RGB
	Dark       bool
	Code       Palette
}

// Label is the colour for "Question:"/"Answer:" style labels. Dark themes
// use the text colour so labels never sink into the background.
func (t ColorTheme) Label() RGB {
	if t.Dark {
		return t.Text
	}
	return t.Primary
}

var (
	darkBackground  = MustHex("#080808")
	lightBackground = RGB{1, 1, 1}
	darkText        = RGB{1, 1, 1}
	lightText       = MustHex("#1a1a1a")
	defaultMuted    = Gray(0.5)
)

// Resolver turns scheme names into themes.
type Resolver struct {
	schemes map[string]Scheme
	log     zerolog.Logger
}

// NewResolver copies schemes; a nil map selects the built-in table.
func NewResolver(schemes map[string]Scheme, log zerolog.Logger) *Resolver {
	if schemes == nil {
		schemes = builtin
	}
	r := &Resolver{schemes: make(map[string]Scheme, len(schemes)), log: log}
	for k, v := range schemes {
		r.schemes[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return r
}

// Resolve uses the built-in table and no logging.
func Resolve(name string) ColorTheme {
	return NewResolver(nil, zerolog.Nop()).Resolve(name)
}

// Known reports whether name is in the resolver's table.
func (r *Resolver) Known(name string) bool {
	_, ok := r.schemes[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Resolve returns the theme for name. Unknown names fall back to
// DefaultScheme with a warning.
func (r *Resolver) Resolve(name string) ColorTheme {
	key := strings.ToLower(strings.TrimSpace(name))
	s, ok := r.schemes[key]
	if !ok {
		r.log.Warn().Str("scheme", name).Str("fallback", DefaultScheme).Msg("unknown colour scheme")
		key = DefaultScheme
		s = r.schemes[key]
	}
	return r.build(key, s)
}

func (r *Resolver) build(name string, s Scheme) ColorTheme {
	role := func(field, v string) (RGB, bool) {
		if strings.TrimSpace(v) == "" {
			return RGB{}, false
		}
		c, err := Hex(v)
		if err != nil {
			r.log.Warn().Err(err).Str("scheme", name).Str("role", field).Msg("ignoring colour")
			return RGB{}, false
		}
		return c, true
	}

	t := ColorTheme{Name: name}

	bg, hasBG := role("background", s.Background)
	if !hasBG {
		bg = lightBackground
		if name == "dark" {
			bg = darkBackground
		}
	}
	t.Background = bg
	t.Dark = name == "dark" || bg.Mean() < 0.2

	text, ok := role("text", s.Text)
	if !ok {
		text = lightText
		if t.Dark {
			text = darkText
		}
	}
	t.Text = text

	primary, hasPrimary := role("primary", s.Primary)
	accent, hasAccent := role("accent", s.Accent)
	switch {
	case !hasPrimary && hasAccent:
		primary = accent
	case hasPrimary && !hasAccent:
		accent = primary
	case !hasPrimary && !hasAccent:
		primary, accent = text, text
	}
	t.Primary, t.Accent = primary, accent

	if t.Secondary, ok = role("secondary", s.Secondary); !ok {
		t.Secondary = bg
	}
	if t.Title, ok = role("title", s.Title); !ok {
		t.Title = text
	}
	if t.Muted, ok = role("muted", s.Muted); !ok {
		t.Muted = defaultMuted
	}

	t.Code = LightCode
	if t.Dark {
		t.Code = DarkCode
	}
	return t
}
