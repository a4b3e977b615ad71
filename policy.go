package qapdf

import (
	"github.com/arran4/qapdf/highlight"
	"github.com/arran4/qapdf/theme"
)

// Policy decides theme-dependent colours while pages are drawn. It is chosen
// once per render and passed to the composer.
type Policy interface {
	Background(t theme.ColorTheme) theme.RGB
	Body(t theme.ColorTheme) theme.RGB
	Label(t theme.ColorTheme) theme.RGB
	Recap(t theme.ColorTheme) theme.RGB
	Footer(t theme.ColorTheme) theme.RGB
	HeaderBar(t theme.ColorTheme) theme.RGB
	HeaderText(t theme.ColorTheme) theme.RGB
	Code(t theme.ColorTheme, k highlight.Kind) theme.RGB
}

// LightPolicy colours labels with the primary colour.
type LightPolicy struct{}

func (LightPolicy) Background(t theme.ColorTheme) theme.RGB { return t.Background }
func (LightPolicy) Body(t theme.ColorTheme) theme.RGB       { return t.Text }
func (LightPolicy) Label(t theme.ColorTheme) theme.RGB      { return t.Primary }
func (LightPolicy) Recap(t theme.ColorTheme) theme.RGB      { return t.Muted }
func (LightPolicy) Footer(t theme.ColorTheme) theme.RGB     { return t.Muted }
func (LightPolicy) HeaderBar(t theme.ColorTheme) theme.RGB  { return t.Primary }
func (LightPolicy) HeaderText(theme.ColorTheme) theme.RGB   { return theme.RGB{R: 1, G: 1, B: 1} }
func (LightPolicy) Code(t theme.ColorTheme, k highlight.Kind) theme.RGB {
	return t.Code.Color(k)
}

// DarkPolicy keeps labels and footers in the text colour so they never
// disappear into a dark background.
type DarkPolicy struct{ LightPolicy }

func (DarkPolicy) Label(t theme.ColorTheme) theme.RGB  { return t.Text }
func (DarkPolicy) Footer(t theme.ColorTheme) theme.RGB { return t.Text }

// PolicyFor picks the policy matching the theme.
func PolicyFor(t theme.ColorTheme) Policy {
	if t.Dark {
		return DarkPolicy{}
	}
	return LightPolicy{}
}
