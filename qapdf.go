// Package qapdf renders interview question sets into themed PDF documents.
//
// A document is a cover, a quote page, a question page and an answer page
// per question with progress pages at 25, 50 and 75 percent, and a final
// page. Question and answer text may contain inline code spans and fenced
// code blocks, which are drawn monospaced with syntax colouring.
package qapdf

import (
	"io"
	"time"

	"github.com/arran4/qapdf/highlight"
	"github.com/arran4/qapdf/layout"
	"github.com/arran4/qapdf/theme"
	"github.com/rs/zerolog"
)

// Options control a render. Zero fields take the defaults of DefaultOptions.
type Options struct {
	Title  string
	Author string

	// Scheme names the colour scheme. Unknown names fall back to blue.
	Scheme  string
	Schemes map[string]theme.Scheme

	PageWidth  float64
	PageHeight float64
	Margin     float64

	TitleSize    float64
	SubtitleSize float64
	ContentSize  float64

	Fonts   FontConfig
	LogoDir string

	// Seed drives quote and caption selection. Zero seeds from the clock.
	Seed   uint64
	Quotes []Quote

	// Policy overrides the theme-derived colour policy.
	Policy      Policy
	Highlighter *highlight.Highlighter
	Logger      *zerolog.Logger
	Now         func() time.Time
}

// DefaultOptions is a US Letter page with the blue scheme.
func DefaultOptions() Options {
	return Options{
		Title:        "Interview Questions",
		Scheme:       theme.DefaultScheme,
		PageWidth:    612,
		PageHeight:   792,
		Margin:       54,
		TitleSize:    24,
		SubtitleSize: 18,
		ContentSize:  12,
		LogoDir:      "logos",
		Now:          time.Now,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Title == "" {
		o.Title = d.Title
	}
	if o.Scheme == "" {
		o.Scheme = d.Scheme
	}
	if o.PageWidth <= 0 {
		o.PageWidth = d.PageWidth
	}
	if o.PageHeight <= 0 {
		o.PageHeight = d.PageHeight
	}
	if o.Margin <= 0 {
		o.Margin = d.Margin
	}
	if o.TitleSize <= 0 {
		o.TitleSize = d.TitleSize
	}
	if o.SubtitleSize <= 0 {
		o.SubtitleSize = d.SubtitleSize
	}
	if o.ContentSize <= 0 {
		o.ContentSize = d.ContentSize
	}
	if o.Now == nil {
		o.Now = d.Now
	}
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
	if o.Highlighter == nil {
		o.Highlighter = highlight.Standard()
	}
	if o.Seed == 0 {
		o.Seed = uint64(o.Now().UnixNano())
	}
	return o
}

// Render validates questions and writes the PDF to w. Nothing is written
// unless every page was composed.
func Render(questions []Question, w io.Writer, opts Options) (*Report, error) {
	if err := ValidateQuestions(questions); err != nil {
		return nil, err
	}
	o := opts.withDefaults()
	fonts, err := LoadFonts(o.Fonts, *o.Logger)
	if err != nil {
		return nil, err
	}
	canvas := newPDFCanvas(o, fonts)
	report, err := render(questions, canvas, fonts, o)
	if err != nil {
		return nil, err
	}
	if err := canvas.Output(w); err != nil {
		return nil, err
	}
	return report, nil
}

// render composes every page onto s. o must have defaults applied.
func render(questions []Question, s surface, fonts Fonts, o Options) (*Report, error) {
	log := o.Logger.With().Str("title", o.Title).Logger()
	th := theme.NewResolver(o.Schemes, log).Resolve(o.Scheme)
	pol := o.Policy
	if pol == nil {
		pol = PolicyFor(th)
	}
	size := o.ContentSize
	eng := layout.New(fonts.Regular.Measurer(size), fonts.Mono.Measurer(size), o.Highlighter, layout.DefaultConfig(size))
	c := &composer{
		o:      o,
		s:      s,
		fonts:  fonts,
		th:     th,
		pol:    pol,
		eng:    eng,
		pick:   newPicker(o.Seed, o.Quotes),
		log:    log,
		report: &Report{Theme: th.Name},
		total:  len(questions),
	}
	log.Info().Str("scheme", th.Name).Bool("dark", th.Dark).Int("questions", len(questions)).Msg("rendering")
	if err := c.compose(questions); err != nil {
		return nil, err
	}
	log.Info().Int("pages", len(c.report.Pages)).Msg("rendered")
	return c.report, nil
}
