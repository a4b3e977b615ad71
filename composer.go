package qapdf

import (
	"fmt"
	"math"
	"strconv"

	"github.com/arran4/qapdf/layout"
	"github.com/arran4/qapdf/theme"
	"github.com/rs/zerolog"
)

// PageKind identifies a page in the document sequence.
type PageKind int

const (
	PageCover PageKind = iota
	PageQuote
	PageQuestion
	PageAnswer
	PageMilestone
	PageFinal
)

var pageKindNames = [...]string{"cover", "quote", "question", "answer", "milestone", "final"}

func (k PageKind) String() string {
	if k < 0 || int(k) >= len(pageKindNames) {
		return "page(" + strconv.Itoa(int(k)) + ")"
	}
	return pageKindNames[k]
}

// PageInfo describes one emitted page. Question is 1-based and set on
// question and answer pages; Percent is set on milestone pages.
type PageInfo struct {
	Kind      PageKind
	Question  int
	Percent   int
	Continued bool
}

// Report lists the pages of a finished render in order.
type Report struct {
	Theme string
	Pages []PageInfo
}

// Kinds returns the page kinds, skipping continuation pages.
func (r *Report) Kinds() []PageKind {
	var out []PageKind
	for _, p := range r.Pages {
		if !p.Continued {
			out = append(out, p.Kind)
		}
	}
	return out
}

var milestonePercents = []int{25, 50, 75}

// Milestones maps a 1-based question index to the percentage of the
// milestone page that follows it. The index for p is round(total*p/100),
// at least 1. Indices that would land on or after the last question are
// dropped so the final page is never preceded by a progress page, and
// colliding indices keep the highest percentage.
func Milestones(total int) map[int]int {
	out := make(map[int]int)
	for _, p := range milestonePercents {
		idx := int(math.RoundToEven(float64(total) * float64(p) / 100))
		if idx < 1 {
			idx = 1
		}
		if idx >= total {
			continue
		}
		out[idx] = p
	}
	return out
}

// composer walks the page sequence for one render. It owns the surface for
// the lifetime of the render.
type composer struct {
	o      Options
	s      surface
	fonts  Fonts
	th     theme.ColorTheme
	pol    Policy
	eng    *layout.Engine
	pick   *picker
	log    zerolog.Logger
	report *Report
	total  int
}

// runDrawer draws layout runs on the current page. Prose runs use the body
// colour unless prose is overridden; code runs use the palette.
type runDrawer struct {
	c     *composer
	prose *theme.RGB
}

func (d runDrawer) DrawRun(x, baseline float64, r layout.Run) error {
	c := d.c
	size := c.o.ContentSize
	switch r.Style {
	case layout.Prose:
		col := c.pol.Body(c.th)
		if d.prose != nil {
			col = *d.prose
		}
		c.s.Text(x, baseline, c.fonts.Regular, size, col, r.Text)
	default:
		c.s.Text(x, baseline, c.fonts.Mono, size, c.pol.Code(c.th, r.Kind), r.Text)
	}
	return c.s.Err()
}

// decorate runs an optional drawing step. Failures and panics are logged
// and the surface error is cleared so the page carries on.
func (c *composer) decorate(name string, fn func() error) {
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
		}()
		return fn()
	}()
	if err == nil {
		err = c.s.Err()
	}
	if err != nil {
		c.log.Warn().Err(err).Str("decoration", name).Msg("skipping decoration")
		c.s.ClearErr()
	}
}

func (c *composer) begin(info PageInfo) {
	c.s.AddPage()
	c.s.FillRect(0, 0, c.o.PageWidth, c.o.PageHeight, c.pol.Background(c.th))
	c.report.Pages = append(c.report.Pages, info)
	c.log.Debug().Stringer("kind", info.Kind).Int("question", info.Question).Bool("continued", info.Continued).Msg("page")
}

func (c *composer) pageNumber() int { return len(c.report.Pages) }

const headerHeight = 40

// header draws the title bar at the top of content pages.
func (c *composer) header() {
	c.s.FillRect(0, 0, c.o.PageWidth, headerHeight, c.pol.HeaderBar(c.th))
	c.s.Text(c.o.Margin, 25, c.fonts.Bold, c.o.TitleSize*0.6, c.pol.HeaderText(c.th), c.o.Title)
}

func (c *composer) footer() {
	size := 10.0
	y := c.o.PageHeight - c.o.Margin/2
	col := c.pol.Footer(c.th)
	text := c.o.Title + " • Question & Answer"
	c.s.Text((c.o.PageWidth-c.fonts.Regular.Width(size, text))/2, y, c.fonts.Regular, size, col, text)
	num := strconv.Itoa(c.pageNumber())
	c.s.Text(c.o.PageWidth-c.o.Margin-c.fonts.Regular.Width(size, num), y, c.fonts.Regular, size, col, num)
}

// centered draws s horizontally centred with its baseline at y.
func (c *composer) centered(y float64, f *FontAndFace, size float64, col theme.RGB, s string) {
	c.s.Text((c.o.PageWidth-f.Width(size, s))/2, y, f, size, col, s)
}

func (c *composer) labelSize() float64 { return c.o.TitleSize * 0.8 }

// labelY is the baseline of the page label below the header.
func (c *composer) labelY() float64 { return headerHeight + c.o.Margin }

// bodyStart is the first body baseline below a label at y.
func (c *composer) bodyStart(y float64) float64 { return y + c.o.ContentSize*2 }

func (c *composer) label(y float64, s string) {
	c.s.Text(c.o.Margin, y, c.fonts.Bold, c.labelSize(), c.pol.Label(c.th), s)
}

// contentPage starts a question or answer page with its header, footer and
// label and returns the first body baseline.
func (c *composer) contentPage(kind PageKind, q int, continued bool) float64 {
	c.begin(PageInfo{Kind: kind, Question: q, Continued: continued})
	c.header()
	c.footer()
	s := fmt.Sprintf("Question %d", q)
	if continued {
		if kind == PageAnswer {
			s = fmt.Sprintf("Answer %d", q)
		}
		s += " (continued)"
	}
	y := c.labelY()
	c.label(y, s)
	return c.bodyStart(y)
}

// frame is the text column of content pages. Overflow continues on a fresh
// page of the same kind.
func (c *composer) frame(kind PageKind, q int) layout.Frame {
	return layout.Frame{
		X:      c.o.Margin,
		Width:  c.o.PageWidth - 2*c.o.Margin,
		Bottom: c.o.PageHeight - c.o.Margin,
		Overflow: func() (float64, error) {
			y := c.contentPage(kind, q, true)
			return y, c.s.Err()
		},
	}
}

func (c *composer) compose(qs []Question) error {
	c.cover()
	c.quotePage()
	milestones := Milestones(len(qs))
	for i, q := range qs {
		n := i + 1
		if err := c.questionPage(n, q); err != nil {
			return fmt.Errorf("qapdf: question %d: %w", n, err)
		}
		if err := c.answerPage(n, q); err != nil {
			return fmt.Errorf("qapdf: answer %d: %w", n, err)
		}
		if p, ok := milestones[n]; ok {
			c.milestonePage(p)
		}
	}
	c.finalPage()
	return c.s.Err()
}
