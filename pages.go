package qapdf

import (
	"fmt"
	"math"

	"github.com/arran4/qapdf/layout"
)

func (c *composer) cover() {
	c.begin(PageInfo{Kind: PageCover})
	w, h := c.o.PageWidth, c.o.PageHeight
	c.decorate("gradient", func() error {
		c.s.Gradient(0, 0, w, h, c.th.Primary, c.th.Secondary)
		return nil
	})
	c.decorate("logo", func() error {
		path, ok := FindLogo(c.o.LogoDir, c.o.Title)
		if !ok {
			return nil
		}
		lw := w * 0.3
		img, err := loadLogo(path, int(lw*2))
		if err != nil {
			return err
		}
		b := img.Bounds()
		lh := lw * float64(b.Dy()) / float64(b.Dx())
		return c.s.Image(path, img, (w-lw)/2, h*0.1, lw, lh)
	})

	fg := c.pol.HeaderText(c.th)
	size := c.o.TitleSize * 1.5
	y := h * 0.45
	for _, line := range wrapWords(c.fonts.Bold, size, c.o.Title, w-2*c.o.Margin) {
		c.centered(y, c.fonts.Bold, size, fg, line)
		y += size * 1.2
	}
	y += c.o.SubtitleSize
	c.centered(y, c.fonts.Regular, c.o.SubtitleSize, fg, "Interview Questions")
	y += c.o.SubtitleSize * 2
	c.centered(y, c.fonts.Regular, c.o.ContentSize, fg, c.o.Now().Format("January 2, 2006"))
}

func (c *composer) quotePage() {
	c.begin(PageInfo{Kind: PageQuote})
	c.header()
	c.decorate("quote", func() error {
		q := c.pick.quote()
		size := c.o.SubtitleSize
		lines := wrapWords(c.fonts.Regular, size, "“"+q.Text+"”", c.o.PageWidth-3*c.o.Margin)
		lh := size * 1.4
		y := c.o.PageHeight/2 - float64(len(lines))*lh/2
		for _, line := range lines {
			c.centered(y, c.fonts.Regular, size, c.pol.Body(c.th), line)
			y += lh
		}
		if q.Author != "" {
			c.centered(y+c.o.ContentSize, c.fonts.Regular, c.o.ContentSize, c.th.Muted, "- "+q.Author)
		}
		return nil
	})
}

func (c *composer) questionPage(n int, q Question) error {
	y := c.contentPage(PageQuestion, n, false)
	_, err := c.eng.Render(runDrawer{c: c}, q.Question, c.frame(PageQuestion, n), y)
	return err
}

// answerPage repeats the question in a muted colour, then draws the answer
// below an "Answer" label. Space for the recap is reserved from an estimate
// that counts fenced code lines so a code sample never runs into the label.
func (c *composer) answerPage(n int, q Question) error {
	y := c.contentPage(PageAnswer, n, false)
	f := c.frame(PageAnswer, n)
	muted := c.pol.Recap(c.th)
	start, page := y, c.pageNumber()
	end, err := c.eng.Render(runDrawer{c: c, prose: &muted}, q.Question, f, y)
	if err != nil {
		return err
	}
	if c.pageNumber() == page {
		cpl := int(f.Width / (c.o.ContentSize * 0.5))
		reserved := start + float64(layout.EstimateLines(q.Question, cpl))*c.eng.Config().LineHeight()
		end = math.Max(end, reserved)
	}
	labelY := end + c.o.ContentSize
	if c.bodyStart(labelY) > f.Bottom {
		if labelY, err = f.Overflow(); err != nil {
			return err
		}
	}
	c.label(labelY, "Answer:")
	_, err = c.eng.Render(runDrawer{c: c}, q.Answer, f, c.bodyStart(labelY))
	return err
}

func (c *composer) milestonePage(percent int) {
	c.begin(PageInfo{Kind: PageMilestone, Percent: percent})
	w, h := c.o.PageWidth, c.o.PageHeight
	c.decorate("gradient", func() error {
		c.s.Gradient(0, 0, w, h, c.th.Primary, c.th.Secondary)
		return nil
	})
	fg := c.pol.HeaderText(c.th)
	c.centered(h/2-36, c.fonts.Bold, 72, fg, fmt.Sprintf("%d%%", percent))
	c.centered(h/2+24, c.fonts.Regular, c.o.SubtitleSize, fg, c.pick.progress(percent))
	c.decorate("progress bar", func() error {
		bw, bh := w*0.6, 20.0
		bx, by := w*0.2, h/2+60
		c.s.FillRect(bx, by, bw, bh, c.th.Secondary.Mix(c.th.Background, 0.5))
		c.s.FillRect(bx, by, bw*float64(percent)/100, bh, fg)
		return nil
	})
	// One dot per milestone, filled for those already passed.
	c.decorate("progress dots", func() error {
		dim := c.th.Secondary.Mix(c.th.Background, 0.5)
		cy := h/2 + 110
		for i, p := range milestonePercents {
			col := dim
			if p <= percent {
				col = fg
			}
			c.s.Circle(w/2+float64(i-1)*24, cy, 6, col)
		}
		return nil
	})
}

func (c *composer) finalPage() {
	c.begin(PageInfo{Kind: PageFinal})
	w, h := c.o.PageWidth, c.o.PageHeight
	c.s.FillRect(0, 0, w, h, c.th.Primary)
	fg := c.pol.HeaderText(c.th)
	c.centered(h/2-50, c.fonts.Bold, 36, fg, "Congratulations!")
	sub := fmt.Sprintf("You've completed all %d %s questions", c.total, c.o.Title)
	size := c.o.SubtitleSize
	for i, line := range wrapWords(c.fonts.Regular, size, sub, w-2*c.o.Margin) {
		c.centered(h/2+float64(i)*size*1.2, c.fonts.Regular, size, fg, line)
	}
	c.centered(h/2+50+size, c.fonts.Regular, 14, fg, "Ready for your interview? Best of luck!")
}
