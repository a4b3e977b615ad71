package layout

// Drawer places one run with its baseline at (x, baseline).
type Drawer interface {
	DrawRun(x, baseline float64, r Run) error
}

// Frame is the column text is drawn into. When the next baseline would fall
// below Bottom, Overflow is called to start a new page and must return the
// first baseline on it. A nil Overflow lets text run past Bottom.
type Frame struct {
	X        float64
	Width    float64
	Bottom   float64
	Overflow func() (float64, error)
}

// Draw draws lines starting at baseline y and returns the baseline for
// whatever follows. The cursor only moves down except when Overflow resets
// it on a new page.
func (e *Engine) Draw(d Drawer, lines []Line, f Frame, y float64) (float64, error) {
	for _, l := range lines {
		if y+l.Before > f.Bottom && f.Overflow != nil {
			ny, err := f.Overflow()
			if err != nil {
				return y, err
			}
			y = ny
		}
		y += l.Before
		x := f.X
		for _, r := range l.Runs {
			if err := d.DrawRun(x, y, r); err != nil {
				return y, err
			}
			x += r.Width
		}
		y += l.Height + l.After
	}
	return y, nil
}

// Render parses, wraps and draws text into f.
func (e *Engine) Render(d Drawer, text string, f Frame, y float64) (float64, error) {
	return e.Draw(d, e.Layout(text, f.Width), f, y)
}
