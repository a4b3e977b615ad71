package qapdf

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/arran4/qapdf/theme"
	"github.com/jung-kurt/gofpdf"
)

// surface is the drawing target of the composer. Coordinates are points
// from the top-left corner; text y is the baseline.
type surface interface {
	AddPage()
	FillRect(x, y, w, h float64, c theme.RGB)
	Gradient(x, y, w, h float64, from, to theme.RGB)
	Circle(x, y, r float64, c theme.RGB)
	Text(x, y float64, f *FontAndFace, size float64, c theme.RGB, s string)
	Image(name string, img image.Image, x, y, w, h float64) error
	Err() error
	ClearErr()
}

// pdfCanvas draws onto a gofpdf document.
type pdfCanvas struct {
	pdf *gofpdf.Fpdf
}

func newPDFCanvas(o Options, fonts Fonts) *pdfCanvas {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: o.PageWidth, Ht: o.PageHeight},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(o.Title, true)
	pdf.SetSubject("Interview Questions", true)
	pdf.SetCreator("qapdf", true)
	if o.Author != "" {
		pdf.SetAuthor(o.Author, true)
	}
	pdf.SetCreationDate(o.Now())
	for _, f := range []*FontAndFace{fonts.Regular, fonts.Bold, fonts.Mono} {
		pdf.AddUTF8FontFromBytes(f.Name, "", f.TTF)
	}
	return &pdfCanvas{pdf: pdf}
}

func (c *pdfCanvas) AddPage() { c.pdf.AddPage() }

func (c *pdfCanvas) FillRect(x, y, w, h float64, col theme.RGB) {
	r, g, b := col.Bytes()
	c.pdf.SetFillColor(r, g, b)
	c.pdf.Rect(x, y, w, h, "F")
}

func (c *pdfCanvas) Gradient(x, y, w, h float64, from, to theme.RGB) {
	r1, g1, b1 := from.Bytes()
	r2, g2, b2 := to.Bytes()
	// Vertical blend between the two colours.
	c.pdf.LinearGradient(x, y, w, h, r1, g1, b1, r2, g2, b2, 0, 0, 0, 1)
}

func (c *pdfCanvas) Circle(x, y, radius float64, col theme.RGB) {
	r, g, b := col.Bytes()
	c.pdf.SetFillColor(r, g, b)
	c.pdf.Circle(x, y, radius, "F")
}

func (c *pdfCanvas) Text(x, y float64, f *FontAndFace, size float64, col theme.RGB, s string) {
	r, g, b := col.Bytes()
	c.pdf.SetFont(f.Name, "", size)
	c.pdf.SetTextColor(r, g, b)
	c.pdf.Text(x, y, s)
}

func (c *pdfCanvas) Image(name string, img image.Image, x, y, w, h float64) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("qapdf: encode %s: %w", name, err)
	}
	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	c.pdf.RegisterImageOptionsReader(name, opt, &buf)
	if err := c.pdf.Error(); err != nil {
		return err
	}
	c.pdf.ImageOptions(name, x, y, w, h, false, opt, 0, "")
	return c.pdf.Error()
}

func (c *pdfCanvas) Err() error { return c.pdf.Error() }

func (c *pdfCanvas) ClearErr() { c.pdf.ClearError() }

// Output writes the finished document.
func (c *pdfCanvas) Output(w io.Writer) error {
	return c.pdf.Output(w)
}

var _ surface = (*pdfCanvas)(nil)
