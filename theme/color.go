package theme

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a colour with channels in [0,1].
type RGB struct {
	R, G, B float64
}

// Hex parses "#rrggbb", "rrggbb" or the short "#rgb" form.
func Hex(s string) (RGB, error) {
	h := "#" + strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 4 && len(h) != 7 {
		return RGB{}, fmt.Errorf("theme: invalid hex colour %q", s)
	}
	c, err := colorful.Hex(h)
	if err != nil {
		return RGB{}, fmt.Errorf("theme: invalid hex colour %q: %w", s, err)
	}
	return RGB{R: c.R, G: c.G, B: c.B}, nil
}

// MustHex is Hex for compile-time constants.
func MustHex(s string) RGB {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Gray returns a neutral colour.
func Gray(v float64) RGB { return RGB{v, v, v} }

// Mean is the average of the three channels.
func (c RGB) Mean() float64 { return (c.R + c.G + c.B) / 3 }

// Bytes converts to 0-255 channels.
func (c RGB) Bytes() (r, g, b int) {
	return to8(c.R), to8(c.G), to8(c.B)
}

// Mix blends c towards o by t in [0,1].
func (c RGB) Mix(o RGB, t float64) RGB {
	t = math.Max(0, math.Min(1, t))
	m := c.toColorful().BlendRgb(o.toColorful(), t)
	return RGB{R: m.R, G: m.G, B: m.B}
}

func (c RGB) toColorful() colorful.Color { return colorful.Color{R: c.R, G: c.G, B: c.B} }

func (c RGB) String() string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func to8(v float64) int {
	return int(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
