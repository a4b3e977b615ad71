package qapdf

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/arran4/qapdf/layout"
	"github.com/golang/freetype/truetype"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// FontAndFace is a parsed TrueType font plus the raw bytes embedded in the
// PDF. Faces are created per size on demand.
type FontAndFace struct {
	Name string
	TTF  []byte
	Font *truetype.Font

	mu    sync.Mutex
	faces map[float64]font.Face
}

// Fonts is the set used by a render.
type Fonts struct {
	Regular *FontAndFace
	Bold    *FontAndFace
	Mono    *FontAndFace
}

// FontConfig points at optional TTF files. Empty paths use the bundled Go
// fonts.
type FontConfig struct {
	RegularPath string `mapstructure:"regular" yaml:"regular"`
	BoldPath    string `mapstructure:"bold" yaml:"bold"`
	MonoPath    string `mapstructure:"mono" yaml:"mono"`
}

func loadFontAndFace(name string, ttfBytes []byte) (*FontAndFace, error) {
	ft, err := truetype.Parse(ttfBytes)
	if err != nil {
		return nil, err
	}
	return &FontAndFace{
		Name:  name,
		TTF:   ttfBytes,
		Font:  ft,
		faces: make(map[float64]font.Face),
	}, nil
}

// Face returns a face at size points. At 72 DPI one pixel is one point, so
// advances come back in PDF units.
func (f *FontAndFace) Face(size float64) font.Face {
	f.mu.Lock()
	defer f.mu.Unlock()
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := truetype.NewFace(f.Font, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingNone})
	f.faces[size] = face
	return face
}

// Width measures s at size in points.
func (f *FontAndFace) Width(size float64, s string) float64 {
	if f == nil || s == "" || size <= 0 {
		return 0
	}
	adv := font.MeasureString(f.Face(size), s)
	return float64(adv) / 64
}

// Measurer binds the font to a size for the layout engine.
func (f *FontAndFace) Measurer(size float64) layout.Measurer {
	return layout.MeasureFunc(func(s string) float64 { return f.Width(size, s) })
}

// LoadFonts loads the configured fonts. A font that cannot be read or parsed
// is replaced by the bundled Go font and a warning is logged.
func LoadFonts(cfg FontConfig, log zerolog.Logger) (Fonts, error) {
	var f Fonts
	var err error
	if f.Regular, err = loadOne(log, "qa-regular", cfg.RegularPath, goregular.TTF); err != nil {
		return f, err
	}
	if f.Bold, err = loadOne(log, "qa-bold", cfg.BoldPath, gobold.TTF); err != nil {
		return f, err
	}
	if f.Mono, err = loadOne(log, "qa-mono", cfg.MonoPath, gomono.TTF); err != nil {
		return f, err
	}
	return f, nil
}

func loadOne(log zerolog.Logger, name, path string, fallback []byte) (*FontAndFace, error) {
	if path != "" {
		b, err := os.ReadFile(path)
		if err == nil {
			var ff *FontAndFace
			if ff, err = loadFontAndFace(name, b); err == nil {
				return ff, nil
			}
		}
		log.Warn().Err(err).Str("font", path).Msg("using bundled font")
	}
	ff, err := loadFontAndFace(name, fallback)
	if err != nil {
		return nil, fmt.Errorf("qapdf: bundled font %s: %w", name, err)
	}
	return ff, nil
}

// wrapWords greedily packs words into lines no wider than maxWidth. Used for
// titles and quotes, which never contain code.
func wrapWords(f *FontAndFace, size float64, text string, maxWidth float64) []string {
	var lines []string
	var line string
	for _, w := range strings.Fields(text) {
		candidate := w
		if line != "" {
			candidate = line + " " + w
		}
		if f.Width(size, candidate) <= maxWidth || line == "" {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
