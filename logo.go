package qapdf

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

var logoExts = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true}

var logoNameReplacer = strings.NewReplacer(" ", "", "-", "", "_", "")

func normalizeLogoName(s string) string {
	return logoNameReplacer.Replace(strings.ToLower(s))
}

// FindLogo looks in dir for an image whose base name matches title, ignoring
// case, spaces, dashes and underscores. An exact match wins over a partial
// one. A missing directory is not an error.
func FindLogo(dir, title string) (string, bool) {
	want := normalizeLogoName(title)
	if dir == "" || want == "" {
		return "", false
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !logoExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	base := func(n string) string { return normalizeLogoName(strings.TrimSuffix(n, filepath.Ext(n))) }
	for _, n := range names {
		if base(n) == want {
			return filepath.Join(dir, n), true
		}
	}
	for _, n := range names {
		b := base(n)
		if b != "" && (strings.Contains(want, b) || strings.Contains(b, want)) {
			return filepath.Join(dir, n), true
		}
	}
	return "", false
}

func loadLogo(path string, maxWidth int) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("decode %s: empty image", path)
	}
	return scaleImageToWidth(img, maxWidth), nil
}

func scaleImageToWidth(img image.Image, maxWidth int) image.Image {
	if img == nil {
		return nil
	}
	if maxWidth <= 0 {
		return img
	}
	bounds := img.Bounds()
	if bounds.Dx() <= maxWidth {
		return img
	}
	scale := float64(maxWidth) / float64(bounds.Dx())
	height := int(float64(bounds.Dy()) * scale)
	if height <= 0 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
	return dst
}
