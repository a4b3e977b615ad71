package qapdf

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTitle(t *testing.T) {
	assert.Equal(t, "Python Basics", DefaultTitle("json/python_basics_questions.json"))
	assert.Equal(t, "Go", DefaultTitle("go.yaml"))
	assert.Equal(t, "Php Oop", DefaultTitle("/tmp/PHP_OOP.md"))
}

func TestOutputFilename(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 5, 7, 0, time.UTC)
	assert.Equal(t, filepath.Join("pdf", "go_routines_20240301_090507.pdf"), OutputFilename("Go Routines", "pdf", now))
	assert.Equal(t, filepath.Join("out", "c_c++_a_b_20240301_090507.pdf"), OutputFilename("C/C++ a:b", "out", now))
}

func TestCreatePDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "go.pdf")
	got, err := CreatePDF([]Question{{Question: "What is X?", Answer: "X is Y."}}, path, testOptions())
	require.NoError(t, err)
	assert.Equal(t, path, got)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(data[:5]))

	leftovers, err := filepath.Glob(filepath.Join(dir, "nested", ".qapdf-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestCreatePDFLeavesNothingOnBadInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.pdf")
	_, err := CreatePDF(nil, path, testOptions())
	require.ErrorIs(t, err, ErrNoQuestions)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCreatePDFReadOnlyDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })
	_, err := CreatePDF([]Question{{Question: "Q?", Answer: "A."}}, filepath.Join(dir, "x.pdf"), testOptions())
	require.ErrorIs(t, err, ErrNoWritePermission)
	assert.Contains(t, err.Error(), "no write permission to directory "+dir)
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 255, A: 255})
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestFindLogo(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "go.png"), 4, 2)
	writePNG(t, filepath.Join(dir, "python-basics.png"), 4, 2)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	p, ok := FindLogo(dir, "Go")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "go.png"), p)

	p, ok = FindLogo(dir, "Python Basics")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "python-basics.png"), p)

	p, ok = FindLogo(dir, "Advanced Python Basics Interview")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "python-basics.png"), p)

	_, ok = FindLogo(dir, "Notes")
	assert.False(t, ok)
	_, ok = FindLogo(filepath.Join(dir, "missing"), "Go")
	assert.False(t, ok)
}

func TestLoadLogoScales(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wide.png")
	writePNG(t, path, 400, 100)
	img, err := loadLogo(path, 200)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 200, 50), img.Bounds())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.png"), []byte("nope"), 0o644))
	_, err = loadLogo(filepath.Join(dir, "broken.png"), 200)
	assert.Error(t, err)
}

func TestCoverDrawsLogo(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "go.png"), 40, 20)
	o := testOptions()
	o.LogoDir = dir
	rec, _ := renderRecorded(t, []Question{{Question: "Q?", Answer: "A."}}, o)
	assert.Equal(t, 1, rec.images)
}

func TestLoadFontsFallsBack(t *testing.T) {
	f, err := LoadFonts(FontConfig{RegularPath: filepath.Join(t.TempDir(), "missing.ttf")}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "qa-regular", f.Regular.Name)
	assert.Greater(t, f.Regular.Width(12, "hello"), 0.0)
	assert.Less(t, f.Regular.Width(12, "i"), f.Regular.Width(12, "W"))
	assert.Equal(t, f.Mono.Width(12, "i"), f.Mono.Width(12, "W"))
}

func TestWrapWords(t *testing.T) {
	f := testFonts(t)
	w := math.Max(f.Regular.Width(12, "alpha beta"), f.Regular.Width(12, "gamma delta"))
	lines := wrapWords(f.Regular, 12, "alpha beta gamma delta", w)
	assert.Equal(t, []string{"alpha beta", "gamma delta"}, lines)
}
