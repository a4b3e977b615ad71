package qapdf

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ErrNoWritePermission is returned when the output directory cannot be
	// written to.
	ErrNoWritePermission = errors.New("no write permission")
	// ErrEmptyOutput is returned when rendering produced no bytes.
	ErrEmptyOutput = errors.New("qapdf: rendered document is empty")
)

// CreatePDF renders questions to path and returns the path written. The
// file appears only once the whole document has been rendered.
func CreatePDF(questions []Question, path string, opts Options) (string, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("qapdf: create %s: %w", dir, err)
	}
	if err := checkWritable(dir); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := Render(questions, &buf, opts); err != nil {
		return "", err
	}
	if buf.Len() == 0 {
		return "", ErrEmptyOutput
	}
	tmp, err := os.CreateTemp(dir, ".qapdf-*.pdf")
	if err != nil {
		return "", fmt.Errorf("qapdf: %w to directory %s: %v", ErrNoWritePermission, dir, err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("qapdf: write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("qapdf: write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("qapdf: write %s: %w", path, err)
	}
	return path, nil
}

func checkWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".qapdf-probe-*")
	if err != nil {
		return fmt.Errorf("qapdf: %w to directory %s: %v", ErrNoWritePermission, dir, err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

// DefaultTitle derives a title from a question file name:
// "python_basics_questions.json" becomes "Python Basics".
func DefaultTitle(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.ReplaceAll(name, "_questions", "")
	caser := cases.Title(language.English)
	words := strings.FieldsFunc(name, func(r rune) bool { return r == '_' })
	for i, w := range words {
		words[i] = caser.String(w)
	}
	return strings.Join(words, " ")
}

var unsafeFilenameChars = regexp.MustCompile(`[\\/:*?"<>|]`)

// OutputFilename is dir/<title>_<YYYYMMDD_HHMMSS>.pdf with the title
// lowercased and made safe for file systems.
func OutputFilename(title, dir string, now time.Time) string {
	safe := strings.ReplaceAll(strings.ToLower(unsafeFilenameChars.ReplaceAllString(title, "_")), " ", "_")
	return filepath.Join(dir, fmt.Sprintf("%s_%s.pdf", safe, now.Format("20060102_150405")))
}
