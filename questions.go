package qapdf

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoQuestions is returned for an empty question list.
	ErrNoQuestions = errors.New("qapdf: no questions")
	// ErrInvalidQuestion is returned for malformed records.
	ErrInvalidQuestion = errors.New("qapdf: invalid question")
)

// Question is one interview question and its answer. Either may contain
// inline code spans and fenced code blocks.
type Question struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// QuestionSet is a loaded question file. Title is set when the file names
// one.
type QuestionSet struct {
	Title     string     `json:"title,omitempty" yaml:"title,omitempty"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// ValidateQuestions checks that there is at least one question and that
// every question and answer is non-blank.
func ValidateQuestions(qs []Question) error {
	if len(qs) == 0 {
		return ErrNoQuestions
	}
	for i, q := range qs {
		if strings.TrimSpace(q.Question) == "" {
			return fmt.Errorf("%w: record %d has an empty question", ErrInvalidQuestion, i+1)
		}
		if strings.TrimSpace(q.Answer) == "" {
			return fmt.Errorf("%w: record %d has an empty answer", ErrInvalidQuestion, i+1)
		}
	}
	return nil
}

// LoadQuestions reads a .json, .yaml/.yml or .md question file. A relative
// path that does not exist is also looked up in each of searchDirs.
func LoadQuestions(path string, searchDirs ...string) (*QuestionSet, error) {
	resolved, err := resolveQuestionPath(path, searchDirs)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("qapdf: read questions: %w", err)
	}
	var set *QuestionSet
	switch strings.ToLower(filepath.Ext(resolved)) {
	case ".yaml", ".yml":
		set, err = parseYAMLQuestions(data)
	case ".md", ".markdown":
		set, err = parseMarkdownQuestions(data)
	default:
		set, err = parseJSONQuestions(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", resolved, err)
	}
	if err := ValidateQuestions(set.Questions); err != nil {
		return nil, fmt.Errorf("%s: %w", resolved, err)
	}
	return set, nil
}

func resolveQuestionPath(path string, dirs []string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if !filepath.IsAbs(path) {
		for _, d := range dirs {
			candidate := filepath.Join(d, path)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
	}
	return "", fmt.Errorf("qapdf: question file %s not found", path)
}

// parseJSONQuestions accepts a bare array of records or a QuestionSet object.
func parseJSONQuestions(data []byte) (*QuestionSet, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var set QuestionSet
		if err := json.Unmarshal(trimmed, &set); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidQuestion, err)
		}
		return &set, nil
	}
	var qs []Question
	if err := json.Unmarshal(trimmed, &qs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuestion, err)
	}
	return &QuestionSet{Questions: qs}, nil
}

func parseYAMLQuestions(data []byte) (*QuestionSet, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuestion, err)
	}
	if len(node.Content) == 0 {
		return &QuestionSet{}, nil
	}
	root := node.Content[0]
	var set QuestionSet
	var err error
	if root.Kind == yaml.MappingNode {
		err = root.Decode(&set)
	} else {
		err = root.Decode(&set.Questions)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuestion, err)
	}
	return &set, nil
}

// parseMarkdownQuestions treats every level-2 heading as a question and the
// source up to the next level-1 or level-2 heading as its answer, fences
// included. A level-1 heading names the set.
func parseMarkdownQuestions(src []byte) (*QuestionSet, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))
	set := &QuestionSet{}

	type mark struct {
		heading    string
		start, end int // line bounds of the heading in src
	}
	var marks []mark
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok || h.Level > 2 || h.Lines().Len() == 0 {
			continue
		}
		seg := h.Lines().At(0)
		title := strings.TrimSpace(string(h.Lines().Value(src)))
		start := bytes.LastIndexByte(src[:seg.Start], '\n') + 1
		end := seg.Stop
		if i := bytes.IndexByte(src[end:], '\n'); i >= 0 {
			end += i + 1
		} else {
			end = len(src)
		}
		if h.Level == 1 {
			if set.Title == "" {
				set.Title = title
			}
			marks = append(marks, mark{start: start, end: end})
			continue
		}
		marks = append(marks, mark{heading: title, start: start, end: end})
	}
	for i, m := range marks {
		if m.heading == "" {
			continue
		}
		stop := len(src)
		if i+1 < len(marks) {
			stop = marks[i+1].start
		}
		set.Questions = append(set.Questions, Question{
			Question: m.heading,
			Answer:   strings.TrimSpace(string(src[m.end:stop])),
		})
	}
	return set, nil
}

// SaveQuestions writes qs as an indented JSON array.
func SaveQuestions(path string, qs []Question) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("qapdf: create %s: %w", filepath.Dir(path), err)
	}
	data, err := json.MarshalIndent(qs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
