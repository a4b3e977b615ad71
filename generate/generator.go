package generate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arran4/qapdf"
	"github.com/rs/zerolog"
)

const systemPrompt = `You are an expert interviewer. Generate interview questions and answers in JSON format.
Each question should be a dictionary with 'question' and 'answer' fields.
The answer should be detailed and comprehensive.
Return ONLY the JSON array, no other text or notes.
Make sure the response is valid JSON with no trailing commas.`

// Generator asks a provider for questions in batches.
type Generator struct {
	Provider    Provider
	Limiter     *Limiter
	Backoff     Backoff
	BatchSize   int
	MaxAttempts int
	Log         zerolog.Logger
}

// NewGenerator uses DefaultBackoff, three attempts per batch and no limiter.
func NewGenerator(p Provider, batchSize int, log zerolog.Logger) *Generator {
	return &Generator{Provider: p, Backoff: DefaultBackoff, BatchSize: batchSize, MaxAttempts: 3, Log: log}
}

// Generate returns up to n questions about topic. Each batch lists the
// questions already collected so the model avoids repeats. A batch that
// keeps failing ends generation early; that is only an error when nothing
// was collected.
func (g *Generator) Generate(ctx context.Context, topic string, n int) ([]qapdf.Question, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, errors.New("generate: topic must not be empty")
	}
	if n <= 0 {
		return nil, fmt.Errorf("generate: question count must be positive, got %d", n)
	}
	size := g.BatchSize
	if size <= 0 {
		size = n
	}
	attempts := g.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	log := g.Log.With().Str("topic", topic).Str("provider", g.Provider.Name()).Logger()

	var out []qapdf.Question
	for len(out) < n {
		want := min(size, n-len(out))
		var got []qapdf.Question
		var lastErr error
		for try := 1; try <= attempts; try++ {
			if err := ctx.Err(); err != nil {
				return out, err
			}
			got, lastErr = g.batch(ctx, topic, want, out)
			if lastErr == nil && len(got) > 0 {
				break
			}
			if errors.Is(lastErr, ErrConfiguration) {
				return out, lastErr
			}
			log.Warn().Err(lastErr).Int("attempt", try).Int("max", attempts).Msg("batch failed")
		}
		if len(got) == 0 {
			if len(out) == 0 {
				if lastErr == nil {
					lastErr = errors.New("no questions returned")
				}
				return nil, fmt.Errorf("generate: failed after %d attempts: %w", attempts, lastErr)
			}
			log.Warn().Int("have", len(out)).Int("want", n).Msg("stopping early")
			break
		}
		if len(got) > n-len(out) {
			got = got[:n-len(out)]
		}
		out = append(out, got...)
		log.Info().Int("batch", len(got)).Int("total", len(out)).Msg("generated")
	}
	return out, nil
}

func (g *Generator) batch(ctx context.Context, topic string, n int, existing []qapdf.Question) ([]qapdf.Question, error) {
	system := systemPrompt
	if len(existing) > 0 {
		var b strings.Builder
		b.WriteString(system)
		b.WriteString("\n\nHere are the existing questions that you should NOT repeat:\n")
		for _, q := range existing {
			b.WriteString("- ")
			b.WriteString(q.Question)
			b.WriteByte('\n')
		}
		system = strings.TrimRight(b.String(), "\n")
	}
	user := fmt.Sprintf("Generate %d new interview questions about %s. Return them as a JSON array of objects with 'question' and 'answer' fields. Make sure to provide detailed answers.", n, topic)

	resp, err := Retry(ctx, g.Backoff, g.Log, func(ctx context.Context) (string, error) {
		if g.Limiter != nil {
			if err := g.Limiter.Wait(ctx); err != nil {
				return "", err
			}
		}
		return g.Provider.Complete(ctx, system, user)
	})
	if err != nil {
		return nil, err
	}
	return ParseQuestions(resp)
}

// ParseQuestions extracts the JSON array between the first '[' and the last
// ']' of a completion and validates every record.
func ParseQuestions(resp string) ([]qapdf.Question, error) {
	start := strings.IndexByte(resp, '[')
	end := strings.LastIndexByte(resp, ']')
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: no JSON array in response", ErrParse)
	}
	var raw []map[string]any
	if err := json.Unmarshal([]byte(resp[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	out := make([]qapdf.Question, 0, len(raw))
	for i, r := range raw {
		q, qok := r["question"].(string)
		a, aok := r["answer"].(string)
		if !qok || !aok {
			return nil, fmt.Errorf("%w: record %d needs string question and answer fields", ErrParse, i+1)
		}
		out = append(out, qapdf.Question{Question: q, Answer: a})
	}
	if err := qapdf.ValidateQuestions(out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return out, nil
}

// OutputPath is dir/<topic>_questions.json.
func OutputPath(dir, topic string) string {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(topic)), " ", "_")
	return filepath.Join(dir, name+"_questions.json")
}
