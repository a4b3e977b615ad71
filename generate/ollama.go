package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultOllamaBaseURL is a local Ollama server.
const DefaultOllamaBaseURL = "http://localhost:11434"

// Ollama talks to the /api/chat endpoint of an Ollama server.
type Ollama struct {
	client      *http.Client
	baseURL     string
	model       string
	temperature float64
	maxTokens   int
}

// NewOllama does not contact the server; call Ping for that.
func NewOllama(cfg ProviderConfig, client *http.Client) (*Ollama, error) {
	base := cfg.OllamaBaseURL
	if base == "" {
		base = DefaultOllamaBaseURL
	}
	if cfg.OllamaModel == "" {
		return nil, fmt.Errorf("%w: ollama model not set", ErrConfiguration)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Ollama{
		client:      client,
		baseURL:     strings.TrimRight(base, "/"),
		model:       cfg.OllamaModel,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}, nil
}

func (o *Ollama) Name() string { return "ollama/" + o.model }

// Ping checks the server answers /api/tags.
func (o *Ollama) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"/api/tags", nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	resp, err := o.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: could not connect to ollama at %s: %v", ErrConnection, o.baseURL, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: ollama at %s returned %d", ErrConnection, o.baseURL, resp.StatusCode)
	}
	return nil
}

type ollamaRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  ollamaOptions `json:"options"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaResponse struct {
	Message *chatMessage `json:"message"`
}

func (o *Ollama) Complete(ctx context.Context, system, user string) (string, error) {
	status, body, err := postJSON(ctx, o.client, o.baseURL+"/api/chat", nil, ollamaRequest{
		Model:    o.model,
		Messages: messages(system, user),
		Options:  ollamaOptions{Temperature: o.temperature, NumPredict: o.maxTokens},
	})
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("%w: ollama returned %d", ErrAPI, status)
	}
	if len(body) == 0 {
		return "", fmt.Errorf("%w: empty response from ollama", ErrAPI)
	}
	var r ollamaResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return "", fmt.Errorf("%w: invalid json from ollama: %v", ErrParse, err)
	}
	if r.Message == nil {
		return "", fmt.Errorf("%w: ollama response has no message", ErrParse)
	}
	return r.Message.Content, nil
}
