package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Provider turns a system and user prompt into a completion.
type Provider interface {
	Name() string
	Complete(ctx context.Context, system, user string) (string, error)
}

// ProviderConfig selects and configures a provider.
type ProviderConfig struct {
	Type          string
	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string
	OllamaBaseURL string
	OllamaModel   string
	Temperature   float64
	MaxTokens     int
	Timeout       time.Duration
}

// NewProvider builds the provider named by cfg.Type.
func NewProvider(cfg ProviderConfig) (Provider, error) {
	client := &http.Client{Timeout: cfg.Timeout}
	switch strings.ToLower(cfg.Type) {
	case "openai":
		return NewOpenAI(cfg, client)
	case "ollama":
		return NewOllama(cfg, client)
	default:
		return nil, fmt.Errorf("%w: unknown api type %q", ErrConfiguration, cfg.Type)
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func messages(system, user string) []chatMessage {
	return []chatMessage{{Role: "system", Content: system}, {Role: "user", Content: user}}
}

// postJSON sends body and returns the response body for any status. Transport
// failures map to ErrConnection.
func postJSON(ctx context.Context, client *http.Client, url string, header http.Header, body any) (int, []byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 0, nil, err
		}
		return 0, nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("%w: read response: %v", ErrConnection, err)
	}
	return resp.StatusCode, data, nil
}
