package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// DefaultOpenAIBaseURL is the public API endpoint.
const DefaultOpenAIBaseURL = "https://api.openai.com"

// OpenAI talks to the chat completions API.
type OpenAI struct {
	client      *http.Client
	baseURL     string
	key         string
	model       string
	temperature float64
	maxTokens   int
}

// NewOpenAI requires an API key.
func NewOpenAI(cfg ProviderConfig, client *http.Client) (*OpenAI, error) {
	if strings.TrimSpace(cfg.OpenAIKey) == "" {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY not set", ErrConfiguration)
	}
	base := cfg.OpenAIBaseURL
	if base == "" {
		base = DefaultOpenAIBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &OpenAI{
		client:      client,
		baseURL:     strings.TrimRight(base, "/"),
		key:         cfg.OpenAIKey,
		model:       cfg.OpenAIModel,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}, nil
}

func (o *OpenAI) Name() string { return "openai/" + o.model }

type openAIRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type openAIResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

func (o *OpenAI) Complete(ctx context.Context, system, user string) (string, error) {
	header := http.Header{"Authorization": {"Bearer " + o.key}}
	status, body, err := postJSON(ctx, o.client, o.baseURL+"/v1/chat/completions", header, openAIRequest{
		Model:       o.model,
		Messages:    messages(system, user),
		Temperature: o.temperature,
		MaxTokens:   o.maxTokens,
	})
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", openAIError(status, body)
	}
	var r openAIResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return "", fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(r.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrParse)
	}
	return r.Choices[0].Message.Content, nil
}

func openAIError(status int, body []byte) error {
	msg := strings.ToLower(string(bytes.TrimSpace(body)))
	switch {
	case strings.Contains(msg, "insufficient_quota"):
		return fmt.Errorf("%w: openai key has insufficient quota", ErrAPI)
	case status == http.StatusUnauthorized || strings.Contains(msg, "invalid_api_key"):
		return fmt.Errorf("%w: invalid openai api key", ErrConfiguration)
	case status == http.StatusTooManyRequests || strings.Contains(msg, "rate_limit"):
		return fmt.Errorf("%w: openai returned %d", ErrRateLimited, status)
	default:
		return fmt.Errorf("%w: openai returned %d", ErrAPI, status)
	}
}
