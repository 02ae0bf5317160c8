// Package anthropic implements the companion collaborator on the Anthropic
// Messages API.
package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"tableflip.dev/mindmate/pkg/companion"
)

const (
	// DefaultEndpoint is the Messages API URL.
	DefaultEndpoint = "https://api.anthropic.com/v1/messages"
	// DefaultModel is used when no model is configured.
	DefaultModel = "claude-sonnet-4-20250514"

	apiVersion = "2023-06-01"
	maxTokens  = 1024
)

// ErrNoAPIKey is returned by New without credentials.
var ErrNoAPIKey = errors.New("anthropic: ANTHROPIC_API_KEY is not set")

// Collaborator asks Claude for JSON-only answers and validates them.
type Collaborator struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

var _ companion.Collaborator = (*Collaborator)(nil)

// Option customises a Collaborator.
type Option func(*Collaborator)

// WithEndpoint points the collaborator at another Messages API URL.
func WithEndpoint(url string) Option {
	return func(c *Collaborator) { c.endpoint = url }
}

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Collaborator) { c.client = hc }
}

// New returns a collaborator for apiKey. An empty model selects DefaultModel.
func New(apiKey, model string, opts ...Option) (*Collaborator, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	if model == "" {
		model = DefaultModel
	}
	c := &Collaborator{
		apiKey:   apiKey,
		model:    model,
		endpoint: DefaultEndpoint,
		client:   http.DefaultClient,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Suggest implements companion.Collaborator.
func (c *Collaborator) Suggest(ctx context.Context, in companion.SuggestionInput) (companion.SuggestionOutput, error) {
	var out companion.SuggestionOutput
	prompt, err := companion.RenderSuggestionPrompt(in)
	if err != nil {
		return out, fmt.Errorf("anthropic: render prompt: %w", err)
	}
	if err := c.complete(ctx, prompt+"\n\n"+companion.SuggestionJSONHint, &out); err != nil {
		return out, err
	}
	return out, out.Validate()
}

// Chat implements companion.Collaborator.
func (c *Collaborator) Chat(ctx context.Context, in companion.ChatInput) (companion.ChatOutput, error) {
	var out companion.ChatOutput
	prompt, err := companion.RenderChatPrompt(in)
	if err != nil {
		return out, fmt.Errorf("anthropic: render prompt: %w", err)
	}
	if err := c.complete(ctx, prompt+"\n\n"+companion.ChatJSONHint, &out); err != nil {
		return out, err
	}
	return out, out.Validate()
}

type apiRequest struct {
	Model     string       `json:"model"`
	MaxTokens int          `json:"max_tokens"`
	Messages  []apiMessage `json:"messages"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type apiResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *Collaborator) complete(ctx context.Context, prompt string, v interface{}) error {
	body, err := json.Marshal(apiRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		Messages:  []apiMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return fmt.Errorf("anthropic: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("anthropic: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("anthropic: http request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("anthropic: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("anthropic: api error (status %d): %s", resp.StatusCode, string(raw))
	}

	var apiResp apiResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return fmt.Errorf("anthropic: unmarshal response: %w", err)
	}
	if apiResp.Error != nil {
		return fmt.Errorf("anthropic: api error: %s", apiResp.Error.Message)
	}
	if len(apiResp.Content) == 0 {
		return fmt.Errorf("%w: empty content", companion.ErrSchema)
	}

	if err := json.Unmarshal([]byte(companion.StripFences(apiResp.Content[0].Text)), v); err != nil {
		return fmt.Errorf("%w: %v", companion.ErrSchema, err)
	}
	return nil
}
