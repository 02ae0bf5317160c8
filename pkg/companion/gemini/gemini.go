// Package gemini implements the companion collaborator on Google's Gemini API.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"tableflip.dev/mindmate/pkg/companion"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// ErrNoAPIKey is returned by New without credentials.
var ErrNoAPIKey = errors.New("gemini: GEMINI_API_KEY is not set")

type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Collaborator answers suggestion and chat prompts with JSON constrained by a
// response schema.
type Collaborator struct {
	models generator
	model  string
}

var _ companion.Collaborator = (*Collaborator)(nil)

// New connects to the Gemini API.
func New(ctx context.Context, apiKey, model string) (*Collaborator, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &Collaborator{models: client.Models, model: model}, nil
}

func suggestionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"suggestions": {
				Type:        genai.TypeArray,
				Description: "An array of 3 realistic and actionable self-care suggestions tailored to the user's mood.",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title":       {Type: genai.TypeString, Description: "A short, catchy title for the self-care activity."},
						"description": {Type: genai.TypeString, Description: "A brief, actionable description of the activity."},
					},
					Required:         []string{"title", "description"},
					PropertyOrdering: []string{"title", "description"},
				},
			},
		},
		Required: []string{"suggestions"},
	}
}

func chatSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"response": {Type: genai.TypeString, Description: "The chatbot response to the user message."},
		},
		Required: []string{"response"},
	}
}

// Suggest implements companion.Collaborator.
func (c *Collaborator) Suggest(ctx context.Context, in companion.SuggestionInput) (companion.SuggestionOutput, error) {
	var out companion.SuggestionOutput
	prompt, err := companion.RenderSuggestionPrompt(in)
	if err != nil {
		return out, fmt.Errorf("gemini: render prompt: %w", err)
	}
	if err := c.generate(ctx, prompt, suggestionSchema(), &out); err != nil {
		return out, err
	}
	return out, out.Validate()
}

// Chat implements companion.Collaborator.
func (c *Collaborator) Chat(ctx context.Context, in companion.ChatInput) (companion.ChatOutput, error) {
	var out companion.ChatOutput
	prompt, err := companion.RenderChatPrompt(in)
	if err != nil {
		return out, fmt.Errorf("gemini: render prompt: %w", err)
	}
	if err := c.generate(ctx, prompt, chatSchema(), &out); err != nil {
		return out, err
	}
	return out, out.Validate()
}

func (c *Collaborator) generate(ctx context.Context, prompt string, schema *genai.Schema, v interface{}) error {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}
	res, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		return fmt.Errorf("gemini: generate: %w", err)
	}
	text, err := firstText(res)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(companion.StripFences(text)), v); err != nil {
		return fmt.Errorf("%w: %v", companion.ErrSchema, err)
	}
	return nil
}

// firstText pulls the text of the first candidate. Blocked prompts come back
// with no candidates.
func firstText(res *genai.GenerateContentResponse) (string, error) {
	if res == nil || len(res.Candidates) == 0 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty candidate list", companion.ErrSchema)
	}
	return res.Candidates[0].Content.Parts[0].Text, nil
}
