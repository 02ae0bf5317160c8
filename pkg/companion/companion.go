// Package companion talks to the generative-AI collaborator behind the
// suggestion and chat screens.
package companion

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/mindmate/pkg/entry"
)

const (
	NoEntriesMessage       = "Please log your mood first to get personalized suggestions."
	SuggestionErrorMessage = "Sorry, something went wrong. Please try again later."
	ChatErrorMessage       = "Sorry, I'm having trouble connecting right now. Please try again later."
	EmptyMessageText       = "Message cannot be empty"
)

var (
	// ErrSchema is returned when collaborator output does not match the
	// declared shape.
	ErrSchema = errors.New("companion: response does not match schema")
	// ErrBusy is returned when a flow already has a request in flight.
	ErrBusy = errors.New("companion: request already in progress")
	// ErrEmptyMessage rejects blank chat input.
	ErrEmptyMessage = errors.New("companion: empty message")
	// ErrNoCollaborator is returned by flows built without a backend.
	ErrNoCollaborator = errors.New("companion: no AI provider configured")
)

// Collaborator is a generative backend with schema-constrained output.
type Collaborator interface {
	Suggest(ctx context.Context, in SuggestionInput) (SuggestionOutput, error)
	Chat(ctx context.Context, in ChatInput) (ChatOutput, error)
}

// SuggestionInput carries the newest entry as a single line of text.
type SuggestionInput struct {
	MoodData string `json:"moodData"`
}

// Suggestion is one self-care card.
type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SuggestionOutput is the collaborator's answer. Three suggestions are asked
// for; any non-empty-field list is accepted.
type SuggestionOutput struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// Validate checks the output shape.
func (o SuggestionOutput) Validate() error {
	if o.Suggestions == nil {
		return fmt.Errorf("%w: missing suggestions", ErrSchema)
	}
	for i, s := range o.Suggestions {
		if strings.TrimSpace(s.Title) == "" || strings.TrimSpace(s.Description) == "" {
			return fmt.Errorf("%w: suggestion %d needs a title and description", ErrSchema, i)
		}
	}
	return nil
}

// Role identifies who spoke a chat turn.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Turn is one chat message.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ChatInput is the new message plus everything said before it.
type ChatInput struct {
	Message string `json:"message"`
	History []Turn `json:"chatHistory,omitempty"`
}

// ChatOutput is the bot's reply.
type ChatOutput struct {
	Response string `json:"response"`
}

// Validate checks the output shape.
func (o ChatOutput) Validate() error {
	if strings.TrimSpace(o.Response) == "" {
		return fmt.Errorf("%w: empty response", ErrSchema)
	}
	return nil
}

// DecoratedTurn exposes role checks to prompt templates.
type DecoratedTurn struct {
	Turn
	IsUser bool
	IsBot  bool
}

// DecorateHistory flags each turn with its role.
func DecorateHistory(turns []Turn) []DecoratedTurn {
	out := make([]DecoratedTurn, len(turns))
	for i, t := range turns {
		out[i] = DecoratedTurn{
			Turn:   t,
			IsUser: t.Role == RoleUser,
			IsBot:  t.Role == RoleBot,
		}
	}
	return out
}

// MoodSummary renders an entry the way the suggestion prompt expects.
func MoodSummary(e entry.MoodEntry) string {
	return fmt.Sprintf("Mood: %s. Journal: %s", e.Mood, e.Journal)
}

var icons = []string{"wind", "book", "stretch", "coffee", "sparkles"}

// Icon names the card icon for the suggestion at index i.
func Icon(i int) string {
	if i < 0 {
		i = -i
	}
	return icons[i%len(icons)]
}

var iconSymbols = map[string]string{
	"wind":     "≋",
	"book":     "▤",
	"stretch":  "⤢",
	"coffee":   "☕",
	"sparkles": "✦",
}

// IconSymbol is the terminal glyph for Icon(i).
func IconSymbol(i int) string {
	return iconSymbols[Icon(i)]
}
