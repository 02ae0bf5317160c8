package companion

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"tableflip.dev/mindmate/pkg/entry"
)

// SuggestionResult is what the suggestions screen renders: either cards or a
// message, never both.
type SuggestionResult struct {
	Suggestions []Suggestion
	Message     string
}

// Suggestions runs the self-care suggestion flow.
type Suggestions struct {
	collaborator Collaborator
	logger       *log.Logger
	busy         atomic.Bool
}

// NewSuggestions returns a flow over c. Logger may be nil.
func NewSuggestions(c Collaborator, logger *log.Logger) *Suggestions {
	if logger == nil {
		logger = log.New(os.Stderr, "", 0)
	}
	return &Suggestions{collaborator: c, logger: logger}
}

// Busy reports whether a request is in flight.
func (f *Suggestions) Busy() bool { return f.busy.Load() }

// Request asks for suggestions for the newest entry. With no entry the
// collaborator is not called. Collaborator failures become
// SuggestionErrorMessage; the only returned error is ErrBusy.
func (f *Suggestions) Request(ctx context.Context, latest entry.MoodEntry, ok bool) (SuggestionResult, error) {
	if !f.busy.CompareAndSwap(false, true) {
		return SuggestionResult{}, ErrBusy
	}
	defer f.busy.Store(false)

	if !ok {
		return SuggestionResult{Message: NoEntriesMessage}, nil
	}
	if f.collaborator == nil {
		f.logger.Printf("companion: failed to get suggestions: %v", ErrNoCollaborator)
		return SuggestionResult{Message: SuggestionErrorMessage}, nil
	}

	out, err := f.collaborator.Suggest(ctx, SuggestionInput{MoodData: MoodSummary(latest)})
	if err == nil {
		err = out.Validate()
	}
	if err != nil {
		f.logger.Printf("companion: failed to get suggestions: %v", err)
		return SuggestionResult{Message: SuggestionErrorMessage}, nil
	}
	return SuggestionResult{Suggestions: out.Suggestions}, nil
}

// Conversation is an in-memory chat transcript. It is not persisted.
type Conversation struct {
	collaborator Collaborator
	logger       *log.Logger
	busy         atomic.Bool

	mu    sync.Mutex
	turns []Turn
}

// NewConversation returns an empty conversation over c. Logger may be nil.
func NewConversation(c Collaborator, logger *log.Logger) *Conversation {
	if logger == nil {
		logger = log.New(os.Stderr, "", 0)
	}
	return &Conversation{collaborator: c, logger: logger}
}

// Busy reports whether a reply is pending.
func (c *Conversation) Busy() bool { return c.busy.Load() }

// Turns returns a copy of the transcript.
func (c *Conversation) Turns() []Turn {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Turn, len(c.turns))
	copy(out, c.turns)
	return out
}

// Reset clears the transcript.
func (c *Conversation) Reset() {
	c.mu.Lock()
	c.turns = nil
	c.mu.Unlock()
}

// Send appends the user's message, asks the collaborator and appends exactly
// one bot turn, which is returned. A failed call yields ChatErrorMessage as
// the bot turn. Blank input returns ErrEmptyMessage before anything changes.
func (c *Conversation) Send(ctx context.Context, message string) (Turn, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Turn{}, ErrEmptyMessage
	}
	if !c.busy.CompareAndSwap(false, true) {
		return Turn{}, ErrBusy
	}
	defer c.busy.Store(false)

	c.mu.Lock()
	history := make([]Turn, len(c.turns))
	copy(history, c.turns)
	c.turns = append(c.turns, Turn{Role: RoleUser, Content: message})
	c.mu.Unlock()

	reply, err := c.ask(ctx, ChatInput{Message: message, History: history})
	if err != nil {
		c.logger.Printf("companion: failed to get chat response: %v", err)
		reply = ChatErrorMessage
	}

	bot := Turn{Role: RoleBot, Content: reply}
	c.mu.Lock()
	c.turns = append(c.turns, bot)
	c.mu.Unlock()
	return bot, nil
}

func (c *Conversation) ask(ctx context.Context, in ChatInput) (string, error) {
	if c.collaborator == nil {
		return "", ErrNoCollaborator
	}
	out, err := c.collaborator.Chat(ctx, in)
	if err != nil {
		return "", err
	}
	if err := out.Validate(); err != nil {
		return "", err
	}
	return out.Response, nil
}

// IsValidation reports whether err was raised before any collaborator call.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyMessage) || errors.Is(err, ErrBusy)
}
