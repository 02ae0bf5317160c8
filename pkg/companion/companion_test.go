package companion

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	"tableflip.dev/mindmate/pkg/entry"
	"tableflip.dev/mindmate/pkg/mood"
)

type fakeCollaborator struct {
	mu          sync.Mutex
	suggestions SuggestionOutput
	response    ChatOutput
	err         error
	suggestIn   []SuggestionInput
	chatIn      []ChatInput
	block       chan struct{}
}

func (f *fakeCollaborator) Suggest(_ context.Context, in SuggestionInput) (SuggestionOutput, error) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.suggestIn = append(f.suggestIn, in)
	return f.suggestions, f.err
}

func (f *fakeCollaborator) Chat(_ context.Context, in ChatInput) (ChatOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chatIn = append(f.chatIn, in)
	return f.response, f.err
}

func quiet() *log.Logger {
	return log.New(&bytes.Buffer{}, "", 0)
}

func sample() entry.MoodEntry {
	return entry.New(mood.Sad, "long day", time.Date(2024, time.June, 10, 9, 0, 0, 0, time.Local))
}

func threeCards() SuggestionOutput {
	return SuggestionOutput{Suggestions: []Suggestion{
		{Title: "Box breathing", Description: "Four counts in, hold, out, hold."},
		{Title: "Doodle", Description: "Draw a place that feels safe."},
		{Title: "Tea", Description: "Make a warm cup and savor it."},
	}}
}

func TestSuggestionsWithoutEntriesSkipsCollaborator(t *testing.T) {
	fake := &fakeCollaborator{suggestions: threeCards()}
	res, err := NewSuggestions(fake, quiet()).Request(context.Background(), entry.MoodEntry{}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Message != NoEntriesMessage || len(res.Suggestions) != 0 {
		t.Fatalf("unexpected result %+v", res)
	}
	if len(fake.suggestIn) != 0 {
		t.Fatalf("collaborator must not be called without entries")
	}
}

func TestSuggestionsSendsMoodSummary(t *testing.T) {
	fake := &fakeCollaborator{suggestions: threeCards()}
	res, err := NewSuggestions(fake, quiet()).Request(context.Background(), sample(), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Suggestions) != 3 || res.Message != "" {
		t.Fatalf("unexpected result %+v", res)
	}
	if got := fake.suggestIn[0].MoodData; got != "Mood: Sad. Journal: long day" {
		t.Fatalf("unexpected mood data %q", got)
	}
}

func TestSuggestionsFailureShowsNoCards(t *testing.T) {
	tests := map[string]*fakeCollaborator{
		"call fails":   {err: errors.New("unavailable"), suggestions: threeCards()},
		"nil list":     {},
		"empty title":  {suggestions: SuggestionOutput{Suggestions: []Suggestion{{Description: "x"}}}},
		"blank detail": {suggestions: SuggestionOutput{Suggestions: []Suggestion{{Title: "x", Description: " "}}}},
	}
	for name, fake := range tests {
		t.Run(name, func(t *testing.T) {
			res, err := NewSuggestions(fake, quiet()).Request(context.Background(), sample(), true)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Message != SuggestionErrorMessage || len(res.Suggestions) != 0 {
				t.Fatalf("unexpected result %+v", res)
			}
		})
	}
}

func TestSuggestionsBusy(t *testing.T) {
	fake := &fakeCollaborator{suggestions: threeCards(), block: make(chan struct{})}
	flow := NewSuggestions(fake, quiet())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = flow.Request(context.Background(), sample(), true)
	}()
	for !flow.Busy() {
		time.Sleep(time.Millisecond)
	}
	if _, err := flow.Request(context.Background(), sample(), true); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}
	close(fake.block)
	<-done
	if flow.Busy() {
		t.Fatalf("flow should be idle after the request finishes")
	}
}

func TestConversationSendsPriorHistory(t *testing.T) {
	fake := &fakeCollaborator{response: ChatOutput{Response: "I hear you."}}
	conv := NewConversation(fake, quiet())
	ctx := context.Background()

	if _, err := conv.Send(ctx, "hello"); err != nil {
		t.Fatalf("send: %v", err)
	}
	bot, err := conv.Send(ctx, "  rough week  ")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if bot.Role != RoleBot || bot.Content != "I hear you." {
		t.Fatalf("unexpected bot turn %+v", bot)
	}

	second := fake.chatIn[1]
	if second.Message != "rough week" {
		t.Fatalf("expected trimmed message, got %q", second.Message)
	}
	if len(second.History) != 2 || second.History[0].Role != RoleUser || second.History[1].Role != RoleBot {
		t.Fatalf("unexpected history %+v", second.History)
	}
	if n := len(conv.Turns()); n != 4 {
		t.Fatalf("expected 4 turns, got %d", n)
	}
}

func TestConversationFailureAddsOneApology(t *testing.T) {
	tests := map[string]*fakeCollaborator{
		"call fails":     {err: errors.New("timeout")},
		"empty response": {response: ChatOutput{}},
	}
	for name, fake := range tests {
		t.Run(name, func(t *testing.T) {
			conv := NewConversation(fake, quiet())
			bot, err := conv.Send(context.Background(), "hi")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if bot.Content != ChatErrorMessage {
				t.Fatalf("expected apology, got %q", bot.Content)
			}
			turns := conv.Turns()
			if len(turns) != 2 || turns[0].Role != RoleUser || turns[1].Content != ChatErrorMessage {
				t.Fatalf("unexpected transcript %+v", turns)
			}
		})
	}
}

func TestConversationRejectsEmptyMessage(t *testing.T) {
	fake := &fakeCollaborator{response: ChatOutput{Response: "ok"}}
	conv := NewConversation(fake, quiet())
	_, err := conv.Send(context.Background(), "   ")
	if !errors.Is(err, ErrEmptyMessage) || !IsValidation(err) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "companion: ") {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if len(fake.chatIn) != 0 || len(conv.Turns()) != 0 {
		t.Fatalf("blank input must not reach the collaborator or transcript")
	}
}

func TestConversationWithoutCollaborator(t *testing.T) {
	bot, err := NewConversation(nil, quiet()).Send(context.Background(), "hi")
	if err != nil || bot.Content != ChatErrorMessage {
		t.Fatalf("expected apology, got %+v %v", bot, err)
	}
}

func TestRenderChatPrompt(t *testing.T) {
	got, err := RenderChatPrompt(ChatInput{
		Message: "and today?",
		History: []Turn{{Role: RoleUser, Content: "hi"}, {Role: RoleBot, Content: "hello"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "Chat History:\nUser: hi\nBot: hello\n\nUser Message: and today?\n\nBot:"
	if !strings.HasSuffix(got, want) {
		t.Fatalf("unexpected prompt tail:\n%s", got)
	}
}

func TestRenderSuggestionPrompt(t *testing.T) {
	got, err := RenderSuggestionPrompt(SuggestionInput{MoodData: MoodSummary(sample())})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasSuffix(got, "Mood Data: Mood: Sad. Journal: long day") {
		t.Fatalf("unexpected prompt tail:\n%s", got)
	}
}

func TestDecorateHistory(t *testing.T) {
	got := DecorateHistory([]Turn{{Role: RoleUser}, {Role: RoleBot}})
	if !got[0].IsUser || got[0].IsBot || got[1].IsUser || !got[1].IsBot {
		t.Fatalf("unexpected flags %+v", got)
	}
}

func TestIconCycles(t *testing.T) {
	if Icon(0) != "wind" || Icon(5) != "wind" || Icon(4) != "sparkles" {
		t.Fatalf("icons do not cycle")
	}
}

func TestStripFences(t *testing.T) {
	if got := StripFences("```json\n{\"response\":\"hi\"}\n```"); got != `{"response":"hi"}` {
		t.Fatalf("unexpected %q", got)
	}
}
