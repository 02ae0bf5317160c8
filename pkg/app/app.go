package app

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"tableflip.dev/mindmate/pkg/companion"
	"tableflip.dev/mindmate/pkg/entry"
	"tableflip.dev/mindmate/pkg/journal"
	"tableflip.dev/mindmate/pkg/mood"
	"tableflip.dev/mindmate/pkg/profile"
	"tableflip.dev/mindmate/pkg/store"
	"tableflip.dev/mindmate/pkg/trend"
)

// UnknownMood is shown when no entry has been logged.
const UnknownMood = "Unknown"

// ErrNoPersistence is returned by operations that need a backing store.
var ErrNoPersistence = errors.New("app: no persistence configured")

// Service provides the journal, profile and companion operations shared by
// the CLI, TUI, HTTP and MCP front ends.
type Service struct {
	Persistence  store.Persistence
	Journal      *journal.Store
	Profile      *profile.Store
	Suggestions  *companion.Suggestions
	Conversation *companion.Conversation

	now func() time.Time
}

// Options configures New.
type Options struct {
	// Persistence may be nil, in which case nothing outlives the process.
	Persistence  store.Persistence
	Collaborator companion.Collaborator
	Logger       *log.Logger
	Now          func() time.Time
}

// New wires the stores and flows over one persistence layer.
func New(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "", 0)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	var kv store.KV
	if opts.Persistence != nil {
		kv = opts.Persistence
	}
	return &Service{
		Persistence:  opts.Persistence,
		Journal:      journal.New(kv, journal.WithClock(now), journal.WithLogger(logger)),
		Profile:      profile.New(kv, profile.WithLogger(logger)),
		Suggestions:  companion.NewSuggestions(opts.Collaborator, logger),
		Conversation: companion.NewConversation(opts.Collaborator, logger),
		now:          now,
	}
}

// Now is the service clock.
func (s *Service) Now() time.Time { return s.now() }

// Reload re-reads the journal from storage. A load error is a soft warning;
// the in-memory journal is kept.
func (s *Service) Reload(ctx context.Context) ([]entry.MoodEntry, error) {
	return s.Journal.Load(ctx)
}

// Entries returns the journal newest first, loading it on first use.
func (s *Service) Entries(ctx context.Context) ([]entry.MoodEntry, error) {
	if !s.Journal.Loaded() {
		return s.Journal.Load(ctx)
	}
	return s.Journal.Entries(), nil
}

// Log records a mood. An ErrPersist result still carries the entry.
func (s *Service) Log(ctx context.Context, m mood.Mood, note string) (entry.MoodEntry, error) {
	return s.Journal.Append(ctx, m, note)
}

// Latest returns the newest entry.
func (s *Service) Latest(ctx context.Context) (entry.MoodEntry, bool) {
	if !s.Journal.Loaded() {
		_, _ = s.Journal.Load(ctx)
	}
	return s.Journal.Latest()
}

// LastMood names the newest mood, or UnknownMood.
func (s *Service) LastMood(ctx context.Context) string {
	if e, ok := s.Latest(ctx); ok {
		return string(e.Mood)
	}
	return UnknownMood
}

// Week buckets the journal into the trailing seven days.
func (s *Service) Week(ctx context.Context) ([]trend.Bucket, error) {
	entries, err := s.Entries(ctx)
	return trend.Week(entries, s.now()), err
}

// ReloadUserName re-reads the display name after an external write.
func (s *Service) ReloadUserName(ctx context.Context) (string, bool) {
	return s.Profile.Reload(ctx)
}

// UserName returns the stored display name.
func (s *Service) UserName(ctx context.Context) (string, bool) {
	return s.Profile.Load(ctx)
}

// SetUserName validates and stores the display name.
func (s *Service) SetUserName(ctx context.Context, name string) error {
	if err := profile.ValidateName(name); err != nil {
		return err
	}
	return s.Profile.Save(ctx, name)
}

// Greeting returns the time-of-day greeting, or false before onboarding.
func (s *Service) Greeting(ctx context.Context) (string, bool) {
	name, ok := s.Profile.Load(ctx)
	if !ok {
		return "", false
	}
	return profile.Greeting(name, s.now()), true
}

// Suggest asks for self-care suggestions based on the newest entry.
func (s *Service) Suggest(ctx context.Context) (companion.SuggestionResult, error) {
	latest, ok := s.Latest(ctx)
	return s.Suggestions.Request(ctx, latest, ok)
}

// Chat sends one message in the session conversation.
func (s *Service) Chat(ctx context.Context, message string) (companion.Turn, error) {
	return s.Conversation.Send(ctx, message)
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

// Close releases the persistence layer.
func (s *Service) Close() error {
	if s.Persistence == nil {
		return nil
	}
	return s.Persistence.Close()
}
