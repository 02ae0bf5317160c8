// Package profile stores the user's display name.
package profile

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"tableflip.dev/mindmate/pkg/store"
)

// Key is where the display name lives in the key-value store.
const Key = "mindmate_user_name"

// MinNameLength is the shortest name the onboarding form accepts.
const MinNameLength = 2

// ErrNameTooShort is reported by ValidateName.
var ErrNameTooShort = errors.New("profile: name too short")

// NameTooShortMessage is the onboarding form's text for ErrNameTooShort.
const NameTooShortMessage = "Name must be at least 2 characters long."

// Message returns the text to show a user for err.
func Message(err error) string {
	if errors.Is(err, ErrNameTooShort) {
		return NameTooShortMessage
	}
	return err.Error()
}

// Store owns the display name. An empty name means the user has not been
// onboarded yet.
type Store struct {
	kv     store.KV
	logger *log.Logger

	mu     sync.Mutex
	name   string
	loaded bool
}

// Option customises a Store.
type Option func(*Store)

// WithLogger replaces the stderr logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New returns a Store over kv. A nil kv keeps the name in memory.
func New(kv store.KV, opts ...Option) *Store {
	s := &Store{kv: kv, logger: log.New(os.Stderr, "", 0)}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load returns the stored name and whether one is set. Read failures are
// logged and treated as "not set".
func (s *Store) Load(ctx context.Context) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded && ctx.Err() == nil {
		s.loaded = true
		if s.kv != nil {
			data, ok, err := s.kv.Get(Key)
			switch {
			case err != nil:
				s.logger.Printf("profile: failed to load user name: %v", err)
			case ok && len(data) > 0:
				s.name = string(data)
			}
		}
	}
	return s.name, s.name != ""
}

// Reload re-reads the name from storage, keeping the in-memory value when
// nothing is stored.
func (s *Store) Reload(ctx context.Context) (string, bool) {
	s.mu.Lock()
	s.loaded = false
	prev := s.name
	s.mu.Unlock()
	name, ok := s.Load(ctx)
	if !ok && prev != "" {
		s.mu.Lock()
		s.name = prev
		s.mu.Unlock()
		return prev, true
	}
	return name, ok
}

// Save stores the trimmed name. An empty name is ignored. The in-memory value is updated
// even if the write fails; the failure is logged and returned.
func (s *Store) Save(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
	s.loaded = true
	if s.kv == nil {
		return nil
	}
	if err := s.kv.Set(Key, []byte(name)); err != nil {
		s.logger.Printf("profile: failed to save user name: %v", err)
		return fmt.Errorf("profile: save: %w", err)
	}
	return nil
}

// Name returns the in-memory name without touching storage.
func (s *Store) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

// ValidateName applies the onboarding form's rule.
func ValidateName(name string) error {
	if utf8.RuneCountInString(strings.TrimSpace(name)) < MinNameLength {
		return ErrNameTooShort
	}
	return nil
}

// Salutation picks the greeting for the hour of now.
func Salutation(now time.Time) string {
	switch h := now.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// Greeting returns e.g. "Good evening, Alex!".
func Greeting(name string, now time.Time) string {
	return fmt.Sprintf("%s, %s!", Salutation(now), name)
}
