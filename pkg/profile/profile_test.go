package profile

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"tableflip.dev/mindmate/pkg/store"
)

type brokenKV struct{}

func (brokenKV) Get(string) ([]byte, bool, error) { return nil, false, errors.New("unavailable") }
func (brokenKV) Set(string, []byte) error         { return errors.New("unavailable") }

func TestSaveEmptyKeepsPreviousName(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	s := New(kv)
	if err := s.Save(ctx, "Alex"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Save(ctx, ""); err != nil {
		t.Fatalf("save empty: %v", err)
	}
	if name, ok := s.Load(ctx); !ok || name != "Alex" {
		t.Fatalf("expected Alex, got %q (ok=%t)", name, ok)
	}
	if name, _ := New(kv).Load(ctx); name != "Alex" {
		t.Fatalf("expected persisted Alex, got %q", name)
	}
}

func TestSaveThenLoad(t *testing.T) {
	ctx := context.Background()
	s := New(store.NewMemory())
	if name, ok := s.Load(ctx); ok || name != "" {
		t.Fatalf("expected no name before onboarding, got %q", name)
	}
	if err := s.Save(ctx, "Alex"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if name, ok := s.Load(ctx); !ok || name != "Alex" {
		t.Fatalf("expected Alex, got %q", name)
	}
}

func TestStorageFailuresDoNotLoseName(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	s := New(brokenKV{}, WithLogger(log.New(&buf, "", 0)))
	if _, ok := s.Load(ctx); ok {
		t.Fatalf("expected no name from broken storage")
	}
	if err := s.Save(ctx, "Sam"); err == nil {
		t.Fatalf("expected save error to be reported")
	}
	if s.Name() != "Sam" {
		t.Fatalf("expected in-memory name Sam, got %q", s.Name())
	}
	if buf.Len() == 0 {
		t.Fatalf("expected failures to be logged")
	}
}

func TestValidateName(t *testing.T) {
	if err := ValidateName(" A "); !errors.Is(err, ErrNameTooShort) {
		t.Fatalf("expected ErrNameTooShort, got %v", err)
	}
	if err := ValidateName("Al"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMessage(t *testing.T) {
	if got := Message(ValidateName("A")); got != NameTooShortMessage {
		t.Fatalf("expected %q, got %q", NameTooShortMessage, got)
	}
	if got := ErrNameTooShort.Error(); !strings.HasPrefix(got, "profile: ") {
		t.Fatalf("expected package prefix, got %q", got)
	}
	other := errors.New("profile: save: disk full")
	if got := Message(other); got != other.Error() {
		t.Fatalf("expected %q, got %q", other.Error(), got)
	}
}

func TestSaveTrimsWhitespace(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	s := New(kv)
	if err := s.Save(ctx, "  Alex  "); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Save(ctx, "   "); err != nil {
		t.Fatalf("save blank: %v", err)
	}
	if name, _ := New(kv).Load(ctx); name != "Alex" {
		t.Fatalf("expected stored Alex, got %q", name)
	}
}

func TestGreeting(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{hour: 6, want: "Good morning, Alex!"},
		{hour: 12, want: "Good afternoon, Alex!"},
		{hour: 17, want: "Good afternoon, Alex!"},
		{hour: 18, want: "Good evening, Alex!"},
	}
	for _, tt := range tests {
		now := time.Date(2024, time.June, 10, tt.hour, 0, 0, 0, time.Local)
		if got := Greeting("Alex", now); got != tt.want {
			t.Fatalf("hour %d: expected %q, got %q", tt.hour, tt.want, got)
		}
	}
}

func TestReloadPicksUpExternalWrite(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	s := New(kv)
	if err := s.Save(ctx, "Alex"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := New(kv).Save(ctx, "Sam"); err != nil {
		t.Fatalf("save from second store: %v", err)
	}
	if name, _ := s.Load(ctx); name != "Alex" {
		t.Fatalf("expected cached Alex before reload, got %q", name)
	}
	if name, ok := s.Reload(ctx); !ok || name != "Sam" {
		t.Fatalf("expected Sam after reload, got %q (ok=%t)", name, ok)
	}
}
