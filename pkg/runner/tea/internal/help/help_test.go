package help

import (
	"strings"
	"testing"
)

func TestRendersKeyReference(t *testing.T) {
	m := New(60, 40, "notty")
	if err := m.Err(); err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	view := m.View()
	for _, want := range []string{"MindMate keys", "Suggestions"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in help view %q", want, view)
		}
	}
}

func TestUnknownStyleReportsError(t *testing.T) {
	m := New(60, 20, "no-such-style")
	if m.Err() == nil {
		t.Fatalf("expected an error for an unknown style")
	}
	if !strings.Contains(m.View(), "help unavailable") {
		t.Fatalf("expected fallback text, got %q", m.View())
	}
}
