package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/mindmate/pkg/companion"
	"tableflip.dev/mindmate/pkg/entry"
	"tableflip.dev/mindmate/pkg/mood"
	"tableflip.dev/mindmate/pkg/trend"
)

func init() {
	color.NoColor = true
}

func TestHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.History()
	if !strings.Contains(buf.String(), "No journal entries yet.") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestHistoryPlaceholder(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	e := entry.New(mood.Calm, "", time.Date(2024, time.June, 10, 21, 5, 0, 0, time.Local))
	pp.History(e)
	out := buf.String()
	for _, want := range []string{"Calm", "June 10, 2024", "09:05 PM", "No journal entry."} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestWeekPrintsSevenRows(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	now := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.Local)
	entries := []entry.MoodEntry{
		entry.New(mood.Happy, "", now.Add(-time.Hour)),
		entry.New(mood.Sad, "", now.Add(-2*time.Hour)),
	}
	pp.Week(trend.Week(entries, now))

	out := buf.String()
	if !strings.Contains(out, "Mon ██ 2") {
		t.Fatalf("expected stacked bar for Monday in %q", out)
	}
	if !strings.HasPrefix(out, "Tue") {
		t.Fatalf("expected oldest day first in %q", out)
	}
}

func TestSuggestionsMessageOrCards(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Suggestions(companion.SuggestionResult{Message: companion.NoEntriesMessage})
	if !strings.Contains(buf.String(), companion.NoEntriesMessage) {
		t.Fatalf("expected message, got %q", buf.String())
	}

	buf.Reset()
	pp.Suggestions(companion.SuggestionResult{Suggestions: []companion.Suggestion{
		{Title: "Breathe", Description: "In for four."},
		{Title: "Read", Description: "One chapter."},
	}})
	out := buf.String()
	if !strings.Contains(out, "≋ Breathe") || !strings.Contains(out, "▤ Read") {
		t.Fatalf("expected cycling icons in %q", out)
	}
}
