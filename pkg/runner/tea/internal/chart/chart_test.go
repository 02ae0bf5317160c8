package chart

import (
	"strings"
	"testing"
	"time"

	"github.com/muesli/reflow/ansi"

	"tableflip.dev/mindmate/pkg/entry"
	"tableflip.dev/mindmate/pkg/mood"
	"tableflip.dev/mindmate/pkg/runner/tea/internal/theme"
	"tableflip.dev/mindmate/pkg/trend"
)

func week(t *testing.T, moods ...mood.Mood) []trend.Bucket {
	t.Helper()
	now := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.Local)
	entries := make([]entry.MoodEntry, 0, len(moods))
	for i, m := range moods {
		entries = append(entries, entry.New(m, "", now.Add(-time.Duration(i)*time.Minute)))
	}
	return trend.Week(entries, now)
}

func TestRenderEmptyWeek(t *testing.T) {
	got := Render(week(t), theme.Default(), 6)
	if !strings.Contains(got, EmptyMessage) {
		t.Fatalf("expected empty message, got %q", got)
	}
}

func TestRenderStacksTodayColumn(t *testing.T) {
	got := Render(week(t, mood.Happy, mood.Calm, mood.Calm), theme.Default(), 6)
	lines := strings.Split(got, "\n")
	if len(lines) != 8 {
		t.Fatalf("expected 6 bar rows plus labels and totals, got %d: %q", len(lines), got)
	}
	if !strings.Contains(lines[6], "Tue") || !strings.Contains(lines[6], "Mon") {
		t.Fatalf("expected day labels, got %q", lines[6])
	}
	filled := 0
	for _, l := range lines[:6] {
		if strings.Contains(l, fill) {
			filled++
		}
	}
	if filled != 3 {
		t.Fatalf("expected 3 filled rows, got %d: %q", filled, got)
	}
	if !strings.HasSuffix(strings.TrimRight(plain(lines[7]), " "), "3") {
		t.Fatalf("expected today's total of 3, got %q", lines[7])
	}
}

func TestCellsScaleToHeight(t *testing.T) {
	b := trend.Bucket{Counts: map[mood.Mood]int{mood.Happy: 10, mood.Sad: 1}}
	got := cells(b, 11, 4)
	if len(got) > 4 {
		t.Fatalf("expected at most 4 cells, got %d", len(got))
	}
	if got[len(got)-1] != mood.Sad {
		t.Fatalf("expected Sad to keep one cell, got %v", got)
	}
}

func TestLegendCountsWeek(t *testing.T) {
	got := Legend(week(t, mood.Anxious, mood.Anxious), theme.Default())
	for _, want := range []string{"Anxious 2", "Happy 0", "Calm 0"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in legend %q", want, got)
		}
	}
}

func plain(s string) string {
	var b strings.Builder
	seq := false
	for _, r := range s {
		if r == ansi.Marker {
			seq = true
			continue
		}
		if seq {
			if ansi.IsTerminator(r) {
				seq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
