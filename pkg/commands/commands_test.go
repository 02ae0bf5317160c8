package commands

import (
	"sort"
	"strings"
	"testing"
)

func TestNewRegistersVerbs(t *testing.T) {
	root := New()
	var got []string
	for _, c := range root.Commands() {
		got = append(got, c.Name())
	}
	sort.Strings(got)
	for _, want := range []string{"chat", "completion", "hello", "history", "info", "log", "mcp", "moods", "name", "serve", "suggest", "trend", "ui", "upgrade", "version"} {
		i := sort.SearchStrings(got, want)
		if i >= len(got) || got[i] != want {
			t.Fatalf("expected %q among %v", want, got)
		}
	}
}

func TestLogRejectsUnknownMood(t *testing.T) {
	root := New()
	root.SetArgs([]string{"log", "bored"})
	root.SilenceErrors = true
	root.SilenceUsage = true
	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "bored") {
		t.Fatalf("expected unknown mood error, got %v", err)
	}
}

func TestHistoryRejectsBadWindow(t *testing.T) {
	root := New()
	root.SetArgs([]string{"history", "--last", "soon"})
	root.SilenceErrors = true
	root.SilenceUsage = true
	if err := root.Execute(); err == nil {
		t.Fatalf("expected window parse error")
	}
}
