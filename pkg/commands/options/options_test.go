package options

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"tableflip.dev/mindmate/pkg/mood"
)

func TestMoodOptionsParseArgs(t *testing.T) {
	o := &MoodOptions{}
	if err := o.ParseArgs([]string{"worried", "exam", "tomorrow"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Mood != mood.Anxious || o.Journal != "exam tomorrow" {
		t.Fatalf("unexpected options %+v", o)
	}

	o = &MoodOptions{Journal: "from flag"}
	_ = o.ParseArgs([]string{"calm", "ignored"})
	if o.Journal != "from flag" {
		t.Fatalf("flag should win over trailing args, got %q", o.Journal)
	}

	if err := (&MoodOptions{}).ParseArgs([]string{"bored"}); err == nil {
		t.Fatalf("expected unknown mood error")
	}
}

func TestMoodCompletions(t *testing.T) {
	got := MoodCompletions("s")
	if strings.Join(got, ",") != "sad,stressed" {
		t.Fatalf("unexpected completions %v", got)
	}
}

func TestHandleErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	o := &OutputOptions{JSON: true, Out: &buf}
	if err := o.HandleError(errors.New("boom")); err != nil {
		t.Fatalf("expected error to be rendered, got %v", err)
	}
	if strings.TrimSpace(buf.String()) != `{"error":"boom"}` {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestMCPOptions(t *testing.T) {
	o := &MCPOptions{Host: " ", Port: 9003, Path: "rpc"}
	if got := o.EndpointPath(); got != "/rpc" {
		t.Fatalf("expected /rpc, got %q", got)
	}
	addr, err := o.ListenAddr()
	if err != nil || addr != "127.0.0.1:9003" {
		t.Fatalf("unexpected addr %q err %v", addr, err)
	}
	if _, err := (&MCPOptions{Port: 70000}).ListenAddr(); err == nil {
		t.Fatalf("expected port range error")
	}
	if got := (&MCPOptions{}).EndpointPath(); got != "/mcp" {
		t.Fatalf("expected default path, got %q", got)
	}
}
