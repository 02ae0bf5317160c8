package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tableflip.dev/mindmate/pkg/companion"
)

func server(t *testing.T, status int, text string, seen *apiRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "test-key" {
			t.Errorf("missing api key header")
		}
		if seen != nil {
			_ = json.NewDecoder(r.Body).Decode(seen)
		}
		w.WriteHeader(status)
		resp := map[string]interface{}{
			"content": []map[string]string{{"type": "text", "text": text}},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSuggestParsesFencedJSON(t *testing.T) {
	var seen apiRequest
	srv := server(t, http.StatusOK, "```json\n{\"suggestions\":[{\"title\":\"Walk\",\"description\":\"Notice three new things.\"}]}\n```", &seen)
	c, err := New("test-key", "", WithEndpoint(srv.URL))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := c.Suggest(context.Background(), companion.SuggestionInput{MoodData: "Mood: Okay. Journal: "})
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(out.Suggestions) != 1 || out.Suggestions[0].Title != "Walk" {
		t.Fatalf("unexpected output %+v", out)
	}
	if seen.Model != DefaultModel || len(seen.Messages) != 1 {
		t.Fatalf("unexpected request %+v", seen)
	}
	if !strings.Contains(seen.Messages[0].Content, "Return ONLY a JSON object") {
		t.Fatalf("prompt missing JSON instruction")
	}
}

func TestChatReply(t *testing.T) {
	srv := server(t, http.StatusOK, `{"response":"That sounds hard."}`, nil)
	c, _ := New("test-key", "claude-test", WithEndpoint(srv.URL))
	out, err := c.Chat(context.Background(), companion.ChatInput{Message: "hi"})
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if out.Response != "That sounds hard." {
		t.Fatalf("unexpected response %q", out.Response)
	}
}

func TestChatSchemaMismatch(t *testing.T) {
	srv := server(t, http.StatusOK, "I am not JSON", nil)
	c, _ := New("test-key", "", WithEndpoint(srv.URL))
	if _, err := c.Chat(context.Background(), companion.ChatInput{Message: "hi"}); !errors.Is(err, companion.ErrSchema) {
		t.Fatalf("expected ErrSchema, got %v", err)
	}
}

func TestStatusError(t *testing.T) {
	srv := server(t, http.StatusTooManyRequests, "", nil)
	c, _ := New("test-key", "", WithEndpoint(srv.URL))
	_, err := c.Chat(context.Background(), companion.ChatInput{Message: "hi"})
	if err == nil || !strings.Contains(err.Error(), "status 429") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestNewRequiresKey(t *testing.T) {
	if _, err := New("", ""); !errors.Is(err, ErrNoAPIKey) {
		t.Fatalf("expected ErrNoAPIKey, got %v", err)
	}
}
