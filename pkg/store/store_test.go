package store

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

type testConfig struct {
	path    string
	backend Backend
}

func (t testConfig) BasePath() string {
	return t.path
}

func (t testConfig) Backend() Backend {
	return t.backend
}

func exerciseKV(t *testing.T, kv KV) {
	t.Helper()

	if _, ok, err := kv.Get("missing"); err != nil || ok {
		t.Fatalf("expected missing key to report ok=false, err=nil; got ok=%t err=%v", ok, err)
	}
	if err := kv.Set("mindmate_user_name", []byte("Alex")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set("mindmate_user_name", []byte("Sam")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, ok, err := kv.Get("mindmate_user_name")
	if err != nil || !ok {
		t.Fatalf("get: ok=%t err=%v", ok, err)
	}
	if string(got) != "Sam" {
		t.Fatalf("expected last write to win, got %q", got)
	}
	if err := kv.Set("", []byte("x")); err == nil {
		t.Fatalf("expected error for empty key")
	}
}

func TestMemoryKV(t *testing.T) {
	exerciseKV(t, NewMemory())
}

func TestMemoryGetReturnsCopy(t *testing.T) {
	m := NewMemory()
	if err := m.Set("k", []byte("abc")); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, _, _ := m.Get("k")
	v[0] = 'z'
	again, _, _ := m.Get("k")
	if string(again) != "abc" {
		t.Fatalf("expected stored value to be isolated, got %q", again)
	}
}

func TestDiskvKV(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir(), backend: BackendDiskv})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	defer p.Close()
	exerciseKV(t, p)
}

func TestSQLiteKV(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir(), backend: BackendSQLite})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	defer p.Close()
	exerciseKV(t, p)
}

func TestSQLiteMigrateIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "kv.db")
	s, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if err := Migrate(s.db); err != nil {
		t.Fatalf("migrate again: %v", err)
	}
	var current int
	if err := s.db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations;`).Scan(&current); err != nil {
		t.Fatalf("read schema_migrations: %v", err)
	}
	if current != SchemaVersion {
		t.Fatalf("current version=%d, want %d", current, SchemaVersion)
	}
}

func TestLoadUnknownBackend(t *testing.T) {
	if _, err := Load(testConfig{path: t.TempDir(), backend: "bolt"}); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestDiskvWatchEmitsKeyChanges(t *testing.T) {
	p, err := OpenDiskv(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := p.Set("mindmate_mood_data", []byte("[]")); err != nil {
		t.Fatalf("set: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventInvalidated {
				return
			}
			if evt.Key != "mindmate_mood_data" {
				t.Fatalf("expected key mindmate_mood_data, got %q", evt.Key)
			}
			return
		case <-deadline:
			t.Fatal("timed out waiting for key change event")
		}
	}
}

func TestMemoryWatch(t *testing.T) {
	m := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := m.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	if err := m.Set("k", []byte("v")); err != nil {
		t.Fatalf("set: %v", err)
	}
	select {
	case evt := <-ch:
		if evt.Key != "k" {
			t.Fatalf("expected key k, got %q", evt.Key)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for memory event")
	}
	cancel()
	for range ch {
	}
}

func TestThrottleSendsNothingAfterStop(t *testing.T) {
	var stopped, late atomic.Int32
	for i := 0; i < 2000; i++ {
		var done atomic.Bool
		send := func(Event) {
			if done.Load() {
				late.Add(1)
			}
		}
		th := newEventThrottle(time.Microsecond)
		th.Enqueue(Event{Type: EventKeyChanged, Key: "mindmate_mood_data"}, send)
		if i%2 == 0 {
			time.Sleep(time.Microsecond)
		}
		th.Stop()
		done.Store(true)
		stopped.Add(1)
	}
	time.Sleep(10 * time.Millisecond)
	if n := late.Load(); n != 0 {
		t.Fatalf("%d of %d throttles sent after Stop", n, stopped.Load())
	}
}

func TestThrottleCoalescesKeys(t *testing.T) {
	got := make(chan Event, 8)
	th := newEventThrottle(5 * time.Millisecond)
	defer th.Stop()
	send := func(ev Event) { got <- ev }
	for i := 0; i < 3; i++ {
		th.Enqueue(Event{Type: EventKeyChanged, Key: "mindmate_user_name"}, send)
	}
	select {
	case ev := <-got:
		if ev.Key != "mindmate_user_name" {
			t.Fatalf("unexpected event %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatalf("expected a flushed event")
	}
	select {
	case ev := <-got:
		t.Fatalf("expected one event per key, got extra %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}
