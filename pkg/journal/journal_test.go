package journal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"tableflip.dev/mindmate/pkg/entry"
	"tableflip.dev/mindmate/pkg/mood"
	"tableflip.dev/mindmate/pkg/store"
)

type failingKV struct {
	getErr error
	setErr error
	data   []byte
}

func (f *failingKV) Get(string) ([]byte, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	return f.data, f.data != nil, nil
}

func (f *failingKV) Set(_ string, v []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data = v
	return nil
}

type tick struct {
	at time.Time
}

func (t *tick) now() time.Time {
	t.at = t.at.Add(time.Minute)
	return t.at
}

func quietLogger(buf *bytes.Buffer) *log.Logger {
	return log.New(buf, "", 0)
}

func TestAppendThenLoadIsNewestFirst(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	clock := &tick{at: time.Date(2024, time.June, 10, 8, 0, 0, 0, time.Local)}
	s := New(kv, WithClock(clock.now))

	if _, err := s.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	moods := []mood.Mood{mood.Happy, mood.Sad, mood.Calm, mood.Anxious}
	for i, m := range moods {
		if _, err := s.Append(ctx, m, strings.Repeat("x", i)); err != nil {
			t.Fatalf("append %s: %v", m, err)
		}
	}

	reloaded, err := New(kv).Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(reloaded) != len(moods) {
		t.Fatalf("expected %d entries, got %d", len(moods), len(reloaded))
	}
	for i := range moods {
		want := moods[len(moods)-1-i]
		if reloaded[i].Mood != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, reloaded[i].Mood)
		}
		if i > 0 && reloaded[i].CreatedAt.After(reloaded[i-1].CreatedAt) {
			t.Fatalf("entries not newest first at %d", i)
		}
	}
}

func TestAppendDoesNotMutateEarlierEntries(t *testing.T) {
	ctx := context.Background()
	s := New(store.NewMemory())
	first, err := s.Append(ctx, mood.Okay, "first")
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	before := s.Entries()
	if _, err := s.Append(ctx, mood.Sad, "second"); err != nil {
		t.Fatalf("append: %v", err)
	}

	if before[0] != first {
		t.Fatalf("snapshot changed after append: %+v", before[0])
	}
	after := s.Entries()
	if after[1] != first {
		t.Fatalf("expected first entry unchanged, got %+v", after[1])
	}
	after[1].Journal = "edited"
	if s.Entries()[1].Journal != "first" {
		t.Fatalf("Entries must return a copy")
	}
}

func TestLoadEmptyStore(t *testing.T) {
	got, err := New(store.NewMemory()).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty journal, got %d", len(got))
	}
}

func TestLoadCorruptDataDegrades(t *testing.T) {
	kv := store.NewMemory()
	_ = kv.Set(Key, []byte("{not json"))
	var buf bytes.Buffer

	got, err := New(kv, WithLogger(quietLogger(&buf))).Load(context.Background())
	if !errors.Is(err, ErrLoad) {
		t.Fatalf("expected ErrLoad, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty journal, got %d", len(got))
	}
	if !strings.Contains(buf.String(), "failed to parse mood data") {
		t.Fatalf("expected failure to be logged, got %q", buf.String())
	}
}

func TestLoadBackendErrorDegrades(t *testing.T) {
	var buf bytes.Buffer
	got, err := New(&failingKV{getErr: errors.New("disk gone")}, WithLogger(quietLogger(&buf))).Load(context.Background())
	if !errors.Is(err, ErrLoad) {
		t.Fatalf("expected ErrLoad, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty journal")
	}
}

func TestReloadFailureKeepsHistory(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	kv := &failingKV{}
	s := New(kv, WithLogger(quietLogger(&buf)))
	for _, m := range []mood.Mood{mood.Calm, mood.Sad} {
		if _, err := s.Append(ctx, m, ""); err != nil {
			t.Fatalf("append %s: %v", m, err)
		}
	}

	kv.getErr = errors.New("transient read error")
	got, err := s.Load(ctx)
	if !errors.Is(err, ErrLoad) || len(got) != 0 {
		t.Fatalf("expected degraded load, got %d entries err=%v", len(got), err)
	}
	if n := len(s.Entries()); n != 2 {
		t.Fatalf("expected in-memory journal kept, got %d entries", n)
	}

	kv.getErr = nil
	if _, err := s.Append(ctx, mood.Happy, ""); err != nil {
		t.Fatalf("append after reload: %v", err)
	}
	var records []entry.Record
	if err := json.Unmarshal(kv.data, &records); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 3 || records[0].Mood != "Happy" || records[2].Mood != "Calm" {
		t.Fatalf("expected 3 persisted records newest first, got %+v", records)
	}
}

func TestAppendWhileUnreadableDoesNotOverwrite(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	kv := &failingKV{}
	if _, err := New(kv).Append(ctx, mood.Calm, "stored"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	kv.getErr = errors.New("locked")
	s := New(kv, WithLogger(quietLogger(&buf)))

	e, err := s.Append(ctx, mood.Sad, "session only")
	if !errors.Is(err, ErrPersist) || e.Mood != mood.Sad {
		t.Fatalf("expected session-only entry with ErrPersist, got %+v err=%v", e, err)
	}
	if kv.data == nil || !strings.Contains(string(kv.data), "stored") || strings.Contains(string(kv.data), "session only") {
		t.Fatalf("stored history should be untouched, got %s", kv.data)
	}

	kv.getErr = nil
	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 || got[0].Journal != "session only" || got[1].Journal != "stored" {
		t.Fatalf("expected session entry ahead of stored one, got %+v", got)
	}
}

func TestAppendWriteFailureKeepsEntryInMemory(t *testing.T) {
	var buf bytes.Buffer
	s := New(&failingKV{setErr: errors.New("quota exceeded")}, WithLogger(quietLogger(&buf)))

	e, err := s.Append(context.Background(), mood.Calm, "tea")
	if !errors.Is(err, ErrPersist) {
		t.Fatalf("expected ErrPersist, got %v", err)
	}
	if e.Mood != mood.Calm {
		t.Fatalf("expected returned entry, got %+v", e)
	}
	if latest, ok := s.Latest(); !ok || latest.ID != e.ID {
		t.Fatalf("expected entry kept in memory")
	}
	if !strings.Contains(buf.String(), "failed to save mood data") {
		t.Fatalf("expected failure to be logged, got %q", buf.String())
	}
}

func TestAppendRejectsUnknownMood(t *testing.T) {
	kv := &failingKV{}
	_, err := New(kv).Append(context.Background(), mood.Mood("Bored"), "")
	if !errors.Is(err, ErrInvalidMood) {
		t.Fatalf("expected ErrInvalidMood, got %v", err)
	}
	if kv.data != nil {
		t.Fatalf("expected no write for invalid mood")
	}
}

func TestAppendBeforeLoadKeepsHistory(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	if _, err := New(kv).Append(ctx, mood.Happy, "old"); err != nil {
		t.Fatalf("append: %v", err)
	}
	s := New(kv)
	if _, err := s.Append(ctx, mood.Sad, "new"); err != nil {
		t.Fatalf("append: %v", err)
	}
	got, _ := New(kv).Load(ctx)
	if len(got) != 2 || got[0].Journal != "new" || got[1].Journal != "old" {
		t.Fatalf("expected history preserved, got %+v", got)
	}
}

func TestLoadMigratesLegacyRecords(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	legacy := []map[string]string{
		{"id": "a", "mood": "Happy", "journal": "", "date": "2024-06-10T08:00:00.000Z"},
		{"id": "b", "journal": "no mood", "date": "2024-06-09T08:00:00.000Z"},
		{"id": "c", "mood": "Sad", "journal": "", "date": "2024-06-08T08:00:00.000Z", "time": "08:00 AM"},
	}
	data, _ := json.Marshal(legacy)
	_ = kv.Set(Key, data)

	var buf bytes.Buffer
	s := New(kv, WithLogger(quietLogger(&buf)))
	first, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("expected record without mood to be dropped, got %d entries", len(first))
	}
	created, _ := entry.ParseTime("2024-06-10T08:00:00.000Z")
	if first[0].DisplayTime != entry.FormatClock(created) {
		t.Fatalf("expected derived time %q, got %q", entry.FormatClock(created), first[0].DisplayTime)
	}
	if first[1].DisplayTime != "08:00 AM" {
		t.Fatalf("expected stored time kept, got %q", first[1].DisplayTime)
	}

	second, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if second[0].DisplayTime != first[0].DisplayTime {
		t.Fatalf("expected identical derived time on reload")
	}
}
