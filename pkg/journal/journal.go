// Package journal owns the durable, newest-first list of mood entries.
package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"tableflip.dev/mindmate/pkg/entry"
	"tableflip.dev/mindmate/pkg/mood"
	"tableflip.dev/mindmate/pkg/store"
)

// Key is where the entry list lives in the key-value store.
const Key = "mindmate_mood_data"

var (
	// ErrLoad marks a read that fell back to an empty journal.
	ErrLoad = errors.New("journal: load failed")
	// ErrPersist marks an append that only reached memory.
	ErrPersist = errors.New("journal: persist failed")
	// ErrInvalidMood is returned by Append for moods outside the closed set.
	ErrInvalidMood = errors.New("journal: invalid mood")
)

// Store is the single writer of the entry list. Storage failures degrade it
// to memory only; they are logged and returned but never fatal.
type Store struct {
	kv     store.KV
	now    func() time.Time
	logger *log.Logger

	mu      sync.Mutex
	entries []entry.MoodEntry
	loaded  bool
}

// Option customises a Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger replaces the stderr logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New returns a Store over kv. A nil kv keeps everything in memory.
func New(kv store.KV, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		now:    time.Now,
		logger: log.New(os.Stderr, "", 0),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load reads every persisted entry, newest first. An empty store yields an
// empty list. Unreadable data yields an empty list and an ErrLoad the caller
// may show as a soft warning; the in-memory journal is left unchanged.
func (s *Store) Load(ctx context.Context) ([]entry.MoodEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		// The in-memory list stays as it was so the next write does not
		// replace the stored history with a partial one.
		return []entry.MoodEntry{}, err
	}
	s.adopt(entries)
	return s.snapshot(), nil
}

// adopt replaces the in-memory list with stored. Entries appended while
// storage was unreadable are newer than anything stored and stay in front.
func (s *Store) adopt(stored []entry.MoodEntry) {
	if s.loaded {
		s.entries = stored
	} else {
		s.entries = append(s.entries, stored...)
	}
	s.loaded = true
}

func (s *Store) read() ([]entry.MoodEntry, error) {
	if s.kv == nil {
		return nil, nil
	}
	data, ok, err := s.kv.Get(Key)
	if err != nil {
		s.logger.Printf("journal: failed to load mood data: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	if !ok || len(data) == 0 {
		return nil, nil
	}

	var records []entry.Record
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Printf("journal: failed to parse mood data: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	entries := make([]entry.MoodEntry, 0, len(records))
	for i, r := range records {
		e, err := entry.FromRecord(r)
		if err != nil {
			s.logger.Printf("journal: skipping record %d (%s): %v", i, r.ID, err)
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Append records a new entry at the head of the journal and rewrites the
// whole collection. If the write fails the entry is still returned and kept
// in memory; the error wraps ErrPersist.
func (s *Store) Append(ctx context.Context, m mood.Mood, journal string) (entry.MoodEntry, error) {
	if !m.Valid() {
		return entry.MoodEntry{}, fmt.Errorf("%w: %q", ErrInvalidMood, m)
	}
	if err := ctx.Err(); err != nil {
		return entry.MoodEntry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var readErr error
	if !s.loaded {
		// Rewriting without the persisted history would drop it.
		var stored []entry.MoodEntry
		if stored, readErr = s.read(); readErr == nil {
			s.adopt(stored)
		}
	}

	e := entry.New(m, journal, s.now())
	updated := make([]entry.MoodEntry, 0, len(s.entries)+1)
	updated = append(updated, e)
	updated = append(updated, s.entries...)
	s.entries = updated

	if readErr != nil {
		return e, fmt.Errorf("%w: %v", ErrPersist, readErr)
	}
	if err := s.persist(); err != nil {
		s.logger.Printf("journal: failed to save mood data: %v", err)
		return e, fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return e, nil
}

func (s *Store) persist() error {
	if s.kv == nil {
		return nil
	}
	records := make([]entry.Record, len(s.entries))
	for i, e := range s.entries {
		records[i] = e.Record()
	}
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.kv.Set(Key, data)
}

// Entries returns a copy of the in-memory list, newest first.
func (s *Store) Entries() []entry.MoodEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Latest returns the newest entry, if any.
func (s *Store) Latest() (entry.MoodEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return entry.Latest(s.entries)
}

// Loaded reports whether storage has been read successfully.
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

func (s *Store) snapshot() []entry.MoodEntry {
	out := make([]entry.MoodEntry, len(s.entries))
	copy(out, s.entries)
	return out
}
