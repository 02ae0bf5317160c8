// Package entry holds the mood journal record and its persisted form.
package entry

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/mindmate/pkg/mood"
)

// MoodEntry is a single journal check-in. Entries are never mutated after
// creation.
type MoodEntry struct {
	ID          string
	Mood        mood.Mood
	Journal     string
	CreatedAt   time.Time
	DisplayTime string
}

// Record is the persisted shape of a MoodEntry.
type Record struct {
	ID      string `json:"id"`
	Mood    string `json:"mood"`
	Journal string `json:"journal"`
	Date    string `json:"date"`
	Time    string `json:"time,omitempty"`
}

var (
	// ErrMissingMood is returned for stored records without a mood.
	ErrMissingMood = errors.New("entry: record has no mood")
	// ErrMissingDate is returned for stored records without a date.
	ErrMissingDate = errors.New("entry: record has no date")
)

// New builds an entry created at now.
func New(m mood.Mood, journal string, now time.Time) MoodEntry {
	return MoodEntry{
		ID:          NewID(now),
		Mood:        m,
		Journal:     journal,
		CreatedAt:   now,
		DisplayTime: FormatClock(now),
	}
}

// NewID returns a collision-resistant id made of the creation instant and a
// random suffix.
func NewID(now time.Time) string {
	return FormatTime(now) + "-" + uuid.NewString()
}

// Record converts e to its persisted form.
func (e MoodEntry) Record() Record {
	return Record{
		ID:      e.ID,
		Mood:    string(e.Mood),
		Journal: e.Journal,
		Date:    FormatTime(e.CreatedAt),
		Time:    e.DisplayTime,
	}
}

// FromRecord validates a persisted record and fills in fields older records
// lack. A missing time is derived from the date on every call, so reading the
// same legacy record twice yields the same value.
func FromRecord(r Record) (MoodEntry, error) {
	if strings.TrimSpace(r.Mood) == "" {
		return MoodEntry{}, ErrMissingMood
	}
	m, err := mood.Parse(r.Mood)
	if err != nil {
		return MoodEntry{}, err
	}
	if strings.TrimSpace(r.Date) == "" {
		return MoodEntry{}, ErrMissingDate
	}
	created, err := ParseTime(r.Date)
	if err != nil {
		return MoodEntry{}, fmt.Errorf("entry: parse date %q: %w", r.Date, err)
	}
	display := r.Time
	if display == "" {
		display = FormatClock(created)
	}
	id := r.ID
	if id == "" {
		id = FormatTime(created)
	}
	return MoodEntry{
		ID:          id,
		Mood:        m,
		Journal:     r.Journal,
		CreatedAt:   created,
		DisplayTime: display,
	}, nil
}

// Latest returns the newest entry of a newest-first list.
func Latest(entries []MoodEntry) (MoodEntry, bool) {
	if len(entries) == 0 {
		return MoodEntry{}, false
	}
	return entries[0], true
}

func (e MoodEntry) String() string {
	return fmt.Sprintf("%s %s  %s", e.Mood.Glyph().Symbol, e.Mood, e.JournalOrPlaceholder())
}
