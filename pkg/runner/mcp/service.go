// Package mcp provides the Model Context Protocol server integration for mindmate.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/mindmate/pkg/app"
	"tableflip.dev/mindmate/pkg/entry"
	"tableflip.dev/mindmate/pkg/journal"
	"tableflip.dev/mindmate/pkg/mood"
	"tableflip.dev/mindmate/pkg/runner/history"
	"tableflip.dev/mindmate/pkg/timeutil"
	"tableflip.dev/mindmate/pkg/trend"
)

// Service adapts app.Service to transport-friendly shapes for MCP clients.
type Service struct {
	App *app.Service
}

// ErrEntryNotFound is returned when an entry id is not in the journal.
var ErrEntryNotFound = errors.New("entry not found")

// EntryDTO is a transport-friendly projection of an entry.
type EntryDTO struct {
	ID          string `json:"id"`
	Mood        string `json:"mood"`
	MoodSymbol  string `json:"moodSymbol"`
	Journal     string `json:"journal"`
	CreatedISO  string `json:"date"`
	CreatedUnix int64  `json:"createdUnix"`
	DisplayTime string `json:"time"`
	Day         string `json:"day"`
	Persisted   bool   `json:"persisted"`
}

// DayDTO is one trend bucket.
type DayDTO struct {
	Date   string         `json:"date"`
	Label  string         `json:"label"`
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

// WeekDTO is the seven-day trend plus per-mood totals.
type WeekDTO struct {
	Days   []DayDTO       `json:"days"`
	Totals map[string]int `json:"totals"`
}

// SuggestionsDTO mirrors the suggestions screen.
type SuggestionsDTO struct {
	LastMood    string          `json:"lastMood"`
	Suggestions []SuggestionDTO `json:"suggestions"`
	Message     string          `json:"message,omitempty"`
}

// SuggestionDTO is one card.
type SuggestionDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// NewService builds a service wrapper over the application service.
func NewService(a *app.Service) *Service {
	return &Service{App: a}
}

// LogMood records a new entry. A failed write still returns the entry, marked
// as not persisted.
func (s *Service) LogMood(ctx context.Context, moodName, note string) (*EntryDTO, error) {
	if s.App == nil {
		return nil, app.ErrNoPersistence
	}
	m, err := mood.Parse(moodName)
	if err != nil {
		return nil, err
	}
	e, err := s.App.Log(ctx, m, strings.TrimSpace(note))
	if err != nil && !errors.Is(err, journal.ErrPersist) {
		return nil, err
	}
	dto := toDTO(e)
	dto.Persisted = err == nil
	return &dto, nil
}

// ListEntries returns the journal newest first, limited to window and limit
// when they are set.
func (s *Service) ListEntries(ctx context.Context, window string, limit int) ([]EntryDTO, error) {
	if s.App == nil {
		return nil, app.ErrNoPersistence
	}
	w, err := timeutil.ParseWindow(window)
	if err != nil {
		return nil, err
	}
	all, err := s.App.Entries(ctx)
	if err != nil && !errors.Is(err, journal.ErrLoad) {
		return nil, err
	}
	entries := history.Filter(all, w, s.App.Now())
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return toDTOs(entries), nil
}

// EntryByID locates an entry.
func (s *Service) EntryByID(ctx context.Context, id string) (*EntryDTO, error) {
	if id == "" {
		return nil, errors.New("id is required")
	}
	entries, err := s.ListEntries(ctx, "", 0)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
}

// WeeklyTrend buckets the journal into the last seven days.
func (s *Service) WeeklyTrend(ctx context.Context) (*WeekDTO, error) {
	if s.App == nil {
		return nil, app.ErrNoPersistence
	}
	buckets, err := s.App.Week(ctx)
	if err != nil && !errors.Is(err, journal.ErrLoad) {
		return nil, err
	}
	out := &WeekDTO{Days: make([]DayDTO, len(buckets)), Totals: map[string]int{}}
	for i, b := range buckets {
		counts := make(map[string]int, len(b.Counts))
		for m, c := range b.Counts {
			counts[string(m)] = c
		}
		out.Days[i] = DayDTO{Date: entry.DayKey(b.Day), Label: b.Label, Counts: counts, Total: b.Total()}
	}
	for m, c := range trend.Totals(buckets) {
		out.Totals[string(m)] = c
	}
	return out, nil
}

// Suggestions asks the companion for self-care ideas for the newest entry.
func (s *Service) Suggestions(ctx context.Context) (*SuggestionsDTO, error) {
	if s.App == nil {
		return nil, app.ErrNoPersistence
	}
	last := s.App.LastMood(ctx)
	res, err := s.App.Suggest(ctx)
	if err != nil {
		return nil, err
	}
	out := &SuggestionsDTO{LastMood: last, Message: res.Message, Suggestions: []SuggestionDTO{}}
	for i, sg := range res.Suggestions {
		out.Suggestions = append(out.Suggestions, SuggestionDTO{
			Title:       sg.Title,
			Description: sg.Description,
			Icon:        iconFor(i),
		})
	}
	return out, nil
}

func toDTOs(entries []entry.MoodEntry) []EntryDTO {
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toDTO(e))
	}
	return out
}

func toDTO(e entry.MoodEntry) EntryDTO {
	return EntryDTO{
		ID:          e.ID,
		Mood:        string(e.Mood),
		MoodSymbol:  e.Mood.Glyph().Symbol,
		Journal:     e.Journal,
		CreatedISO:  entry.FormatTime(e.CreatedAt),
		CreatedUnix: e.CreatedAt.Unix(),
		DisplayTime: e.DisplayTime,
		Day:         entry.DayKey(e.CreatedAt),
		Persisted:   true,
	}
}
