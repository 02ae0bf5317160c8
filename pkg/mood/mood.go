// Package mood defines the closed set of moods a journal entry can carry.
package mood

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Mood is an emotional state tag attached to a journal entry.
type Mood string

const (
	Happy   Mood = "Happy"
	Calm    Mood = "Calm"
	Okay    Mood = "Okay"
	Sad     Mood = "Sad"
	Anxious Mood = "Anxious"
)

// Glyph carries the presentation details for a mood.
type Glyph struct {
	Mood    Mood
	Key     string
	Symbol  string
	Aliases []string
	Color   string
}

// DefaultGlyphs returns the moods in display order. Charts stack bars in this
// order and legends list it.
func DefaultGlyphs() []Glyph {
	return []Glyph{{
		Mood:    Happy,
		Key:     "h",
		Symbol:  "☺",
		Aliases: []string{"happy", "glad", "joy"},
		Color:   "#f2c14e",
	}, {
		Mood:    Calm,
		Key:     "c",
		Symbol:  "◡",
		Aliases: []string{"calm", "relaxed", "peaceful"},
		Color:   "#5fad56",
	}, {
		Mood:    Okay,
		Key:     "o",
		Symbol:  "–",
		Aliases: []string{"okay", "ok", "meh", "fine"},
		Color:   "#78c0e0",
	}, {
		Mood:    Sad,
		Key:     "s",
		Symbol:  "☹",
		Aliases: []string{"sad", "down", "low"},
		Color:   "#4d5382",
	}, {
		Mood:    Anxious,
		Key:     "a",
		Symbol:  "♥",
		Aliases: []string{"anxious", "worried", "stressed"},
		Color:   "#e4572e",
	}}
}

// Order is the fixed display order.
func Order() []Mood {
	glyphs := DefaultGlyphs()
	out := make([]Mood, 0, len(glyphs))
	for _, g := range glyphs {
		out = append(out, g.Mood)
	}
	return out
}

// Names returns the canonical mood names in display order.
func Names() []string {
	order := Order()
	out := make([]string, len(order))
	for i, m := range order {
		out[i] = string(m)
	}
	return out
}

// Valid reports whether m is one of the known moods.
func (m Mood) Valid() bool {
	for _, known := range Order() {
		if m == known {
			return true
		}
	}
	return false
}

// Glyph returns the presentation details for m. Unknown moods get a "?" symbol.
func (m Mood) Glyph() Glyph {
	for _, g := range DefaultGlyphs() {
		if g.Mood == m {
			return g
		}
	}
	return Glyph{Mood: m, Symbol: "?"}
}

// Index is the position of m in the display order, or -1.
func (m Mood) Index() int {
	for i, known := range Order() {
		if m == known {
			return i
		}
	}
	return -1
}

func (m Mood) String() string {
	return string(m)
}

// Parse resolves a mood name, alias or key, ignoring case.
func Parse(s string) (Mood, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return "", fmt.Errorf("mood: empty value, expected one of %s", strings.Join(Names(), ", "))
	}
	for _, g := range DefaultGlyphs() {
		if strings.ToLower(string(g.Mood)) == v || g.Key == v {
			return g.Mood, nil
		}
		for _, alias := range g.Aliases {
			if alias == v {
				return g.Mood, nil
			}
		}
	}
	return "", fmt.Errorf("mood: unknown mood %q, expected one of %s", s, strings.Join(Names(), ", "))
}

// UnmarshalJSON only accepts members of the closed set.
func (m *Mood) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
