package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// All is the window label that disables filtering.
const All = "all"

var (
	segmentPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	units          = map[string]time.Duration{
		"m":       time.Minute,
		"min":     time.Minute,
		"mins":    time.Minute,
		"minute":  time.Minute,
		"minutes": time.Minute,
		"h":       time.Hour,
		"hr":      time.Hour,
		"hrs":     time.Hour,
		"hour":    time.Hour,
		"hours":   time.Hour,
		"d":       24 * time.Hour,
		"day":     24 * time.Hour,
		"days":    24 * time.Hour,
		"w":       7 * 24 * time.Hour,
		"wk":      7 * 24 * time.Hour,
		"wks":     7 * 24 * time.Hour,
		"week":    7 * 24 * time.Hour,
		"weeks":   7 * 24 * time.Hour,
	}
)

// Window is a trailing span of time ending now. The zero Window covers
// everything.
type Window struct {
	Span time.Duration
}

// ParseWindow reads strings such as "3d", "1w2d" or "12h". Empty input and
// "all" return the unbounded window.
func ParseWindow(input string) (Window, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" || remaining == All {
		return Window{}, nil
	}

	var total time.Duration
	for len(remaining) > 0 {
		m := segmentPattern.FindStringSubmatch(remaining)
		if len(m) != 3 {
			return Window{}, fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return Window{}, fmt.Errorf("invalid window value %q: %w", m[1], err)
		}
		unit, ok := units[m[2]]
		if !ok {
			return Window{}, fmt.Errorf("unsupported window unit %q", m[2])
		}
		total += time.Duration(n) * unit
		remaining = remaining[len(m[0]):]
	}
	if total <= 0 {
		return Window{}, fmt.Errorf("window must be greater than zero")
	}
	return Window{Span: total}, nil
}

// Bounded reports whether the window filters anything.
func (w Window) Bounded() bool { return w.Span > 0 }

// Contains reports whether t falls within the window ending at now.
func (w Window) Contains(t, now time.Time) bool {
	if !w.Bounded() {
		return true
	}
	return !t.Before(now.Add(-w.Span))
}

// String renders the window with week/day/hour/minute tokens.
func (w Window) String() string {
	if !w.Bounded() {
		return All
	}
	steps := []struct {
		label string
		value time.Duration
	}{
		{"w", 7 * 24 * time.Hour},
		{"d", 24 * time.Hour},
		{"h", time.Hour},
		{"m", time.Minute},
	}

	var sb strings.Builder
	remaining := w.Span
	for _, s := range steps {
		if remaining < s.value {
			continue
		}
		n := remaining / s.value
		remaining -= n * s.value
		fmt.Fprintf(&sb, "%d%s", n, s.label)
	}
	if sb.Len() == 0 {
		return "0m"
	}
	return sb.String()
}
