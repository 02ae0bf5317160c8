package entry

import (
	"time"
)

const (
	layoutISO   = "2006-01-02T15:04:05.000Z07:00"
	layoutDay   = "2006-01-02"
	layoutClock = "03:04 PM"
	layoutLong  = "January 2, 2006"
)

// ParseTime accepts RFC 3339 timestamps with or without fractional seconds.
func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// FormatTime renders an ISO-8601 UTC timestamp with millisecond precision.
func FormatTime(v time.Time) string {
	return v.UTC().Format(layoutISO)
}

// FormatClock renders the local 12-hour clock, e.g. "09:05 PM".
func FormatClock(v time.Time) string {
	return v.Local().Format(layoutClock)
}

// FormatLongDate renders the local calendar date, e.g. "June 10, 2024".
func FormatLongDate(v time.Time) string {
	return v.Local().Format(layoutLong)
}

// DayKey identifies the local calendar day of v.
func DayKey(v time.Time) string {
	return v.Local().Format(layoutDay)
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	return DayKey(a) == DayKey(b)
}
