// Package trend buckets mood entries into the trailing seven calendar days.
package trend

import (
	"time"

	"tableflip.dev/mindmate/pkg/entry"
	"tableflip.dev/mindmate/pkg/mood"
)

// Days is the width of the window, today included.
const Days = 7

const labelLayout = "Mon"

// Bucket holds per-mood counts for one local calendar day.
type Bucket struct {
	Day    time.Time
	Label  string
	Counts map[mood.Mood]int
}

// Count returns the number of entries for m, zero when none were logged.
func (b Bucket) Count(m mood.Mood) int {
	return b.Counts[m]
}

// Total is the number of entries in the bucket.
func (b Bucket) Total() int {
	n := 0
	for _, c := range b.Counts {
		n += c
	}
	return n
}

// Stack returns the counts in display order, one slot per mood.
func (b Bucket) Stack() []int {
	order := mood.Order()
	out := make([]int, len(order))
	for i, m := range order {
		out[i] = b.Counts[m]
	}
	return out
}

// Week returns exactly Days buckets, oldest first, covering now-6d through
// now in local time. Entries outside the window are ignored.
func Week(entries []entry.MoodEntry, now time.Time) []Bucket {
	now = now.Local()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)

	buckets := make([]Bucket, Days)
	index := make(map[string]int, Days)
	for i := 0; i < Days; i++ {
		day := today.AddDate(0, 0, i-(Days-1))
		buckets[i] = Bucket{
			Day:    day,
			Label:  day.Format(labelLayout),
			Counts: map[mood.Mood]int{},
		}
		index[entry.DayKey(day)] = i
	}

	for _, e := range entries {
		i, ok := index[entry.DayKey(e.CreatedAt)]
		if !ok {
			continue
		}
		buckets[i].Counts[e.Mood]++
	}
	return buckets
}

// Totals sums each mood across buckets.
func Totals(buckets []Bucket) map[mood.Mood]int {
	out := map[mood.Mood]int{}
	for _, b := range buckets {
		for m, c := range b.Counts {
			out[m] += c
		}
	}
	return out
}

// Max is the largest bucket total, used to scale charts.
func Max(buckets []Bucket) int {
	top := 0
	for _, b := range buckets {
		if t := b.Total(); t > top {
			top = t
		}
	}
	return top
}
