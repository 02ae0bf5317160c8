// Package chart draws the weekly mood chart as stacked vertical bars.
package chart

import (
	"strconv"
	"strings"

	"tableflip.dev/mindmate/pkg/mood"
	"tableflip.dev/mindmate/pkg/runner/tea/internal/theme"
	"tableflip.dev/mindmate/pkg/trend"
)

// EmptyMessage is shown when no bucket has an entry.
const EmptyMessage = "No moods logged this week."

const (
	column = 3
	gap    = " "
	fill   = "█"
)

// Render draws buckets oldest to newest, at most height rows tall. Each bar
// stacks its moods bottom up in display order.
func Render(buckets []trend.Bucket, th theme.Theme, height int) string {
	if height < 1 {
		height = 1
	}
	top := trend.Max(buckets)
	if top == 0 {
		return th.Faint.Render(EmptyMessage)
	}

	stacks := make([][]mood.Mood, len(buckets))
	for i, b := range buckets {
		stacks[i] = cells(b, top, height)
	}

	var rows []string
	for row := height - 1; row >= 0; row-- {
		var line strings.Builder
		for i, stack := range stacks {
			if i > 0 {
				line.WriteString(gap)
			}
			if row < len(stack) {
				line.WriteString(th.Mood(stack[row]).Bar.Render(strings.Repeat(fill, column)))
				continue
			}
			line.WriteString(strings.Repeat(" ", column))
		}
		rows = append(rows, line.String())
	}

	labels := make([]string, len(buckets))
	totals := make([]string, len(buckets))
	for i, b := range buckets {
		labels[i] = pad(b.Label)
		totals[i] = th.Faint.Render(pad(strconv.Itoa(b.Total())))
	}
	rows = append(rows, strings.Join(labels, gap), strings.Join(totals, gap))
	return strings.Join(rows, "\n")
}

// Legend lists every mood with its swatch and weekly total. Moods absent
// from the week are drawn muted.
func Legend(buckets []trend.Bucket, th theme.Theme) string {
	totals := trend.Totals(buckets)
	parts := make([]string, 0, len(mood.Order()))
	for _, m := range mood.Order() {
		s := th.Mood(m)
		label := string(m) + " " + strconv.Itoa(totals[m])
		if totals[m] == 0 {
			parts = append(parts, s.Muted.Render(fill+" "+label))
			continue
		}
		parts = append(parts, s.Bar.Render(fill)+" "+s.Label.Render(label))
	}
	return strings.Join(parts, "  ")
}

// cells maps a bucket's counts onto at most height cells. Scaling keeps every
// logged mood visible with at least one cell.
func cells(b trend.Bucket, top, height int) []mood.Mood {
	var out []mood.Mood
	for _, m := range mood.Order() {
		n := b.Count(m)
		if n == 0 {
			continue
		}
		if top > height {
			n = n * height / top
			if n == 0 {
				n = 1
			}
		}
		for i := 0; i < n; i++ {
			out = append(out, m)
		}
	}
	if len(out) > height {
		out = out[:height]
	}
	return out
}

func pad(s string) string {
	if len(s) >= column {
		return s[:column]
	}
	return s + strings.Repeat(" ", column-len(s))
}
