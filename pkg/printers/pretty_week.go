package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/mindmate/pkg/mood"
	"tableflip.dev/mindmate/pkg/trend"
)

const barCell = "█"

var moodColors = map[mood.Mood]color.Attribute{
	mood.Happy:   color.FgYellow,
	mood.Calm:    color.FgGreen,
	mood.Okay:    color.FgCyan,
	mood.Sad:     color.FgBlue,
	mood.Anxious: color.FgRed,
}

// Paint colours s with the mood's terminal colour.
func Paint(m mood.Mood, s string) string {
	attr, ok := moodColors[m]
	if !ok {
		return s
	}
	return color.New(attr).Sprint(s)
}

// Week prints one stacked bar per day, oldest first, followed by a legend.
func (pp *PrettyPrint) Week(buckets []trend.Bucket) {
	faint := color.New(color.Faint)
	order := mood.Order()

	for _, b := range buckets {
		var bar strings.Builder
		for i, n := range b.Stack() {
			if n > 0 {
				bar.WriteString(Paint(order[i], strings.Repeat(barCell, n)))
			}
		}
		total := ""
		if t := b.Total(); t > 0 {
			total = faint.Sprintf(" %d", t)
		}
		_, _ = fmt.Fprintf(pp.out(), "%s %s%s\n", faint.Sprintf("%-3s", b.Label), bar.String(), total)
	}
	pp.NewLine()
	pp.Legend(trend.Totals(buckets))
}

// Legend prints per-mood totals in display order.
func (pp *PrettyPrint) Legend(totals map[mood.Mood]int) {
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, g := range mood.DefaultGlyphs() {
		tbl.AddRow(Paint(g.Mood, barCell), string(g.Mood), totals[g.Mood])
	}
	tbl.RightAlign(2)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}
