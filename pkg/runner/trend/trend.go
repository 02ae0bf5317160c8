package trend

import (
	"context"
	"errors"

	"tableflip.dev/mindmate/pkg/app"
	"tableflip.dev/mindmate/pkg/commands/options"
	"tableflip.dev/mindmate/pkg/entry"
	"tableflip.dev/mindmate/pkg/journal"
	"tableflip.dev/mindmate/pkg/printers"
	"tableflip.dev/mindmate/pkg/trend"
)

type Trend struct {
	Service *app.Service
	Output  *options.OutputOptions
}

// Day is the JSON form of a bucket.
type Day struct {
	Date   string         `json:"date"`
	Label  string         `json:"label"`
	Counts map[string]int `json:"counts"`
}

// Days converts buckets for JSON output.
func Days(buckets []trend.Bucket) []Day {
	out := make([]Day, len(buckets))
	for i, b := range buckets {
		counts := make(map[string]int, len(b.Counts))
		for m, c := range b.Counts {
			counts[string(m)] = c
		}
		out[i] = Day{Date: entry.DayKey(b.Day), Label: b.Label, Counts: counts}
	}
	return out
}

func (t *Trend) Do(ctx context.Context) error {
	buckets, err := t.Service.Week(ctx)
	if err != nil && !errors.Is(err, journal.ErrLoad) {
		return err
	}
	if t.Output != nil && t.Output.JSON {
		return t.Output.Print(Days(buckets))
	}
	pp := printers.PrettyPrint{}
	pp.Title("Mood trend, last 7 days")
	pp.Week(buckets)
	return nil
}
