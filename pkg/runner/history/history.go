package history

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/mindmate/pkg/app"
	"tableflip.dev/mindmate/pkg/commands/options"
	"tableflip.dev/mindmate/pkg/entry"
	"tableflip.dev/mindmate/pkg/journal"
	"tableflip.dev/mindmate/pkg/printers"
	"tableflip.dev/mindmate/pkg/timeutil"
)

type History struct {
	Service *app.Service
	Window  timeutil.Window
	Output  *options.OutputOptions
}

// Filter keeps the entries inside w, preserving order.
func Filter(entries []entry.MoodEntry, w timeutil.Window, now time.Time) []entry.MoodEntry {
	out := make([]entry.MoodEntry, 0, len(entries))
	for _, e := range entries {
		if w.Contains(e.CreatedAt, now) {
			out = append(out, e)
		}
	}
	return out
}

func (h *History) Do(ctx context.Context) error {
	all, err := h.Service.Entries(ctx)
	if err != nil && !errors.Is(err, journal.ErrLoad) {
		return err
	}
	entries := Filter(all, h.Window, h.Service.Now())

	if h.Output != nil && h.Output.JSON {
		records := make([]entry.Record, len(entries))
		for i, e := range entries {
			records[i] = e.Record()
		}
		return h.Output.Print(records)
	}

	pp := printers.PrettyPrint{}
	if err != nil {
		pp.Warn("Could not read the journal; showing nothing.")
	}
	title := "Journal"
	if h.Window.Bounded() {
		title = "Journal, last " + h.Window.String()
	}
	pp.TitleWithCount(title, len(entries))
	pp.History(entries...)
	return nil
}
