package add

import (
	"context"
	"errors"

	"tableflip.dev/mindmate/pkg/app"
	"tableflip.dev/mindmate/pkg/commands/options"
	"tableflip.dev/mindmate/pkg/journal"
	"tableflip.dev/mindmate/pkg/mood"
	"tableflip.dev/mindmate/pkg/printers"
	"tableflip.dev/mindmate/pkg/prompt"
)

// ErrNoMood is returned when no mood was given and prompting is not possible.
var ErrNoMood = errors.New("add: a mood is required, one of happy, calm, okay, sad, anxious")

type Add struct {
	Service *app.Service
	Mood    mood.Mood
	Journal string

	// Prompt enables the interactive picker for a missing mood.
	Prompt bool
	IO     prompt.IO
	Output *options.OutputOptions
}

func (n *Add) Do(ctx context.Context) error {
	if n.Mood == "" {
		if !n.Prompt {
			return ErrNoMood
		}
		m, err := n.IO.Mood()
		if err != nil {
			return err
		}
		n.Mood = m
		if n.Journal == "" {
			if n.Journal, err = n.IO.Journal(); err != nil {
				return err
			}
		}
	}

	e, err := n.Service.Log(ctx, n.Mood, n.Journal)
	if err != nil && !errors.Is(err, journal.ErrPersist) {
		return err
	}

	if n.Output != nil && n.Output.JSON {
		return n.Output.Print(e.Record())
	}
	pp := printers.PrettyPrint{}
	if err != nil {
		pp.Warn("Saved for this session only; the journal could not be written.")
	}
	pp.Entry(e)
	return nil
}
