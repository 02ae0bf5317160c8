package suggest

import (
	"context"

	"tableflip.dev/mindmate/pkg/app"
	"tableflip.dev/mindmate/pkg/commands/options"
	"tableflip.dev/mindmate/pkg/printers"
)

type Suggest struct {
	Service *app.Service
	Output  *options.OutputOptions
}

func (s *Suggest) Do(ctx context.Context) error {
	last := s.Service.LastMood(ctx)
	res, err := s.Service.Suggest(ctx)
	if err != nil {
		return err
	}

	if s.Output != nil && s.Output.JSON {
		return s.Output.Print(map[string]interface{}{
			"lastMood":    last,
			"suggestions": res.Suggestions,
			"message":     res.Message,
		})
	}

	pp := printers.PrettyPrint{}
	pp.Faint("Based on your last entry, you were feeling... " + last)
	pp.NewLine()
	pp.Suggestions(res)
	return nil
}
