package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/mindmate/pkg/commands/options"
	"tableflip.dev/mindmate/pkg/mood"
	"tableflip.dev/mindmate/pkg/printers"
)

func addMoods(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "moods",
		Short: "List the moods you can log and their aliases.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if oo.JSON {
				return oo.HandleError(oo.Print(mood.DefaultGlyphs()))
			}
			pp := printers.PrettyPrint{}
			pp.Moods()
			return nil
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
