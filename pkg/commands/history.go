package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/mindmate/pkg/commands/options"
	"tableflip.dev/mindmate/pkg/runner/history"
)

func addHistory(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"journal"},
		Short:   "List journal entries, newest first.",
		Example: `
mindmate history
mindmate history --last 3d
mindmate history --last 2w --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			w, err := wo.Window()
			if err != nil {
				return oo.HandleError(err)
			}
			svc, _, err := loadService(cmd.Context(), aiNone)
			if err != nil {
				return oo.HandleError(err)
			}
			defer svc.Close()

			h := history.History{
				Service: svc,
				Window:  w,
				Output:  oo,
			}
			return oo.HandleError(h.Do(cmd.Context()))
		},
	}

	options.AddWindowArgs(cmd, wo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
