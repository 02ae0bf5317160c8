package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/mindmate/pkg/commands/options"
	"tableflip.dev/mindmate/pkg/runner/trend"
)

func addTrend(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Chart your moods over the last seven days.",
		Example: `
mindmate trend
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, _, err := loadService(cmd.Context(), aiNone)
			if err != nil {
				return oo.HandleError(err)
			}
			defer svc.Close()

			t := trend.Trend{Service: svc, Output: oo}
			return oo.HandleError(t.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
