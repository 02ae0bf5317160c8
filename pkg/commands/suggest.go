package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/mindmate/pkg/commands/options"
	"tableflip.dev/mindmate/pkg/runner/suggest"
)

func addSuggest(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Get self-care ideas based on your latest entry.",
		Example: `
GEMINI_API_KEY=... mindmate suggest
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, _, err := loadService(cmd.Context(), aiRequired)
			if err != nil {
				return oo.HandleError(err)
			}
			defer svc.Close()

			s := suggest.Suggest{Service: svc, Output: oo}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
