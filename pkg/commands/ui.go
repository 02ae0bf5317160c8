package commands

import (
	"github.com/spf13/cobra"

	teaui "tableflip.dev/mindmate/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the mood dashboard",
		Example: `
mindmate ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, _, err := loadService(cmd.Context(), aiOptional)
			if err != nil {
				return err
			}
			defer svc.Close()
			return teaui.Run(cmd.Context(), svc)
		},
	}

	topLevel.AddCommand(cmd)
}
