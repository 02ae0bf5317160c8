package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/mindmate/pkg/commands/options"
	"tableflip.dev/mindmate/pkg/runner/add"
)

func addLog(topLevel *cobra.Command) {
	mo := &options.MoodOptions{}
	io := &options.InteractiveOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "log [mood] [journal...]",
		Short: "Log how you are feeling.",
		Example: `
mindmate log happy
mindmate log worried exam tomorrow
mindmate log calm --journal "long walk after work"
mindmate log
`,
		Args: func(cmd *cobra.Command, args []string) error {
			return mo.ParseArgs(args)
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return options.MoodCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, _, err := loadService(cmd.Context(), aiNone)
			if err != nil {
				return oo.HandleError(err)
			}
			defer svc.Close()

			a := add.Add{
				Service: svc,
				Mood:    mo.Mood,
				Journal: mo.Journal,
				Prompt:  io.Prompting() && !oo.JSON,
				Output:  oo,
			}
			return oo.HandleError(a.Do(cmd.Context()))
		},
	}

	options.AddJournalArg(cmd, mo)
	options.InteractiveArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
