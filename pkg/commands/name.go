package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/mindmate/pkg/commands/options"
	"tableflip.dev/mindmate/pkg/runner/profile"
)

func addName(topLevel *cobra.Command) {
	io := &options.InteractiveOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "name [name]",
		Short: "Show or set the name MindMate greets you with.",
		Example: `
mindmate name
mindmate name Alex
mindmate name -i
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, _, err := loadService(cmd.Context(), aiNone)
			if err != nil {
				return oo.HandleError(err)
			}
			defer svc.Close()

			n := profile.Name{
				Service: svc,
				Name:    strings.Join(args, " "),
				Prompt:  io.Interactive,
				Output:  oo,
			}
			return oo.HandleError(n.Do(cmd.Context()))
		},
	}

	options.InteractiveArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addHello(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "hello",
		Short: "Say hello; asks for your name the first time.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, _, err := loadService(cmd.Context(), aiNone)
			if err != nil {
				return err
			}
			defer svc.Close()

			h := profile.Hello{
				Service: svc,
				Prompt:  options.Terminal(),
			}
			return h.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
