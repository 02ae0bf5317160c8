package commands

import (
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/mindmate/pkg/commands/options"
	"tableflip.dev/mindmate/pkg/runner/chat"
)

func addChat(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk about how you feel with the AI companion.",
		Long: `Start a conversation. Each line is one message; /quit or end of input
ends the session. The conversation is not saved.`,
		Example: `
mindmate chat
echo "I had a rough day" | mindmate chat
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, _, err := loadService(cmd.Context(), aiRequired)
			if err != nil {
				return err
			}
			defer svc.Close()

			c := chat.Chat{
				Service:     svc,
				In:          os.Stdin,
				Out:         cmd.OutOrStdout(),
				Interactive: options.Terminal(),
			}
			return c.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
