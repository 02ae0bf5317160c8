package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "mindmate",
		Short: base.Wrap80("Track your mood, keep a journal, and talk it through."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addLog(topLevel)
	addHistory(topLevel)
	addTrend(topLevel)
	addMoods(topLevel)
	addSuggest(topLevel)
	addChat(topLevel)
	addName(topLevel)
	addHello(topLevel)
	addUI(topLevel)
	addServe(topLevel)
	addMCP(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addUpgrade(topLevel)
	addCompletions(topLevel)
}
