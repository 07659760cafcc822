package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "whittle",
		Short: base.Wrap80("Whittle a pile of wants and needs down to a daily focus list."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addKey(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addEdit(topLevel)
	addComplete(topLevel)
	addRemove(topLevel)
	addPick(topLevel)
	addDay(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
