package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/whittle/pkg/app"
	"tableflip.dev/whittle/pkg/commands/options"
	"tableflip.dev/whittle/pkg/runner/add"
	"tableflip.dev/whittle/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	to := &options.TaskOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		Example: `
whittle add pay the water bill --kind need --timing today
whittle add read that novel -k want -t later
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task name")
			}
			to.Name = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			kind, err := to.GetKind()
			if err != nil {
				return err
			}
			timing, err := to.GetTiming()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := add.Add{
				Name:    to.Name,
				Kind:    kind,
				Timing:  timing,
				Service: app.NewService(p),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddTaskArgs(cmd, to)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
