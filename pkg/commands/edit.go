package commands

import (
	"context"
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/whittle/pkg/app"
	"tableflip.dev/whittle/pkg/commands/options"
	"tableflip.dev/whittle/pkg/runner/edit"
	"tableflip.dev/whittle/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	to := &options.TaskOptions{}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a task's name, kind, or timing",
		Example: `
whittle edit <task id> --name "pay the gas bill"
whittle edit <task id> --kind both --timing today
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task id")
			}
			io.ID = args[0]

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			fields := app.Fields{}
			if cmd.Flags().Changed("name") {
				fields.Name = &to.Name
			}
			if cmd.Flags().Changed("kind") {
				kind, err := to.GetKind()
				if err != nil {
					return err
				}
				fields.Kind = &kind
			}
			if cmd.Flags().Changed("timing") {
				timing, err := to.GetTiming()
				if err != nil {
					return err
				}
				fields.Timing = &timing
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := edit.Edit{
				ID:      io.ID,
				Fields:  fields,
				Service: app.NewService(p),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&to.Name, "name", "", "New task name.")
	options.AddTaskArgs(cmd, to)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
