package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/whittle/pkg/app"
	"tableflip.dev/whittle/pkg/commands/options"
	"tableflip.dev/whittle/pkg/runner/pick"
	"tableflip.dev/whittle/pkg/store"
)

func addPick(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	drop := false

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Put a task on (or take it off) today's focus list",
		Example: `
whittle pick <task id>
whittle pick <task id> --drop
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task id")
			}
			io.ID = args[0]

			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := pick.Pick{
				ID:      io.ID,
				Drop:    drop,
				Service: app.NewService(p),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&drop, "drop", false, "Take the task off today's list instead.")

	topLevel.AddCommand(cmd)
}
