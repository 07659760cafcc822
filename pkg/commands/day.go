package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/whittle/pkg/app"
	"tableflip.dev/whittle/pkg/daily"
	"tableflip.dev/whittle/pkg/runner/day"
	"tableflip.dev/whittle/pkg/store"
)

func addDay(topLevel *cobra.Command) {
	force := false

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Start the day: review tasks and whittle down today's focus list",
		Example: `
whittle day
whittle day --force
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := day.Day{
				Force:   force,
				Service: app.NewService(p),
				Engine:  &daily.Engine{Persistence: p},
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Run the check-in even if today was already acknowledged.")

	topLevel.AddCommand(cmd)
}
