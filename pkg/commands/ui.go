package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/whittle/pkg/app"
	"tableflip.dev/whittle/pkg/daily"
	"tableflip.dev/whittle/pkg/runner/ui"
	"tableflip.dev/whittle/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
whittle ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			i := ui.UI{
				Service:     app.NewService(p),
				Engine:      &daily.Engine{Persistence: p},
				Persistence: p,
			}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
