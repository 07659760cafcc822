package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/whittle/pkg/app"
	"tableflip.dev/whittle/pkg/commands/options"
	"tableflip.dev/whittle/pkg/runner/get"
	"tableflip.dev/whittle/pkg/store"
)

var getFilters = map[string]get.Filter{
	"all":        get.All,
	"wants":      get.Wants,
	"want":       get.Wants,
	"needs":      get.Needs,
	"need":       get.Needs,
	"both":       get.Boths,
	"today":      get.Todays,
	"later":      get.Laters,
	"done":       get.Done,
	"completed":  get.Done,
	"focus":      get.Focus,
	"candidates": get.Candidates,
}

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	filter := get.All

	long := strings.Builder{}
	long.WriteString("Get all or a filtered set of tasks.\n\n")
	long.WriteString("Filters: all, wants, needs, both, today, later, done, focus, candidates\n")

	validArgs := make([]string, 0, len(getFilters))
	for name := range getFilters {
		validArgs = append(validArgs, name)
	}

	cmd := &cobra.Command{
		Use:   "get [filter]",
		Short: "get tasks",
		Long:  long.String(),
		Example: `
whittle get
whittle get needs
whittle get focus
whittle get candidates
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				filter = get.All
				return nil
			}
			f, ok := getFilters[strings.ToLower(args[0])]
			if !ok {
				return fmt.Errorf("unknown filter %q", args[0])
			}
			filter = f
			return nil
		},
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:  io.ShowID,
				Filter:  filter,
				Service: app.NewService(p),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
