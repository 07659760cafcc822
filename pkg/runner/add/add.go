// Package add provides the runner logic for creating tasks.
package add

import (
	"context"

	"tableflip.dev/whittle/pkg/app"
	"tableflip.dev/whittle/pkg/glyph"
	"tableflip.dev/whittle/pkg/printers"
)

// Add creates a task from the parsed command line.
type Add struct {
	Name   string
	Kind   glyph.Kind
	Timing glyph.Timing

	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if _, err := n.Service.Add(ctx, n.Name, n.Kind, n.Timing); err != nil {
		return err
	}

	all := n.Service.Tasks(ctx)
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.TitleWithCount("tasks", len(all))
	pp.Tasks(all...)
	return nil
}
