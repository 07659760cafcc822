// Package complete provides the runner logic for toggling task completion.
package complete

import (
	"context"
	"errors"

	"tableflip.dev/whittle/pkg/app"
	"tableflip.dev/whittle/pkg/printers"
)

// Complete toggles the completed flag on a task.
type Complete struct {
	ID string

	Service *app.Service
}

// Do executes the toggle for the configured task ID.
func (n *Complete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no service")
	}

	if _, err := n.Service.ToggleCompleted(ctx, n.ID); err != nil {
		return err
	}

	all := n.Service.Tasks(ctx)
	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.TitleWithCount("tasks", len(all))
	pp.Tasks(all...)
	return nil
}
