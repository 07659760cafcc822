// Package remove provides the runner logic for deleting tasks.
package remove

import (
	"context"
	"errors"

	"tableflip.dev/whittle/pkg/app"
	"tableflip.dev/whittle/pkg/printers"
)

// Remove hard-deletes a task. There is no tombstone and no undo.
type Remove struct {
	ID string

	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}

	if err := n.Service.Remove(ctx, n.ID); err != nil {
		return err
	}

	all := n.Service.Tasks(ctx)
	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.TitleWithCount("tasks", len(all))
	pp.Tasks(all...)
	return nil
}
