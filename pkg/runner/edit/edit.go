// Package edit provides the runner logic for updating task fields.
package edit

import (
	"context"
	"errors"

	"tableflip.dev/whittle/pkg/app"
	"tableflip.dev/whittle/pkg/printers"
)

// Edit merges the provided fields into an existing task. Nil fields are left
// alone; the weight is recomputed either way.
type Edit struct {
	ID     string
	Fields app.Fields

	Service *app.Service
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}

	t, err := n.Service.Update(ctx, n.ID, n.Fields)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Title("updated")
	pp.Tasks(t)
	return nil
}
