// Package pick provides the runner logic for the today-selected flag.
package pick

import (
	"context"
	"errors"

	"tableflip.dev/whittle/pkg/app"
	"tableflip.dev/whittle/pkg/runner/get"
)

// Pick adds a task to (or with Drop, removes it from) today's focus list.
type Pick struct {
	ID   string
	Drop bool

	Service *app.Service
}

func (n *Pick) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not pick, no service")
	}

	if _, err := n.Service.SetTodaySelected(ctx, n.ID, !n.Drop); err != nil {
		return err
	}

	g := get.Get{Service: n.Service, Filter: get.Focus, ShowID: true}
	return g.Do(ctx)
}
