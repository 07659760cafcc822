// Package get provides the runner logic for listing tasks.
package get

import (
	"context"
	"errors"

	"tableflip.dev/whittle/pkg/app"
	"tableflip.dev/whittle/pkg/daily"
	"tableflip.dev/whittle/pkg/glyph"
	"tableflip.dev/whittle/pkg/printers"
	"tableflip.dev/whittle/pkg/task"
)

// Filter narrows which tasks a Get run shows.
type Filter int

const (
	All Filter = iota
	Wants
	Needs
	Boths
	Todays
	Laters
	Done
	Focus
	Candidates
)

// Get lists tasks with an optional filter applied.
type Get struct {
	ShowID bool
	Filter Filter

	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()

	all := n.Service.Tasks(ctx)
	if n.Filter == Candidates {
		picked := daily.Candidates(all)
		pp.TitleWithCount("up for elimination", len(picked))
		pp.Tasks(picked...)
		return nil
	}

	filtered := n.filtered(all)
	pp.TitleWithCount(n.title(), len(filtered))
	pp.Tasks(filtered...)
	return nil
}

func (n *Get) title() string {
	switch n.Filter {
	case Wants:
		return "wants"
	case Needs:
		return "needs"
	case Boths:
		return "want and need"
	case Todays:
		return "today"
	case Laters:
		return "later"
	case Done:
		return "completed"
	case Focus:
		return "today's focus"
	default:
		return "tasks"
	}
}

func (n *Get) filtered(all []*task.Task) []*task.Task {
	c := make([]*task.Task, 0, len(all))
	for _, t := range all {
		if n.keep(t) {
			c = append(c, t)
		}
	}
	return c
}

func (n *Get) keep(t *task.Task) bool {
	switch n.Filter {
	case Wants:
		return t.Kind == glyph.Want
	case Needs:
		return t.Kind == glyph.Need
	case Boths:
		return t.Kind == glyph.Both
	case Todays:
		return t.Timing == glyph.Today
	case Laters:
		return t.Timing == glyph.Later
	case Done:
		return t.Completed
	case Focus:
		return t.TodaySelected && !t.Completed
	default:
		return true
	}
}
