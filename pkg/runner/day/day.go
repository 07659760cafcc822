// Package day drives the day-start ritual: gate on a new calendar day, offer
// an edit detour, then either walk the elimination candidates or roll
// yesterday's focus list over unchanged.
package day

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"

	"tableflip.dev/whittle/pkg/app"
	"tableflip.dev/whittle/pkg/daily"
	"tableflip.dev/whittle/pkg/printers"
	"tableflip.dev/whittle/pkg/runner/get"
)

// Day runs the interactive daily check-in. In and Out default to the
// process's stdin and stdout; tests inject buffers.
type Day struct {
	// Force runs the ritual even when today was already acknowledged.
	Force bool

	Service *app.Service
	Engine  *daily.Engine

	In  io.Reader
	Out io.Writer
}

func (n *Day) Do(ctx context.Context) error {
	if n.Service == nil || n.Engine == nil {
		return errors.New("can not start the day, no service")
	}
	if n.In == nil {
		n.In = os.Stdin
	}
	if n.Out == nil {
		n.Out = os.Stdout
	}

	if !n.Engine.IsNewDay() && !n.Force {
		fmt.Fprintln(n.Out, "Already checked in today. Run again tomorrow, or use --force.")
		return nil
	}

	fmt.Fprintln(n.Out, "A new day. Here is everything on your list:")
	g := get.Get{Service: n.Service, ShowID: true}
	if err := g.Do(ctx); err != nil {
		return err
	}

	candidates := daily.Candidates(n.Service.Tasks(ctx))

	var (
		editFirst    bool
		reprioritize bool
		keep         = make([]bool, len(candidates))
	)

	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewConfirm().
				Title("Pause to edit your tasks first?").
				Affirmative("Yes").
				Negative("No").
				Value(&editFirst),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Re-prioritize for today?").
				Affirmative("Yes").
				Negative("No").
				Value(&reprioritize),
		).WithHideFunc(func() bool { return editFirst }),
	}

	pp := printers.PrettyPrint{}
	for i, t := range candidates {
		groups = append(groups, huh.NewGroup(
			huh.NewConfirm().
				Title("Keep for today?").
				Description(pp.Candidate(i+1, len(candidates), t)).
				Affirmative("Keep").
				Negative("Skip").
				Value(&keep[i]),
		).WithHideFunc(func() bool { return editFirst || !reprioritize }))
	}

	form := huh.NewForm(groups...).WithInput(n.In).WithOutput(n.Out)
	if err := form.RunWithContext(ctx); err != nil {
		return err
	}

	if editFirst {
		fmt.Fprintln(n.Out, "Use `whittle add`, `whittle edit`, or `whittle rm`, then run `whittle day --force`.")
		return nil
	}

	if !reprioritize {
		// Rollover: yesterday's unfinished picks carry forward unchanged.
		if err := n.Engine.MarkActive(); err != nil {
			return err
		}
		fmt.Fprintln(n.Out, "Keeping yesterday's focus list.")
		return nil
	}

	n.Service.ClearTodaySelections(ctx)
	for i, t := range candidates {
		if _, err := n.Service.SetTodaySelected(ctx, t.ID, keep[i]); err != nil {
			return err
		}
	}

	if err := n.Engine.MarkActive(); err != nil {
		return err
	}

	focus := get.Get{Service: n.Service, Filter: get.Focus}
	return focus.Do(ctx)
}
