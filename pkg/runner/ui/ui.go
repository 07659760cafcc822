// Package ui hosts the interactive terminal interface: the task list, the
// add/edit form, and the day-start prompt flow.
package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/whittle/pkg/app"
	"tableflip.dev/whittle/pkg/daily"
	"tableflip.dev/whittle/pkg/store"
)

// UI runs the terminal interface until the user quits.
type UI struct {
	Service     *app.Service
	Engine      *daily.Engine
	Persistence store.Persistence
}

func (u *UI) Do(ctx context.Context) error {
	if u.Service == nil || u.Engine == nil {
		return errors.New("can not open ui, no service")
	}

	m := newModel(ctx, u.Service, u.Engine, u.Persistence)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
