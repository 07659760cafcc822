package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/whittle/pkg/app"
	"tableflip.dev/whittle/pkg/daily"
	"tableflip.dev/whittle/pkg/glyph"
	"tableflip.dev/whittle/pkg/store"
	"tableflip.dev/whittle/pkg/task"
)

// The day-start flow walks these states in order; everything else happens in
// stateList. The prompt fires at most once per program run.
type state int

const (
	stateList state = iota
	stateForm
	statePromptEdit
	statePromptReprioritize
	stateEliminate
)

type taskItem struct{ t *task.Task }

func (it taskItem) Title() string       { return it.t.String() }
func (it taskItem) Description() string { return "" }
func (it taskItem) FilterValue() string { return it.t.Name }

type refreshMsg struct{}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	weightStyle = lipgloss.NewStyle().Faint(true).Italic(true)
)

// Model contains UI state.
type Model struct {
	svc    *app.Service
	engine *daily.Engine
	ctx    context.Context

	state       state
	promptShown bool

	taskList  list.Model
	todayOnly bool

	form   *huh.Form
	fb     *formBindings
	editID string

	candidates []*task.Task
	pos        int

	status string

	events <-chan store.Event

	termWidth  int
	termHeight int
}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	name   string
	kind   string
	timing string
}

func newModel(ctx context.Context, svc *app.Service, engine *daily.Engine, p store.Persistence) Model {
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)

	l := list.New([]list.Item{}, d, 80, 20)
	l.Title = "Tasks"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)

	m := Model{
		svc:      svc,
		engine:   engine,
		ctx:      ctx,
		taskList: l,
		fb:       &formBindings{},
	}

	if p != nil {
		if events, err := p.Watch(ctx); err == nil {
			m.events = events
		}
	}

	m.state = stateList
	if engine.IsNewDay() {
		m.state = statePromptEdit
		m.promptShown = true
	}
	m.reloadList()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.waitForEvent()
}

func (m *Model) waitForEvent() tea.Cmd {
	if m.events == nil {
		return nil
	}
	events := m.events
	return func() tea.Msg {
		if _, ok := <-events; ok {
			return refreshMsg{}
		}
		return nil
	}
}

func (m *Model) reloadList() {
	tasks := m.svc.Tasks(m.ctx)
	items := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		if m.todayOnly && (!t.TodaySelected || t.Completed) {
			continue
		}
		items = append(items, taskItem{t: t})
	}
	m.taskList.SetItems(items)
	if m.todayOnly {
		m.taskList.Title = "Today's focus"
	} else {
		m.taskList.Title = "Tasks"
	}
}

func (m *Model) selected() *task.Task {
	if it, ok := m.taskList.SelectedItem().(taskItem); ok {
		return it.t
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.taskList.SetSize(msg.Width-2, msg.Height-4)
		return m, nil
	case refreshMsg:
		m.svc.Reload(m.ctx)
		m.reloadList()
		// A day rollover while the program is open re-raises the prompt, but
		// only if it has not fired this run.
		if m.state == stateList && !m.promptShown && m.engine.IsNewDay() {
			m.state = statePromptEdit
			m.promptShown = true
		}
		return m, m.waitForEvent()
	}

	switch m.state {
	case stateForm:
		return m.updateForm(msg)
	case statePromptEdit:
		return m.updatePromptEdit(msg)
	case statePromptReprioritize:
		return m.updatePromptReprioritize(msg)
	case stateEliminate:
		return m.updateEliminate(msg)
	default:
		return m.updateList(msg)
	}
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "a":
			return m.openForm(nil)
		case "e":
			if t := m.selected(); t != nil {
				return m.openForm(t)
			}
			return m, nil
		case "x":
			if t := m.selected(); t != nil {
				if _, err := m.svc.ToggleCompleted(m.ctx, t.ID); err != nil {
					m.status = err.Error()
				}
				m.reloadList()
			}
			return m, nil
		case "d":
			if t := m.selected(); t != nil {
				if err := m.svc.Remove(m.ctx, t.ID); err != nil {
					m.status = err.Error()
				}
				m.reloadList()
			}
			return m, nil
		case "p":
			if t := m.selected(); t != nil {
				if _, err := m.svc.SetTodaySelected(m.ctx, t.ID, !t.TodaySelected); err != nil {
					m.status = err.Error()
				}
				m.reloadList()
			}
			return m, nil
		case "tab":
			m.todayOnly = !m.todayOnly
			m.reloadList()
			return m, nil
		case "r":
			m.state = statePromptReprioritize
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.taskList, cmd = m.taskList.Update(msg)
	return m, cmd
}

func (m Model) updatePromptEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "e":
			// Detour into the list; `r` resumes the day flow from there.
			m.state = stateList
			m.status = "Edit away. Press r when you are ready to pick today's tasks."
			return m, nil
		default:
			m.state = statePromptReprioritize
			return m, nil
		}
	}
	return m, nil
}

func (m Model) updatePromptReprioritize(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "y":
			m.svc.ClearTodaySelections(m.ctx)
			m.candidates = daily.Candidates(m.svc.Tasks(m.ctx))
			m.pos = 0
			if len(m.candidates) == 0 {
				return m.finishPass("Nothing to pick from. Add some tasks.")
			}
			m.state = stateEliminate
			return m, nil
		case "n", "esc":
			// Roll over: yesterday's picks stand.
			if err := m.engine.MarkActive(); err != nil {
				m.status = err.Error()
			}
			m.state = stateList
			m.reloadList()
			return m, nil
		}
	}
	return m, nil
}

func (m Model) updateEliminate(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "y", "n":
		t := m.candidates[m.pos]
		if _, err := m.svc.SetTodaySelected(m.ctx, t.ID, key.String() == "y"); err != nil {
			m.status = err.Error()
		}
		m.pos++
		if m.pos >= len(m.candidates) {
			return m.finishPass("Focus list set for today.")
		}
	}
	return m, nil
}

func (m Model) finishPass(status string) (tea.Model, tea.Cmd) {
	if err := m.engine.MarkActive(); err != nil {
		status = err.Error()
	}
	m.state = stateList
	m.status = status
	m.todayOnly = true
	m.reloadList()
	return m, nil
}

func (m Model) openForm(t *task.Task) (tea.Model, tea.Cmd) {
	if t == nil {
		m.editID = ""
		m.fb.name = ""
		m.fb.kind = string(glyph.Want)
		m.fb.timing = string(glyph.Today)
	} else {
		m.editID = t.ID
		m.fb.name = t.Name
		m.fb.kind = string(t.Kind)
		m.fb.timing = string(t.Timing)
	}
	m.form = buildForm(m.fb)
	m.state = stateForm
	return m, m.form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.submitForm()
		m.state = stateList
		m.reloadList()
		return m, nil
	}
	if m.form.State == huh.StateAborted {
		m.state = stateList
		return m, nil
	}
	return m, cmd
}

func (m *Model) submitForm() {
	kind := kindFromForm(m.fb.kind)
	timing := timingFromForm(m.fb.timing)
	if m.editID == "" {
		if _, err := m.svc.Add(m.ctx, m.fb.name, kind, timing); err != nil {
			m.status = err.Error()
		}
		return
	}
	fields := app.Fields{Name: &m.fb.name, Kind: &kind, Timing: &timing}
	if _, err := m.svc.Update(m.ctx, m.editID, fields); err != nil {
		m.status = err.Error()
	}
}

func (m Model) View() string {
	switch m.state {
	case stateForm:
		title := "New task"
		if m.editID != "" {
			title = "Edit task"
		}
		return lipgloss.NewStyle().Padding(1, 2).Render(
			titleStyle.Render(title) + "\n" + m.form.View())
	case statePromptEdit:
		return lipgloss.NewStyle().Padding(1, 2).Render(
			promptStyle.Render("A new day.") + "\n\n" +
				"Want to look over your tasks before picking today's focus?\n\n" +
				faintStyle.Render("e edit first · any other key to continue · q quit"))
	case statePromptReprioritize:
		return lipgloss.NewStyle().Padding(1, 2).Render(
			promptStyle.Render("Re-prioritize for today?") + "\n\n" +
				"Yes walks the heaviest tasks one at a time.\n" +
				"No keeps yesterday's focus list as is.\n\n" +
				faintStyle.Render("y yes · n no"))
	case stateEliminate:
		t := m.candidates[m.pos]
		return lipgloss.NewStyle().Padding(1, 2).Render(
			promptStyle.Render(fmt.Sprintf("Pick %d of %d", m.pos+1, len(m.candidates))) + "\n\n" +
				t.String() + " " + weightStyle.Render(fmt.Sprintf("(weight %d)", t.Weight)) + "\n\n" +
				faintStyle.Render("y keep for today · n not today"))
	default:
		help := "a add · e edit · x done · d delete · p pick · tab today · r re-prioritize · q quit"
		view := m.taskList.View() + "\n" + faintStyle.Render(help)
		if m.status != "" {
			view += "\n" + faintStyle.Render(m.status)
		}
		return view
	}
}
