package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/whittle/pkg/task"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("bd45fd29-7f10-4f9a-9d5c-6bb4d0a3f2e1  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" task")
	default:
		_, _ = c.Println(" tasks")
	}
}

// Tasks renders tasks as a table of kind/timing glyphs, weight, and name.
// Today-selected tasks get a leading marker; completed tasks render struck.
func (pp *PrettyPrint) Tasks(tasks ...*task.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = " "

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, t := range tasks {
		focus := " "
		if t.TodaySelected {
			focus = "✔"
		}
		kind, timing, weight, name := t.Row()
		if t.Completed {
			name = color.New(color.CrossedOut, color.Faint).Sprint(name)
		}
		if pp.ShowID {
			tbl.AddRow(y.Sprint(t.ID), focus, kind, timing, weight, name)
		} else {
			tbl.AddRow(focus, kind, timing, weight, name)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Candidate renders one elimination candidate with its position in the pass.
func (pp *PrettyPrint) Candidate(pos, total int, t *task.Task) string {
	c := color.New(color.Faint)
	return fmt.Sprintf("%s%s %s  %s %s",
		c.Sprintf("[%d/%d] ", pos, total),
		t.Kind.String(), t.Timing.String(), t.Name,
		c.Sprintf("(weight %d)", t.Weight))
}
