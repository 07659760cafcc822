package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"

	"tableflip.dev/whittle/pkg/glyph"
)

func buildForm(fb *formBindings) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Placeholder("What is it?").
				Value(&fb.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("a task needs a name")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Kind").
				Options(kindOptions()...).
				Value(&fb.kind),
			huh.NewSelect[string]().
				Title("Timing").
				Options(timingOptions()...).
				Value(&fb.timing),
		),
	)
}

func kindOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(glyph.DefaultKinds()))
	for _, g := range glyph.DefaultKinds() {
		opts = append(opts, huh.NewOption(g.Symbol+" "+g.Noun, g.Noun))
	}
	return opts
}

func timingOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(glyph.DefaultTimings()))
	for _, g := range glyph.DefaultTimings() {
		opts = append(opts, huh.NewOption(g.Symbol+" "+g.Noun, g.Noun))
	}
	return opts
}

func kindFromForm(v string) glyph.Kind {
	if k, err := glyph.KindForAlias(v); err == nil {
		return k
	}
	return glyph.Want
}

func timingFromForm(v string) glyph.Timing {
	if t, err := glyph.TimingForAlias(v); err == nil {
		return t
	}
	return glyph.Later
}
