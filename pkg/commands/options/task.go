// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/whittle/pkg/glyph"
)

// TaskOptions captures the kind and timing flags shared by add and edit.
type TaskOptions struct {
	Name       string
	KindString string
	TimeString string
}

// AddTaskArgs wires the kind/timing flags on the provided command.
func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.KindString, "kind", "k", "want",
		"Kind of task: want, need, or both.")
	cmd.Flags().StringVarP(&o.TimeString, "timing", "t", "later",
		"When it wants attention: today or later.")
}

func (o *TaskOptions) GetKind() (glyph.Kind, error) {
	return glyph.KindForAlias(o.KindString)
}

func (o *TaskOptions) GetTiming() (glyph.Timing, error) {
	return glyph.TimingForAlias(o.TimeString)
}
