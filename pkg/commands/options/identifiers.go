package options

import (
	"github.com/spf13/cobra"
)

// IDOptions holds the task id argument and id display flags.
type IDOptions struct {
	ID     string
	ShowID bool
}

// AddShowIDArgs registers the flag that reveals task ids in listings.
func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "show-ids", false,
		"Show task ids.")
}
