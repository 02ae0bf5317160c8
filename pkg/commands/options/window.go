package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/mindmate/pkg/timeutil"
)

// WindowOptions bounds the history listing.
type WindowOptions struct {
	Last string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVar(&o.Last, "last", timeutil.All,
		`Only show entries from the trailing window, example: --last=3d or --last=1w2d.`)
}

func (o *WindowOptions) Window() (timeutil.Window, error) {
	return timeutil.ParseWindow(o.Last)
}
