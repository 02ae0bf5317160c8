package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/mindmate/pkg/mood"
)

// MoodOptions holds the mood and note given to `log`.
type MoodOptions struct {
	Mood    mood.Mood
	Journal string
}

func AddJournalArg(cmd *cobra.Command, o *MoodOptions) {
	cmd.Flags().StringVarP(&o.Journal, "journal", "j", "",
		"Journal note to store with the mood.")
}

// ParseArgs reads `<mood> [journal words...]`. A missing mood is left empty
// for the caller to prompt for.
func (o *MoodOptions) ParseArgs(args []string) error {
	if len(args) == 0 {
		return nil
	}
	m, err := mood.Parse(args[0])
	if err != nil {
		return err
	}
	o.Mood = m
	if len(args) > 1 && o.Journal == "" {
		o.Journal = strings.Join(args[1:], " ")
	}
	return nil
}

// MoodCompletions lists every mood name and alias.
func MoodCompletions(toComplete string) []string {
	var out []string
	for _, g := range mood.DefaultGlyphs() {
		for _, a := range g.Aliases {
			if strings.HasPrefix(a, strings.ToLower(toComplete)) {
				out = append(out, a)
			}
		}
	}
	return out
}
