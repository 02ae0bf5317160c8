package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/mindmate/pkg/mood"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Footer FooterTheme
	Panel  PanelTheme
	Chat   ChatTheme

	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Greeting  lipgloss.Style
	Faint     lipgloss.Style

	moods map[mood.Mood]MoodStyle
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Mode   lipgloss.Style
	Help   lipgloss.Style
	Status lipgloss.Style
	Busy   lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// ChatTheme styles the two sides of the conversation.
type ChatTheme struct {
	User lipgloss.Style
	Bot  lipgloss.Style
	Name lipgloss.Style
}

// MoodStyle is the pair of colors a mood is drawn with. Bar fills the chart,
// Muted is the same hue pulled toward the background for empty cells.
type MoodStyle struct {
	Bar   lipgloss.Style
	Label lipgloss.Style
	Muted lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	tab := lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("244"))
	return Theme{
		Footer: FooterTheme{
			Mode:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Busy:   lipgloss.NewStyle().Foreground(lipgloss.Color("218")).Italic(true),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
		Chat: ChatTheme{
			User: lipgloss.NewStyle().Foreground(lipgloss.Color("218")),
			Bot:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			Name: lipgloss.NewStyle().Bold(true),
		},
		Tab:       tab,
		ActiveTab: tab.Foreground(lipgloss.Color("212")).Bold(true).Underline(true),
		Greeting:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("218")),
		Faint:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		moods:     moodStyles(),
	}
}

// Mood returns the styles for m, falling back to plain text for unknown moods.
func (t Theme) Mood(m mood.Mood) MoodStyle {
	if s, ok := t.moods[m]; ok {
		return s
	}
	plain := lipgloss.NewStyle()
	return MoodStyle{Bar: plain, Label: plain, Muted: plain}
}

// background is the blend target for muted mood colors.
var background = colorful.Color{R: 0.12, G: 0.12, B: 0.14}

func moodStyles() map[mood.Mood]MoodStyle {
	out := make(map[mood.Mood]MoodStyle)
	for _, g := range mood.DefaultGlyphs() {
		c, err := colorful.Hex(g.Color)
		if err != nil {
			continue
		}
		muted := c.BlendLab(background, 0.65).Clamped()
		out[g.Mood] = MoodStyle{
			Bar:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())),
			Label: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Bold(true),
			Muted: lipgloss.NewStyle().Foreground(lipgloss.Color(muted.Hex())),
		}
	}
	return out
}
