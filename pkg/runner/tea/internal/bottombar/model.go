package bottombar

import (
	"strings"

	"tableflip.dev/mindmate/pkg/runner/tea/internal/theme"
)

// Mode represents the UI mode that influences footer layout.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeOnboarding
	ModeHelp
)

func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "INSERT"
	case ModeOnboarding:
		return "WELCOME"
	case ModeHelp:
		return "HELP"
	default:
		return "NORMAL"
	}
}

// Model tracks footer/help/status rendering state.
type Model struct {
	theme    theme.FooterTheme
	mode     Mode
	helpLine string
	status   string
	busy     string
}

// New returns a footer model using the given styles.
func New(th theme.FooterTheme) Model {
	return Model{theme: th}
}

// SetMode updates the visual mode.
func (m *Model) SetMode(mode Mode) { m.mode = mode }

// Mode returns the current mode.
func (m Model) Mode() Mode { return m.mode }

// SetHelp sets the contextual help line.
func (m *Model) SetHelp(help string) { m.helpLine = help }

// SetStatus sets the status message to display.
func (m *Model) SetStatus(status string) { m.status = status }

// Status returns the status message.
func (m Model) Status() string { return m.status }

// SetBusy shows an in-flight indicator; empty clears it.
func (m *Model) SetBusy(label string) { m.busy = label }

// View renders the single footer line.
func (m Model) View() string {
	segments := []string{m.theme.Mode.Render("[" + m.mode.String() + "]")}
	if m.busy != "" {
		segments = append(segments, m.theme.Busy.Render(m.busy))
	}
	if m.status != "" {
		segments = append(segments, m.theme.Status.Render(m.status))
	}
	if m.helpLine != "" {
		segments = append(segments, m.theme.Help.Render(m.helpLine))
	}
	return strings.Join(segments, " │ ")
}
