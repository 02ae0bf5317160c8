package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/mindmate/pkg/runner/tea/internal/theme"
)

// Model renders a framed panel with a title and wrapped body lines.
type Model struct {
	title string
	lines []string
	width int
	th    theme.PanelTheme
}

// New returns an empty panel drawn with th.
func New(th theme.PanelTheme) Model {
	return Model{th: th}
}

// SetContent updates the panel title and body lines.
func (m *Model) SetContent(title string, lines []string) {
	m.title = title
	m.lines = lines
}

// SetWidth sets the outer width; zero lets the content decide.
func (m *Model) SetWidth(w int) { m.width = w }

// Reset clears panel content.
func (m *Model) Reset() {
	m.title = ""
	m.lines = nil
}

// Empty reports whether the panel has nothing to show.
func (m Model) Empty() bool { return m.title == "" && len(m.lines) == 0 }

// View returns the rendered panel and its height in lines.
func (m Model) View() (string, int) {
	inner := 0
	if m.width > 0 {
		inner = max(m.width-m.th.Frame.GetHorizontalFrameSize(), 8)
	}
	var content []string
	if m.title != "" {
		content = append(content, m.th.Title.Render(m.title))
	}
	for _, line := range m.lines {
		if inner > 0 {
			line = wordwrap.String(line, inner)
		}
		content = append(content, m.th.Body.Render(line))
	}
	frame := m.th.Frame
	if m.width > 0 {
		frame = frame.Width(m.width)
	}
	view := frame.Render(strings.Join(content, "\n"))
	return view, lipgloss.Height(view)
}
