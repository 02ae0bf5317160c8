package teaui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/mindmate/pkg/app"
	"tableflip.dev/mindmate/pkg/runner/tea/internal/help"
)

// Run starts the dashboard and blocks until the user quits.
func Run(ctx context.Context, svc *app.Service) error {
	m := NewWithContext(ctx, svc)
	m.help = help.New(80, 20, help.DetectStyle())
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
