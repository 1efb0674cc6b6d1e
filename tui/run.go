// ABOUTME: TUI program runner
// ABOUTME: Starts the bubbletea program in the alternate screen
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/pipelinepro/services"
)

// Run starts the full-screen TUI over the given services and blocks
// until the user quits.
func Run(svc *services.Registry) error {
	p := tea.NewProgram(NewModel(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
