// ABOUTME: Dashboard and pipeline views
// ABOUTME: Entity counts and per-stage funnel aggregates from the deal service
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/pipelinepro/models"
)

func (m Model) renderDashboardView() string {
	var s strings.Builder

	s.WriteString(sectionStyle.Render("Overview"))
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("  Contacts: %d    Deals: %d\n", len(m.contacts), len(m.deals)))

	var open, won float64
	for _, d := range m.deals {
		switch d.Stage {
		case models.StageClosedWon:
			won += d.Value
		case models.StageClosedLost:
		default:
			open += d.Value
		}
	}
	s.WriteString(fmt.Sprintf("  Open pipeline: $%.0f    Won: $%.0f\n", open, won))

	s.WriteString("\n")
	s.WriteString(sectionStyle.Render("Pipeline"))
	s.WriteString("\n\n")
	s.WriteString(m.renderStageRows())

	return s.String()
}

func (m Model) renderPipelineView() string {
	var s strings.Builder

	s.WriteString(sectionStyle.Render("Pipeline by Stage"))
	s.WriteString("\n\n")
	s.WriteString(m.renderStageRows())

	return s.String()
}

func (m Model) renderStageRows() string {
	if m.stats == nil {
		return helpStyle.Render("  Loading pipeline...")
	}

	maxCount := 0
	for _, stage := range models.PipelineOrder {
		if m.stats[stage].Count > maxCount {
			maxCount = m.stats[stage].Count
		}
	}

	var s strings.Builder
	for _, stage := range models.PipelineOrder {
		st := m.stats[stage]
		bar := ""
		if maxCount > 0 {
			bar = strings.Repeat("█", st.Count*20/maxCountOrOne(maxCount))
		}
		s.WriteString(fmt.Sprintf("  %-14s %3d  $%-10.0f %s\n", stage, st.Count, st.Value, barStyle.Render(bar)))
	}
	return s.String()
}

func maxCountOrOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

var (
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Underline(true)

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170"))
)
