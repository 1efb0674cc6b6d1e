// ABOUTME: Entity list views rendered as tables
// ABOUTME: Contacts, deals, tasks, and activities tables over cached service data
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderContactsView() string {
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Email", Width: 30},
		{Title: "Company", Width: 18},
		{Title: "Tags", Width: 22},
	}

	var rows []table.Row
	for _, c := range m.contacts {
		rows = append(rows, table.Row{
			c.FullName(),
			c.Email,
			c.Company,
			strings.Join(c.Tags, ", "),
		})
	}

	return renderTable(columns, rows, "No contacts yet. Press 'a' to add one.")
}

func (m Model) renderDealsView() string {
	columns := []table.Column{
		{Title: "Title", Width: 28},
		{Title: "Value", Width: 12},
		{Title: "Stage", Width: 14},
		{Title: "Prob", Width: 6},
		{Title: "Close Date", Width: 12},
	}

	var rows []table.Row
	for _, d := range m.deals {
		rows = append(rows, table.Row{
			d.Title,
			fmt.Sprintf("$%.0f", d.Value),
			d.Stage,
			fmt.Sprintf("%.0f%%", d.Probability),
			formatDate(d.ExpectedCloseDate),
		})
	}

	return renderTable(columns, rows, "No deals yet. Press 'a' to add one.")
}

func (m Model) renderTasksView() string {
	columns := []table.Column{
		{Title: "Title", Width: 36},
		{Title: "Due", Width: 12},
		{Title: "Priority", Width: 10},
	}

	var rows []table.Row
	for _, t := range m.tasks {
		rows = append(rows, table.Row{
			t.Title,
			formatDate(t.DueDate),
			t.Priority,
		})
	}

	return renderTable(columns, rows, "No tasks yet. Press 'a' to add one.")
}

func (m Model) renderActivitiesView() string {
	columns := []table.Column{
		{Title: "Type", Width: 9},
		{Title: "Subject", Width: 30},
		{Title: "Content", Width: 40},
	}

	var rows []table.Row
	for _, a := range m.activities {
		rows = append(rows, table.Row{
			a.Type,
			a.Subject,
			a.Content,
		})
	}

	return renderTable(columns, rows, "No activities logged yet.")
}

func renderTable(columns []table.Column, rows []table.Row, empty string) string {
	if len(rows) == 0 {
		return helpStyle.Render(empty)
	}

	height := len(rows) + 1
	if height > 16 {
		height = 16
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t.View()
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
