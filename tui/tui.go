// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Navigation shell with entity tabs, status line, and the quick-add overlay
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/pipelinepro/forms"
	"github.com/harperreed/pipelinepro/models"
	"github.com/harperreed/pipelinepro/services"
)

// Tab represents the active navigation tab.
type Tab int

const (
	TabDashboard Tab = iota
	TabContacts
	TabDeals
	TabPipeline
	TabTasks
	TabActivities
)

var tabLabels = []string{"Dashboard", "Contacts", "Deals", "Pipeline", "Tasks", "Activities"}

// Model is the main bubbletea model.
type Model struct {
	svc *services.Registry
	tab Tab

	// Cached list data, loaded through the services.
	contacts   []models.Contact
	deals      []models.Deal
	tasks      []models.Task
	activities []models.Activity
	stats      services.PipelineStats

	// Quick-add overlay; nil when closed.
	quickAdd *QuickAddModel

	// Transient status line (the toast).
	status      string
	statusIsErr bool

	width  int
	height int
	err    error
}

// NewModel creates the navigation shell over a service registry.
func NewModel(svc *services.Registry) Model {
	return Model{
		svc:    svc,
		tab:    TabDashboard,
		width:  80,
		height: 24,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadContactsCmd(), m.loadDealsCmd(), m.loadStatsCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case contactsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.contacts = msg.contacts
		}
		return m, nil

	case dealsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.deals = msg.deals
		}
		return m, nil

	case tasksLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.tasks = msg.tasks
		}
		return m, nil

	case activitiesLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.activities = msg.activities
		}
		return m, nil

	case statsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.stats = msg.stats
		}
		return m, nil

	case quickAddContactsMsg, quickAddSubmittedMsg, spinnerTickMsg:
		return m.routeQuickAdd(msg)
	}

	return m, nil
}

// routeQuickAdd hands quick-add messages to the overlay. Results from
// a closed or superseded modal session are discarded.
func (m Model) routeQuickAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quickAdd == nil {
		return m, nil
	}

	if done, ok := msg.(quickAddSubmittedMsg); ok {
		if done.token != m.quickAdd.token {
			return m, nil
		}
		if done.err == nil {
			m.quickAdd = nil
			m.setStatus(done.kind.Label()+" created successfully!", false)
			return m, m.refreshCmd(done.kind)
		}
		// Leave the form intact so the user can retry.
		qa, cmd := m.quickAdd.handleMsg(msg)
		m.quickAdd = qa
		m.setStatus("Failed to create item. Please try again.", true)
		return m, cmd
	}

	qa, cmd := m.quickAdd.handleMsg(msg)
	m.quickAdd = qa
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The overlay captures all keys while open.
	if m.quickAdd != nil {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		qa, cmd, closed := m.quickAdd.handleKey(msg)
		if closed {
			m.quickAdd = nil
		} else {
			m.quickAdd = qa
		}
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab", "right", "l":
		m.tab = Tab((int(m.tab) + 1) % len(tabLabels))
		return m, m.loadTabCmd()
	case "shift+tab", "left", "h":
		m.tab = Tab((int(m.tab) + len(tabLabels) - 1) % len(tabLabels))
		return m, m.loadTabCmd()
	case "r":
		return m, m.loadTabCmd()
	case "a":
		qa, cmd := newQuickAdd(m.svc, m.quickAddKindForTab())
		m.quickAdd = qa
		m.status = ""
		return m, cmd
	}

	return m, nil
}

// quickAddKindForTab preselects the modal's entity type from the
// active navigation tab.
func (m Model) quickAddKindForTab() forms.Kind {
	switch m.tab {
	case TabDeals, TabPipeline:
		return forms.KindDeal
	case TabTasks:
		return forms.KindTask
	case TabActivities:
		return forms.KindActivity
	default:
		return forms.KindContact
	}
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusIsErr = isErr
}

func (m Model) View() string {
	if m.quickAdd != nil {
		return m.quickAdd.View(m.width)
	}

	var body string
	switch m.tab {
	case TabDashboard:
		body = m.renderDashboardView()
	case TabContacts:
		body = m.renderContactsView()
	case TabDeals:
		body = m.renderDealsView()
	case TabPipeline:
		body = m.renderPipelineView()
	case TabTasks:
		body = m.renderTasksView()
	case TabActivities:
		body = m.renderActivitiesView()
	}

	out := titleStyle.Render("PIPELINE PRO") + "\n\n" +
		m.renderTabs() + "\n\n" +
		body + "\n\n" +
		m.renderStatusLine()

	return out
}

func (m Model) renderTabs() string {
	var rendered []string
	for i, label := range tabLabels {
		if Tab(i) == m.tab {
			rendered = append(rendered, tabActiveStyle.Render(label))
		} else {
			rendered = append(rendered, tabInactiveStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderStatusLine() string {
	if m.status != "" {
		if m.statusIsErr {
			return errorStyle.Render(m.status)
		}
		return successStyle.Render(m.status)
	}
	return helpStyle.Render("Tab: Switch view • a: Quick add • r: Refresh • q: Quit")
}

// Async load commands. Each suspends on the service's simulated
// latency and resumes the update loop with a loaded message.

type contactsLoadedMsg struct {
	contacts []models.Contact
	err      error
}

type dealsLoadedMsg struct {
	deals []models.Deal
	err   error
}

type tasksLoadedMsg struct {
	tasks []models.Task
	err   error
}

type activitiesLoadedMsg struct {
	activities []models.Activity
	err        error
}

type statsLoadedMsg struct {
	stats services.PipelineStats
	err   error
}

func (m Model) loadContactsCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		contacts, err := svc.Contacts.GetAll(context.Background())
		return contactsLoadedMsg{contacts: contacts, err: err}
	}
}

func (m Model) loadDealsCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		deals, err := svc.Deals.GetAll(context.Background())
		return dealsLoadedMsg{deals: deals, err: err}
	}
}

func (m Model) loadTasksCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		tasks, err := svc.Tasks.GetAll(context.Background())
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func (m Model) loadActivitiesCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		activities, err := svc.Activities.GetAll(context.Background())
		return activitiesLoadedMsg{activities: activities, err: err}
	}
}

func (m Model) loadStatsCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		stats, err := svc.Deals.GetPipelineStats(context.Background())
		return statsLoadedMsg{stats: stats, err: err}
	}
}

func (m Model) loadTabCmd() tea.Cmd {
	switch m.tab {
	case TabDashboard:
		return tea.Batch(m.loadContactsCmd(), m.loadDealsCmd(), m.loadStatsCmd())
	case TabContacts:
		return m.loadContactsCmd()
	case TabDeals:
		return m.loadDealsCmd()
	case TabPipeline:
		return m.loadStatsCmd()
	case TabTasks:
		return m.loadTasksCmd()
	case TabActivities:
		return m.loadActivitiesCmd()
	}
	return nil
}

// refreshCmd reloads the lists affected by a newly created entity.
func (m Model) refreshCmd(kind forms.Kind) tea.Cmd {
	switch kind {
	case forms.KindContact:
		return m.loadContactsCmd()
	case forms.KindDeal:
		return tea.Batch(m.loadDealsCmd(), m.loadStatsCmd())
	case forms.KindTask:
		return m.loadTasksCmd()
	case forms.KindActivity:
		return m.loadActivitiesCmd()
	}
	return nil
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 2)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)
