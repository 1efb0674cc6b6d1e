// ABOUTME: Quick-add modal for creating contacts, deals, tasks, and activities
// ABOUTME: Tabbed form with validation, dependent contact loading, and async submission
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/harperreed/pipelinepro/forms"
	"github.com/harperreed/pipelinepro/models"
	"github.com/harperreed/pipelinepro/services"
)

// QuickAddModel is the unified creation modal. One instance lives for
// one open/close cycle; its token ties async results to that cycle so
// a late resolution after close is discarded.
type QuickAddModel struct {
	svc   *services.Registry
	token string

	kind   forms.Kind
	fields []forms.Field
	inputs []textinput.Model
	// Selection state for option fields, keyed by field key.
	optionIdx map[string]int
	focus     int

	errors     forms.Errors
	submitting bool
	spin       spinner.Model

	// Dependent data for the deal variant's contact selector.
	contacts        []models.Contact
	contactIdx      int
	contactsLoading bool
	contactsLoaded  bool
}

type quickAddContactsMsg struct {
	token    string
	contacts []models.Contact
	err      error
}

type quickAddSubmittedMsg struct {
	token string
	kind  forms.Kind
	err   error
}

// spinnerTickMsg wraps spinner ticks so the shell can route them to
// the overlay.
type spinnerTickMsg struct {
	inner spinner.TickMsg
}

// newQuickAdd opens the modal on the given entity kind. Opening on
// the deal kind immediately starts the dependent contact load.
func newQuickAdd(svc *services.Registry, kind forms.Kind) (*QuickAddModel, tea.Cmd) {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	q := &QuickAddModel{
		svc:       svc,
		token:     uuid.NewString(),
		spin:      sp,
		errors:    forms.Errors{},
		optionIdx: map[string]int{},
	}
	cmd := q.setKind(kind)
	return q, cmd
}

// setKind switches the active form variant, resetting field state.
// Switching to the deal variant triggers exactly one contact load as
// a side effect, independent of submission.
func (q *QuickAddModel) setKind(kind forms.Kind) tea.Cmd {
	q.kind = kind
	q.fields = forms.Fields(kind)
	q.errors = forms.Errors{}
	q.focus = 0
	q.optionIdx = map[string]int{}

	q.inputs = make([]textinput.Model, len(q.fields))
	for i, f := range q.fields {
		in := textinput.New()
		in.Placeholder = f.Placeholder
		in.CharLimit = 200
		q.inputs[i] = in
	}
	q.updateFocus()

	if kind == forms.KindDeal && !q.contactsLoaded && !q.contactsLoading {
		q.contactsLoading = true
		return q.loadContactsCmd()
	}
	return nil
}

func (q *QuickAddModel) loadContactsCmd() tea.Cmd {
	svc := q.svc
	token := q.token
	return func() tea.Msg {
		contacts, err := svc.Contacts.GetAll(context.Background())
		return quickAddContactsMsg{token: token, contacts: contacts, err: err}
	}
}

func (q *QuickAddModel) updateFocus() {
	for i := range q.inputs {
		if i == q.focus && q.fields[i].Options == nil && !q.isContactField(i) {
			q.inputs[i].Focus()
		} else {
			q.inputs[i].Blur()
		}
	}
}

func (q *QuickAddModel) isContactField(i int) bool {
	return q.fields[i].Key == "contactId"
}

// handleKey processes a key press. The returned closed flag tells the
// shell to drop the overlay; closing and kind switches are suppressed
// while a submission is in flight.
func (q *QuickAddModel) handleKey(msg tea.KeyMsg) (*QuickAddModel, tea.Cmd, bool) {
	switch msg.String() {
	case "esc":
		if q.submitting {
			return q, nil, false
		}
		return q, nil, true

	case "ctrl+n":
		if q.submitting {
			return q, nil, false
		}
		next := forms.Kinds[(int(q.kind)+1)%len(forms.Kinds)]
		return q, q.setKind(next), false

	case "ctrl+p":
		if q.submitting {
			return q, nil, false
		}
		prev := forms.Kinds[(int(q.kind)+len(forms.Kinds)-1)%len(forms.Kinds)]
		return q, q.setKind(prev), false

	case "tab", "down":
		q.focus = (q.focus + 1) % len(q.fields)
		q.updateFocus()
		return q, nil, false

	case "shift+tab", "up":
		q.focus = (q.focus + len(q.fields) - 1) % len(q.fields)
		q.updateFocus()
		return q, nil, false

	case "left", "right":
		if q.cycleSelection(msg.String() == "right") {
			return q, nil, false
		}

	case "enter":
		return q, q.submit(), false
	}

	if q.submitting {
		return q, nil, false
	}

	var cmd tea.Cmd
	q.inputs[q.focus], cmd = q.inputs[q.focus].Update(msg)
	return q, cmd, false
}

// cycleSelection advances the focused selection control. Returns
// false when the focused field is free text, so arrow keys fall
// through to the text input.
func (q *QuickAddModel) cycleSelection(forward bool) bool {
	f := q.fields[q.focus]

	if q.isContactField(q.focus) {
		if len(q.contacts) == 0 {
			return true
		}
		if forward {
			q.contactIdx = (q.contactIdx + 1) % len(q.contacts)
		} else {
			q.contactIdx = (q.contactIdx + len(q.contacts) - 1) % len(q.contacts)
		}
		return true
	}

	if f.Options == nil {
		return false
	}
	idx := q.optionIdx[f.Key]
	if forward {
		idx = (idx + 1) % len(f.Options)
	} else {
		idx = (idx + len(f.Options) - 1) % len(f.Options)
	}
	q.optionIdx[f.Key] = idx
	return true
}

func (q *QuickAddModel) handleMsg(msg tea.Msg) (*QuickAddModel, tea.Cmd) {
	switch msg := msg.(type) {
	case quickAddContactsMsg:
		if msg.token != q.token {
			return q, nil
		}
		q.contactsLoading = false
		if msg.err != nil {
			q.errors["contactId"] = "Failed to load contacts"
			return q, nil
		}
		q.contactsLoaded = true
		q.contacts = msg.contacts
		q.contactIdx = 0
		return q, nil

	case quickAddSubmittedMsg:
		if msg.token != q.token {
			return q, nil
		}
		// Success closes the modal at the shell level; only the
		// failure path reaches here. Field values stay intact.
		q.submitting = false
		return q, nil

	case spinnerTickMsg:
		if !q.submitting {
			return q, nil
		}
		var cmd tea.Cmd
		q.spin, cmd = q.spin.Update(msg.inner)
		return q, wrapSpinner(cmd)
	}

	return q, nil
}

// values collects the raw form state for validation and payload
// building.
func (q *QuickAddModel) values() forms.Values {
	v := forms.Values{}
	for i, f := range q.fields {
		switch {
		case q.isContactField(i):
			if len(q.contacts) > 0 {
				v[f.Key] = strconv.Itoa(q.contacts[q.contactIdx].ID)
			}
		case f.Options != nil:
			v[f.Key] = f.Options[q.optionIdx[f.Key]]
		default:
			v[f.Key] = q.inputs[i].Value()
		}
	}
	return v
}

// submit validates and, when clean, dispatches exactly one create
// call to the matching service. Validation failure sets field errors
// and makes no service call.
func (q *QuickAddModel) submit() tea.Cmd {
	if q.submitting {
		return nil
	}

	vals := q.values()
	q.errors = forms.Validate(q.kind, vals)
	if len(q.errors) > 0 {
		return nil
	}

	q.submitting = true
	svc := q.svc
	token := q.token
	kind := q.kind

	create := func() tea.Msg {
		ctx := context.Background()
		var err error
		switch kind {
		case forms.KindContact:
			_, err = svc.Contacts.Create(ctx, forms.BuildContact(vals))
		case forms.KindDeal:
			_, err = svc.Deals.Create(ctx, forms.BuildDeal(vals))
		case forms.KindTask:
			_, err = svc.Tasks.Create(ctx, forms.BuildTask(vals))
		case forms.KindActivity:
			_, err = svc.Activities.Create(ctx, forms.BuildActivity(vals))
		}
		return quickAddSubmittedMsg{token: token, kind: kind, err: err}
	}

	return tea.Batch(create, wrapSpinner(q.spin.Tick))
}

func wrapSpinner(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		msg := cmd()
		if tick, ok := msg.(spinner.TickMsg); ok {
			return spinnerTickMsg{inner: tick}
		}
		return msg
	}
}

func (q *QuickAddModel) View(width int) string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("QUICK ADD"))
	s.WriteString("\n\n")

	// Entity kind tabs
	var tabs []string
	for _, k := range forms.Kinds {
		if k == q.kind {
			tabs = append(tabs, tabActiveStyle.Render(k.Label()))
		} else {
			tabs = append(tabs, tabInactiveStyle.Render(k.Label()))
		}
	}
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	s.WriteString("\n\n")

	// Form fields
	for i, f := range q.fields {
		if i == q.focus {
			s.WriteString("> ")
		} else {
			s.WriteString("  ")
		}

		label := f.Label
		if f.Required {
			label += " *"
		}
		s.WriteString(fieldLabelStyle.Render(label))
		s.WriteString("  ")

		switch {
		case q.isContactField(i):
			s.WriteString(q.renderContactSelector())
		case f.Options != nil:
			s.WriteString(selectStyle.Render("◂ " + f.Options[q.optionIdx[f.Key]] + " ▸"))
		default:
			s.WriteString(q.inputs[i].View())
		}

		if msg, ok := q.errors[f.Key]; ok {
			s.WriteString("\n    ")
			s.WriteString(errorStyle.Render(msg))
		}
		s.WriteString("\n")
	}

	s.WriteString("\n")

	if q.submitting {
		s.WriteString(q.spin.View())
		s.WriteString(" Creating " + q.kind.Label() + "...")
	} else {
		s.WriteString(helpStyle.Render("Ctrl+N/P: Switch type • Tab: Next field • ◂▸: Choose • Enter: Create • Esc: Cancel"))
	}

	return s.String()
}

func (q *QuickAddModel) renderContactSelector() string {
	if q.contactsLoading {
		return selectStyle.Render("loading contacts...")
	}
	if len(q.contacts) == 0 {
		return selectStyle.Render("no contacts available")
	}
	c := q.contacts[q.contactIdx]
	return selectStyle.Render(fmt.Sprintf("◂ %s (%s) ▸", c.FullName(), c.Company))
}

var (
	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Width(24)

	selectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))
)
