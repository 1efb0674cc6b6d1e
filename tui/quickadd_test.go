// ABOUTME: Tests for the quick-add modal
// ABOUTME: Covers type switching, dependent loads, validation gating, and submission lifecycle
package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/pipelinepro/forms"
	"github.com/harperreed/pipelinepro/models"
	"github.com/harperreed/pipelinepro/seed"
	"github.com/harperreed/pipelinepro/services"
)

func setupTest(t *testing.T) (*seed.Stores, *services.Registry) {
	t.Helper()
	stores := seed.Empty()
	svc := services.NewRegistry(stores.Contacts, stores.Deals, stores.Tasks, stores.Activities, services.NopDelayer{})
	return stores, svc
}

// execCmd runs a command tree and flattens the produced messages.
func execCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, execCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findSubmitted(msgs []tea.Msg) (quickAddSubmittedMsg, bool) {
	for _, m := range msgs {
		if done, ok := m.(quickAddSubmittedMsg); ok {
			return done, true
		}
	}
	return quickAddSubmittedMsg{}, false
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyCtrlN}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestSwitchingToDealLoadsContactsOnce(t *testing.T) {
	stores, svc := setupTest(t)
	stores.Contacts.Insert(models.Contact{FirstName: "Sarah", LastName: "Chen", Company: "Acme Corp"})

	q, cmd := newQuickAdd(svc, forms.KindContact)
	if cmd != nil {
		t.Fatal("contact tab should not trigger a dependent load")
	}

	// Switch contact -> deal.
	q, cmd, closed := q.handleKey(keyMsg("ctrl+n"))
	if closed {
		t.Fatal("modal closed unexpectedly")
	}
	if q.kind != forms.KindDeal {
		t.Fatalf("got kind %v, want deal", q.kind)
	}
	if cmd == nil {
		t.Fatal("switching to deal should trigger a contact load")
	}

	// Resolve the load and verify the selector options.
	msgs := execCmd(cmd)
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	q, _ = q.handleMsg(msgs[0])

	if len(q.contacts) != 1 {
		t.Fatalf("selector has %d options, want 1", len(q.contacts))
	}
	if q.contacts[0].FullName() != "Sarah Chen" {
		t.Errorf("unexpected selector option: %q", q.contacts[0].FullName())
	}

	// Cycling around the tabs back to deal must not reload.
	for i := 0; i < len(forms.Kinds); i++ {
		q, cmd, _ = q.handleKey(keyMsg("ctrl+n"))
	}
	if q.kind != forms.KindDeal {
		t.Fatalf("got kind %v after full cycle, want deal", q.kind)
	}
	if cmd != nil {
		t.Error("second switch to deal triggered another load")
	}
}

func TestSubmitInvalidContactMakesNoServiceCall(t *testing.T) {
	stores, svc := setupTest(t)

	q, _ := newQuickAdd(svc, forms.KindContact)
	q.inputs[0].SetValue("John")
	q.inputs[1].SetValue("Doe")
	q.inputs[2].SetValue("not-an-email")

	q, cmd, _ := q.handleKey(keyMsg("enter"))

	if cmd != nil {
		t.Error("invalid form produced a service call")
	}
	if _, ok := q.errors["email"]; !ok {
		t.Error("email error not set")
	}
	if stores.Contacts.Len() != 0 {
		t.Errorf("store mutated despite validation failure: %d records", stores.Contacts.Len())
	}
}

func TestSubmitNegativeDealValueRejected(t *testing.T) {
	stores, svc := setupTest(t)
	stores.Contacts.Insert(models.Contact{FirstName: "Sarah", LastName: "Chen"})

	q, cmd := newQuickAdd(svc, forms.KindDeal)
	for _, msg := range execCmd(cmd) {
		q, _ = q.handleMsg(msg)
	}

	q.inputs[0].SetValue("Bad Deal")
	q.inputs[1].SetValue("-5")

	q, cmd, _ = q.handleKey(keyMsg("enter"))

	if cmd != nil {
		t.Error("invalid form produced a service call")
	}
	if _, ok := q.errors["value"]; !ok {
		t.Error("value error not set")
	}
	if stores.Deals.Len() != 0 {
		t.Error("deal store mutated despite validation failure")
	}
}

func TestSubmitDealEndToEnd(t *testing.T) {
	stores, svc := setupTest(t)
	contact := stores.Contacts.Insert(models.Contact{FirstName: "Sarah", LastName: "Chen"})

	q, cmd := newQuickAdd(svc, forms.KindDeal)
	for _, msg := range execCmd(cmd) {
		q, _ = q.handleMsg(msg)
	}

	q.inputs[0].SetValue("Q1 License")
	q.inputs[1].SetValue("50000")
	q.optionIdx["stage"] = 2 // proposal

	q, cmd, _ = q.handleKey(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("valid form did not submit")
	}
	if !q.submitting {
		t.Error("submitting flag not set")
	}

	done, ok := findSubmitted(execCmd(cmd))
	if !ok {
		t.Fatal("no submission result message")
	}
	if done.err != nil {
		t.Fatalf("submission failed: %v", done.err)
	}
	if done.kind != forms.KindDeal {
		t.Errorf("result kind = %v, want deal", done.kind)
	}

	deals := stores.Deals.All()
	if len(deals) != 1 {
		t.Fatalf("got %d deals, want 1", len(deals))
	}
	d := deals[0]
	if d.Title != "Q1 License" || d.Value != 50000 {
		t.Errorf("unexpected deal payload: %+v", d)
	}
	if d.Stage != models.StageProposal {
		t.Errorf("got stage %q, want proposal", d.Stage)
	}
	if d.Probability != 50 {
		t.Errorf("got probability %v, want 50 (derived from proposal)", d.Probability)
	}
	if d.ContactID != contact.ID {
		t.Errorf("got contact %d, want %d", d.ContactID, contact.ID)
	}
}

func TestEscWhileSubmittingIsSuppressed(t *testing.T) {
	_, svc := setupTest(t)

	q, _ := newQuickAdd(svc, forms.KindContact)
	q.submitting = true

	_, _, closed := q.handleKey(keyMsg("esc"))
	if closed {
		t.Error("modal closed while a submission was in flight")
	}
}

func TestKindSwitchWhileSubmittingIsSuppressed(t *testing.T) {
	_, svc := setupTest(t)

	q, _ := newQuickAdd(svc, forms.KindContact)
	q.inputs[0].SetValue("John")
	q.submitting = true

	for _, key := range []string{"ctrl+n", "ctrl+p"} {
		var cmd tea.Cmd
		q, cmd, _ = q.handleKey(keyMsg(key))
		if q.kind != forms.KindContact {
			t.Fatalf("%s switched kind to %v during submission", key, q.kind)
		}
		if cmd != nil {
			t.Errorf("%s produced a command during submission", key)
		}
	}
	if q.inputs[0].Value() != "John" {
		t.Error("field values were reset during submission")
	}
}

func TestEscClosesIdleModal(t *testing.T) {
	_, svc := setupTest(t)

	q, _ := newQuickAdd(svc, forms.KindContact)
	_, _, closed := q.handleKey(keyMsg("esc"))
	if !closed {
		t.Error("esc did not close an idle modal")
	}
}

func TestFailedSubmissionKeepsFieldValues(t *testing.T) {
	_, svc := setupTest(t)

	q, _ := newQuickAdd(svc, forms.KindContact)
	q.inputs[0].SetValue("John")
	q.submitting = true

	q, _ = q.handleMsg(quickAddSubmittedMsg{token: q.token, kind: forms.KindContact, err: errors.New("boom")})

	if q.submitting {
		t.Error("submitting flag not cleared after failure")
	}
	if q.inputs[0].Value() != "John" {
		t.Error("field values were reset on failure")
	}
}

func TestStaleResultsAreDiscarded(t *testing.T) {
	_, svc := setupTest(t)

	q, _ := newQuickAdd(svc, forms.KindContact)
	q.submitting = true

	// A result from a previous modal session must not touch state.
	q, _ = q.handleMsg(quickAddSubmittedMsg{token: "stale", kind: forms.KindContact, err: errors.New("boom")})
	if !q.submitting {
		t.Error("stale submission result was applied")
	}

	q.kind = forms.KindDeal
	q, _ = q.handleMsg(quickAddContactsMsg{token: "stale", contacts: []models.Contact{{ID: 1}}})
	if len(q.contacts) != 0 {
		t.Error("stale contact load was applied")
	}
}
