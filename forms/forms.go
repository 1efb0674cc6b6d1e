// ABOUTME: Quick-add form variants, one per entity kind
// ABOUTME: Field definitions, synchronous validation, and payload builders
package forms

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/harperreed/pipelinepro/models"
)

// Kind selects which entity variant a quick-add form collects.
type Kind int

const (
	KindContact Kind = iota
	KindDeal
	KindTask
	KindActivity
)

// Kinds lists every form variant in tab order.
var Kinds = []Kind{KindContact, KindDeal, KindTask, KindActivity}

func (k Kind) Label() string {
	switch k {
	case KindContact:
		return "Contact"
	case KindDeal:
		return "Deal"
	case KindTask:
		return "Task"
	case KindActivity:
		return "Activity"
	}
	return ""
}

// Field describes one input in a form variant. A non-nil Options
// slice marks a selection control rather than free text.
type Field struct {
	Key         string
	Label       string
	Placeholder string
	Required    bool
	Options     []string
}

// Values maps field keys to their raw string input.
type Values map[string]string

// Errors maps field keys to validation messages. Empty means valid.
type Errors map[string]string

const dateLayout = "2006-01-02"

var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Fields returns the input set for a variant. The switch is
// exhaustive over Kinds.
func Fields(kind Kind) []Field {
	switch kind {
	case KindContact:
		return []Field{
			{Key: "firstName", Label: "First Name", Placeholder: "John", Required: true},
			{Key: "lastName", Label: "Last Name", Placeholder: "Doe", Required: true},
			{Key: "email", Label: "Email", Placeholder: "john@example.com", Required: true},
			{Key: "phone", Label: "Phone", Placeholder: "+1 (555) 123-4567"},
			{Key: "company", Label: "Company", Placeholder: "Acme Corp"},
			{Key: "position", Label: "Position", Placeholder: "Sales Manager"},
			{Key: "tags", Label: "Tags (comma separated)", Placeholder: "lead, enterprise, hot"},
		}
	case KindDeal:
		return []Field{
			{Key: "title", Label: "Deal Title", Placeholder: "Q1 Enterprise License", Required: true},
			{Key: "value", Label: "Value", Placeholder: "50000", Required: true},
			{Key: "stage", Label: "Stage", Options: models.PipelineOrder},
			{Key: "probability", Label: "Probability (%)", Placeholder: "75"},
			{Key: "contactId", Label: "Contact", Required: true},
			{Key: "expectedCloseDate", Label: "Expected Close Date", Placeholder: "2026-03-31"},
		}
	case KindTask:
		return []Field{
			{Key: "title", Label: "Task Title", Placeholder: "Follow up with client", Required: true},
			{Key: "description", Label: "Description", Placeholder: "Send follow-up email with proposal details"},
			{Key: "dueDate", Label: "Due Date", Placeholder: "2026-02-15", Required: true},
			{Key: "priority", Label: "Priority", Options: []string{models.PriorityLow, models.PriorityMedium, models.PriorityHigh}},
		}
	case KindActivity:
		return []Field{
			{Key: "type", Label: "Activity Type", Required: true, Options: []string{models.ActivityEmail, models.ActivityCall, models.ActivityMeeting, models.ActivityNote}},
			{Key: "subject", Label: "Subject", Placeholder: "Follow-up call", Required: true},
			{Key: "content", Label: "Content", Placeholder: "Discussed project requirements and timeline...", Required: true},
		}
	}
	return nil
}

// Validate runs the variant's synchronous checks. A non-empty result
// blocks submission; no service call may be made.
func Validate(kind Kind, v Values) Errors {
	errs := Errors{}

	for _, f := range Fields(kind) {
		if f.Required && strings.TrimSpace(v[f.Key]) == "" {
			errs[f.Key] = f.Label + " is required"
		}
	}

	switch kind {
	case KindContact:
		if email := strings.TrimSpace(v["email"]); email != "" && !emailRx.MatchString(email) {
			errs["email"] = "Enter a valid email address"
		}
	case KindDeal:
		if raw := strings.TrimSpace(v["value"]); raw != "" {
			val, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				errs["value"] = "Value must be a number"
			} else if val < 0 {
				errs["value"] = "Value must be zero or greater"
			}
		}
		if raw := strings.TrimSpace(v["probability"]); raw != "" {
			p, err := strconv.ParseFloat(raw, 64)
			if err != nil || p < 0 || p > 100 {
				errs["probability"] = "Probability must be between 0 and 100"
			}
		}
		if stage := strings.TrimSpace(v["stage"]); stage != "" && !models.ValidStage(stage) {
			errs["stage"] = "Unknown stage"
		}
		if raw := strings.TrimSpace(v["expectedCloseDate"]); raw != "" {
			if _, err := time.Parse(dateLayout, raw); err != nil {
				errs["expectedCloseDate"] = "Use YYYY-MM-DD"
			}
		}
	case KindTask:
		if raw := strings.TrimSpace(v["dueDate"]); raw != "" {
			if _, err := time.Parse(dateLayout, raw); err != nil {
				errs["dueDate"] = "Use YYYY-MM-DD"
			}
		}
		if p := strings.TrimSpace(v["priority"]); p != "" && !models.ValidPriority(p) {
			errs["priority"] = "Unknown priority"
		}
	case KindActivity:
		if t := strings.TrimSpace(v["type"]); t != "" && !models.ValidActivityType(t) {
			errs["type"] = "Unknown activity type"
		}
	}

	return errs
}

// BuildContact normalizes validated contact form values into a
// creation payload. Tags are split on commas and trimmed.
func BuildContact(v Values) models.Contact {
	var tags []string
	for _, t := range strings.Split(v["tags"], ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	return models.Contact{
		FirstName: strings.TrimSpace(v["firstName"]),
		LastName:  strings.TrimSpace(v["lastName"]),
		Email:     strings.TrimSpace(v["email"]),
		Phone:     strings.TrimSpace(v["phone"]),
		Company:   strings.TrimSpace(v["company"]),
		Position:  strings.TrimSpace(v["position"]),
		Tags:      tags,
		Status:    models.ContactStatusActive,
	}
}

// BuildDeal normalizes validated deal form values. The stage defaults
// to lead, and a blank probability is derived from the stage.
func BuildDeal(v Values) models.Deal {
	stage := strings.TrimSpace(v["stage"])
	if stage == "" {
		stage = models.StageLead
	}

	value, _ := strconv.ParseFloat(strings.TrimSpace(v["value"]), 64)
	contactID, _ := strconv.Atoi(strings.TrimSpace(v["contactId"]))

	probability := models.StageProbability(stage)
	if raw := strings.TrimSpace(v["probability"]); raw != "" {
		if p, err := strconv.ParseFloat(raw, 64); err == nil {
			probability = p
		}
	}

	deal := models.Deal{
		Title:       strings.TrimSpace(v["title"]),
		Value:       value,
		Stage:       stage,
		Probability: probability,
		ContactID:   contactID,
	}

	if raw := strings.TrimSpace(v["expectedCloseDate"]); raw != "" {
		if t, err := time.Parse(dateLayout, raw); err == nil {
			deal.ExpectedCloseDate = &t
		}
	}

	return deal
}

// BuildTask normalizes validated task form values. Priority defaults
// to medium.
func BuildTask(v Values) models.Task {
	priority := strings.TrimSpace(v["priority"])
	if priority == "" {
		priority = models.PriorityMedium
	}

	contactID, _ := strconv.Atoi(strings.TrimSpace(v["contactId"]))
	dealID, _ := strconv.Atoi(strings.TrimSpace(v["dealId"]))

	task := models.Task{
		Title:       strings.TrimSpace(v["title"]),
		Description: strings.TrimSpace(v["description"]),
		Priority:    priority,
		ContactID:   contactID,
		DealID:      dealID,
	}

	if raw := strings.TrimSpace(v["dueDate"]); raw != "" {
		if t, err := time.Parse(dateLayout, raw); err == nil {
			task.DueDate = &t
		}
	}

	return task
}

// BuildActivity normalizes validated activity form values. Type
// defaults to note.
func BuildActivity(v Values) models.Activity {
	typ := strings.TrimSpace(v["type"])
	if typ == "" {
		typ = models.ActivityNote
	}

	contactID, _ := strconv.Atoi(strings.TrimSpace(v["contactId"]))
	dealID, _ := strconv.Atoi(strings.TrimSpace(v["dealId"]))

	return models.Activity{
		Type:      typ,
		Subject:   strings.TrimSpace(v["subject"]),
		Content:   strings.TrimSpace(v["content"]),
		ContactID: contactID,
		DealID:    dealID,
	}
}
