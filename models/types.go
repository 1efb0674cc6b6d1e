// ABOUTME: Data models for CRM entities
// ABOUTME: Defines Contact, Deal, Task, and Activity structs with stage/priority enums
package models

import (
	"strings"
	"time"
)

type Contact struct {
	ID        int       `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	Position  string    `json:"position,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName joins first and last name, tolerating either being empty.
func (c Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

type Deal struct {
	ID                int        `json:"id"`
	Title             string     `json:"title"`
	Value             float64    `json:"value"`
	Stage             string     `json:"stage"`
	Probability       float64    `json:"probability"`
	ContactID         int        `json:"contact_id,omitempty"`
	ExpectedCloseDate *time.Time `json:"expected_close_date,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type Task struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    string     `json:"priority"`
	ContactID   int        `json:"contact_id,omitempty"`
	DealID      int        `json:"deal_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type Activity struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	Subject   string    `json:"subject"`
	Content   string    `json:"content,omitempty"`
	ContactID int       `json:"contact_id,omitempty"`
	DealID    int       `json:"deal_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Deal stages. This is the canonical pipeline; the stats buckets and the
// probability table are both keyed on it.
const (
	StageLead        = "lead"
	StageQualified   = "qualified"
	StageProposal    = "proposal"
	StageNegotiation = "negotiation"
	StageClosedWon   = "closed-won"
	StageClosedLost  = "closed-lost"
)

// PipelineOrder lists the stages in funnel order.
var PipelineOrder = []string{
	StageLead,
	StageQualified,
	StageProposal,
	StageNegotiation,
	StageClosedWon,
	StageClosedLost,
}

// ValidStage reports whether stage is one of the canonical pipeline stages.
func ValidStage(stage string) bool {
	for _, s := range PipelineOrder {
		if s == stage {
			return true
		}
	}
	return false
}

// StageProbability returns the default win probability for a stage.
// Used when a deal is created without an explicit probability.
func StageProbability(stage string) float64 {
	switch stage {
	case StageLead:
		return 10
	case StageQualified:
		return 25
	case StageProposal:
		return 50
	case StageNegotiation:
		return 75
	default:
		return 90
	}
}

// Contact status constants.
const (
	ContactStatusActive   = "active"
	ContactStatusInactive = "inactive"
)

// Task priority constants.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Activity type constants.
const (
	ActivityEmail   = "email"
	ActivityCall    = "call"
	ActivityMeeting = "meeting"
	ActivityNote    = "note"
)

// ValidActivityType reports whether t is a known activity type.
func ValidActivityType(t string) bool {
	switch t {
	case ActivityEmail, ActivityCall, ActivityMeeting, ActivityNote:
		return true
	}
	return false
}

// ValidPriority reports whether p is a known task priority.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
