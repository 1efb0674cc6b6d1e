// ABOUTME: Tests for the contact mock data service
// ABOUTME: Covers CRUD semantics, search matching, and filter combination
package services

import (
	"context"
	"testing"

	"github.com/harperreed/pipelinepro/models"
	"github.com/harperreed/pipelinepro/store"
)

func newContactService(seed []models.Contact) *ContactService {
	return NewContactService(store.New("contact", seed), NopDelayer{})
}

func searchSeed() []models.Contact {
	return []models.Contact{
		{ID: 1, FirstName: "Sarah", LastName: "Chen", Email: "sarah@acmecorp.com", Company: "Acme Corp", Position: "VP of Engineering", Tags: []string{"enterprise"}},
		{ID: 2, FirstName: "Marcus", LastName: "Webb", Email: "marcus@brightlabs.io", Company: "Bright Labs", Position: "Founder", Tags: []string{"startup"}},
		{ID: 3, FirstName: "Priya", LastName: "Raman", Email: "priya@northwind.com", Company: "Northwind", Position: "Buyer", Tags: []string{"acme-alumni"}},
	}
}

func TestContactCreateDefaultsStatus(t *testing.T) {
	svc := newContactService(nil)

	contact, err := svc.Create(context.Background(), models.Contact{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if contact.ID != 1 {
		t.Errorf("got ID %d, want 1", contact.ID)
	}
	if contact.Status != models.ContactStatusActive {
		t.Errorf("got status %q, want %q", contact.Status, models.ContactStatusActive)
	}
}

func TestContactUpdateAppliesOnlyPatchedFields(t *testing.T) {
	svc := newContactService(nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, models.Contact{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Company: "Analytical Engines"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	email := "countess@example.com"
	updated, err := svc.Update(ctx, created.ID, ContactPatch{Email: &email})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Email != email {
		t.Errorf("email not updated, got %q", updated.Email)
	}
	if updated.Company != "Analytical Engines" {
		t.Errorf("unpatched field changed, got %q", updated.Company)
	}
	if updated.ID != created.ID {
		t.Errorf("identity changed to %d", updated.ID)
	}
}

func TestContactDeleteThenGetFails(t *testing.T) {
	svc := newContactService(nil)
	ctx := context.Background()

	created, _ := svc.Create(ctx, models.Contact{FirstName: "Ada", LastName: "Lovelace"})

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := svc.GetByID(ctx, created.ID); !store.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestContactSearchMatchesAllTextFields(t *testing.T) {
	svc := newContactService(searchSeed())

	results, err := svc.Search(context.Background(), "acme", ContactFilters{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	// Matches Sarah (email + company) and Priya (tag), not Marcus.
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].ID != 1 || results[1].ID != 3 {
		t.Errorf("got IDs %d and %d, want 1 and 3", results[0].ID, results[1].ID)
	}
}

func TestContactSearchIsCaseInsensitive(t *testing.T) {
	svc := newContactService(searchSeed())

	results, err := svc.Search(context.Background(), "ACME", ContactFilters{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("got %d results, want 2", len(results))
	}
}

func TestContactSearchFiltersAreANDed(t *testing.T) {
	svc := newContactService(searchSeed())
	ctx := context.Background()

	// Text matches Sarah and Priya; the company filter keeps Sarah only.
	results, err := svc.Search(ctx, "acme", ContactFilters{Companies: []string{"Acme Corp"}})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 || results[0].ID != 1 {
		t.Fatalf("company filter not ANDed with text search: %v", results)
	}

	// Tag filter alone.
	results, err = svc.Search(ctx, "", ContactFilters{Tags: []string{"startup", "missing"}})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 || results[0].ID != 2 {
		t.Fatalf("tag filter mismatch: %v", results)
	}

	// Empty query and filters returns everything.
	results, _ = svc.Search(ctx, "", ContactFilters{})
	if len(results) != 3 {
		t.Errorf("unfiltered search got %d results, want 3", len(results))
	}
}

func TestContactOperationsHonorContextCancellation(t *testing.T) {
	svc := NewContactService(store.New[models.Contact]("contact", nil), ClockDelayer{Scale: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.GetAll(ctx); err == nil {
		t.Error("expected error from canceled context")
	}
	if _, err := svc.Create(ctx, models.Contact{FirstName: "x"}); err == nil {
		t.Error("expected error from canceled context")
	}
}
