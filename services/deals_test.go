// ABOUTME: Tests for the deal mock data service
// ABOUTME: Covers CRUD, stage queries, stage moves, and pipeline statistics
package services

import (
	"context"
	"testing"

	"github.com/harperreed/pipelinepro/models"
	"github.com/harperreed/pipelinepro/store"
)

func newDealService(seed []models.Deal) *DealService {
	return NewDealService(store.New("deal", seed), NopDelayer{})
}

func pipelineSeed() []models.Deal {
	return []models.Deal{
		{ID: 1, Title: "A", Value: 1000, Stage: models.StageLead},
		{ID: 2, Title: "B", Value: 2000, Stage: models.StageLead},
		{ID: 3, Title: "C", Value: 5000, Stage: models.StageProposal, ContactID: 7},
		{ID: 4, Title: "D", Value: 8000, Stage: models.StageClosedWon, ContactID: 7},
		{ID: 5, Title: "E", Value: 300, Stage: "legacy-stage"},
	}
}

func TestDealCreateDefaultsStage(t *testing.T) {
	svc := newDealService(nil)

	deal, err := svc.Create(context.Background(), models.Deal{Title: "New Deal", Value: 100})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if deal.ID != 1 {
		t.Errorf("got ID %d, want 1", deal.ID)
	}
	if deal.Stage != models.StageLead {
		t.Errorf("got stage %q, want %q", deal.Stage, models.StageLead)
	}
}

func TestDealUpdateIgnoresPayloadIdentity(t *testing.T) {
	svc := newDealService(nil)
	ctx := context.Background()

	created, _ := svc.Create(ctx, models.Deal{Title: "Deal", Value: 100, Stage: models.StageLead})

	title := "Renamed"
	updated, err := svc.Update(ctx, created.ID, DealPatch{Title: &title})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.ID != created.ID {
		t.Errorf("identity changed to %d", updated.ID)
	}
	if updated.Title != "Renamed" {
		t.Errorf("title not updated: %q", updated.Title)
	}
	if updated.Stage != models.StageLead {
		t.Errorf("unpatched stage changed: %q", updated.Stage)
	}
}

func TestDealUpdateStage(t *testing.T) {
	svc := newDealService(nil)
	ctx := context.Background()

	created, _ := svc.Create(ctx, models.Deal{Title: "Deal", Value: 100, Stage: models.StageQualified})

	moved, err := svc.UpdateStage(ctx, created.ID, models.StageNegotiation)
	if err != nil {
		t.Fatalf("UpdateStage failed: %v", err)
	}

	if moved.Stage != models.StageNegotiation {
		t.Errorf("got stage %q, want %q", moved.Stage, models.StageNegotiation)
	}
	if moved.Title != "Deal" || moved.Value != 100 {
		t.Error("UpdateStage touched unrelated fields")
	}
}

func TestDealUpdateStageMissingReturnsNotFound(t *testing.T) {
	svc := newDealService(nil)

	if _, err := svc.UpdateStage(context.Background(), 42, models.StageLead); !store.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestDealGetByStage(t *testing.T) {
	svc := newDealService(pipelineSeed())

	deals, err := svc.GetByStage(context.Background(), models.StageLead)
	if err != nil {
		t.Fatalf("GetByStage failed: %v", err)
	}
	if len(deals) != 2 {
		t.Errorf("got %d deals, want 2", len(deals))
	}
}

func TestDealGetByContactID(t *testing.T) {
	svc := newDealService(pipelineSeed())

	deals, err := svc.GetByContactID(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetByContactID failed: %v", err)
	}
	if len(deals) != 2 {
		t.Fatalf("got %d deals, want 2", len(deals))
	}
	for _, d := range deals {
		if d.ContactID != 7 {
			t.Errorf("deal %d has contact %d, want 7", d.ID, d.ContactID)
		}
	}
}

func TestPipelineStatsAggregation(t *testing.T) {
	svc := newDealService(pipelineSeed())

	stats, err := svc.GetPipelineStats(context.Background())
	if err != nil {
		t.Fatalf("GetPipelineStats failed: %v", err)
	}

	if got := stats[models.StageLead]; got.Count != 2 || got.Value != 3000 {
		t.Errorf("lead bucket = %+v, want {2 3000}", got)
	}
	if got := stats[models.StageProposal]; got.Count != 1 || got.Value != 5000 {
		t.Errorf("proposal bucket = %+v, want {1 5000}", got)
	}
	if got := stats[models.StageClosedWon]; got.Count != 1 || got.Value != 8000 {
		t.Errorf("closed-won bucket = %+v, want {1 8000}", got)
	}

	// Every canonical bucket is present, even if empty.
	for _, stage := range models.PipelineOrder {
		if _, ok := stats[stage]; !ok {
			t.Errorf("missing bucket for %s", stage)
		}
	}

	// Unknown stages are excluded without error.
	if _, ok := stats["legacy-stage"]; ok {
		t.Error("unknown stage leaked into stats")
	}
	if len(stats) != len(models.PipelineOrder) {
		t.Errorf("got %d buckets, want %d", len(stats), len(models.PipelineOrder))
	}
}
