// ABOUTME: Deal mock data service
// ABOUTME: Async CRUD, stage queries, and pipeline statistics over the in-memory deal store
package services

import (
	"context"
	"time"

	"github.com/harperreed/pipelinepro/models"
	"github.com/harperreed/pipelinepro/store"
)

const latencyStats = 200 * time.Millisecond

// DealService exposes async CRUD and pipeline queries over a deal store.
type DealService struct {
	store *store.Store[models.Deal]
	delay Delayer
}

func NewDealService(st *store.Store[models.Deal], delay Delayer) *DealService {
	return &DealService{store: st, delay: delay}
}

// DealPatch lists exactly the mutable deal fields.
type DealPatch struct {
	Title             *string
	Value             *float64
	Stage             *string
	Probability       *float64
	ContactID         *int
	ExpectedCloseDate *time.Time
}

func (p DealPatch) apply(d models.Deal) models.Deal {
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.Value != nil {
		d.Value = *p.Value
	}
	if p.Stage != nil {
		d.Stage = *p.Stage
	}
	if p.Probability != nil {
		d.Probability = *p.Probability
	}
	if p.ContactID != nil {
		d.ContactID = *p.ContactID
	}
	if p.ExpectedCloseDate != nil {
		t := *p.ExpectedCloseDate
		d.ExpectedCloseDate = &t
	}
	return d
}

// StageStats accumulates deal count and summed value for one stage.
type StageStats struct {
	Count int
	Value float64
}

// PipelineStats maps each canonical stage to its aggregate. Every
// stage bucket is always present, even when empty.
type PipelineStats map[string]StageStats

func (s *DealService) GetAll(ctx context.Context) ([]models.Deal, error) {
	if err := s.delay.Delay(ctx, latencyList); err != nil {
		return nil, err
	}
	return s.store.All(), nil
}

func (s *DealService) GetByID(ctx context.Context, id int) (models.Deal, error) {
	if err := s.delay.Delay(ctx, latencyGet); err != nil {
		return models.Deal{}, err
	}
	return s.store.Get(id)
}

func (s *DealService) Create(ctx context.Context, deal models.Deal) (models.Deal, error) {
	if err := s.delay.Delay(ctx, latencyWrite); err != nil {
		return models.Deal{}, err
	}
	if deal.Stage == "" {
		deal.Stage = models.StageLead
	}
	return s.store.Insert(deal), nil
}

func (s *DealService) Update(ctx context.Context, id int, patch DealPatch) (models.Deal, error) {
	if err := s.delay.Delay(ctx, latencyWrite); err != nil {
		return models.Deal{}, err
	}
	existing, err := s.store.Get(id)
	if err != nil {
		return models.Deal{}, err
	}
	return s.store.Replace(id, patch.apply(existing))
}

// UpdateStage moves a deal to a new pipeline stage without touching
// any other field.
func (s *DealService) UpdateStage(ctx context.Context, id int, stage string) (models.Deal, error) {
	if err := s.delay.Delay(ctx, 350*time.Millisecond); err != nil {
		return models.Deal{}, err
	}
	existing, err := s.store.Get(id)
	if err != nil {
		return models.Deal{}, err
	}
	existing.Stage = stage
	return s.store.Replace(id, existing)
}

func (s *DealService) Delete(ctx context.Context, id int) error {
	if err := s.delay.Delay(ctx, latencyDelete); err != nil {
		return err
	}
	return s.store.Remove(id)
}

func (s *DealService) GetByStage(ctx context.Context, stage string) ([]models.Deal, error) {
	if err := s.delay.Delay(ctx, latencyGet); err != nil {
		return nil, err
	}
	var out []models.Deal
	for _, d := range s.store.All() {
		if d.Stage == stage {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *DealService) GetByContactID(ctx context.Context, contactID int) ([]models.Deal, error) {
	if err := s.delay.Delay(ctx, latencySearch); err != nil {
		return nil, err
	}
	var out []models.Deal
	for _, d := range s.store.All() {
		if d.ContactID == contactID {
			out = append(out, d)
		}
	}
	return out, nil
}

// GetPipelineStats groups all deals into the fixed six stage buckets,
// accumulating count and summed value. Deals in an unknown stage are
// silently ignored.
func (s *DealService) GetPipelineStats(ctx context.Context) (PipelineStats, error) {
	if err := s.delay.Delay(ctx, latencyStats); err != nil {
		return nil, err
	}

	stats := make(PipelineStats, len(models.PipelineOrder))
	for _, stage := range models.PipelineOrder {
		stats[stage] = StageStats{}
	}

	for _, d := range s.store.All() {
		bucket, ok := stats[d.Stage]
		if !ok {
			continue
		}
		bucket.Count++
		bucket.Value += d.Value
		stats[d.Stage] = bucket
	}

	return stats, nil
}
