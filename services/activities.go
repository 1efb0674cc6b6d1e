// ABOUTME: Activity mock data service
// ABOUTME: Async CRUD and contact-timeline queries over the in-memory activity store
package services

import (
	"context"

	"github.com/harperreed/pipelinepro/models"
	"github.com/harperreed/pipelinepro/store"
)

type ActivityService struct {
	store *store.Store[models.Activity]
	delay Delayer
}

func NewActivityService(st *store.Store[models.Activity], delay Delayer) *ActivityService {
	return &ActivityService{store: st, delay: delay}
}

// ActivityPatch lists exactly the mutable activity fields.
type ActivityPatch struct {
	Type      *string
	Subject   *string
	Content   *string
	ContactID *int
	DealID    *int
}

func (p ActivityPatch) apply(a models.Activity) models.Activity {
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.Subject != nil {
		a.Subject = *p.Subject
	}
	if p.Content != nil {
		a.Content = *p.Content
	}
	if p.ContactID != nil {
		a.ContactID = *p.ContactID
	}
	if p.DealID != nil {
		a.DealID = *p.DealID
	}
	return a
}

func (s *ActivityService) GetAll(ctx context.Context) ([]models.Activity, error) {
	if err := s.delay.Delay(ctx, latencyList); err != nil {
		return nil, err
	}
	return s.store.All(), nil
}

func (s *ActivityService) GetByID(ctx context.Context, id int) (models.Activity, error) {
	if err := s.delay.Delay(ctx, latencyGet); err != nil {
		return models.Activity{}, err
	}
	return s.store.Get(id)
}

func (s *ActivityService) Create(ctx context.Context, activity models.Activity) (models.Activity, error) {
	if err := s.delay.Delay(ctx, latencyWrite); err != nil {
		return models.Activity{}, err
	}
	if activity.Type == "" {
		activity.Type = models.ActivityNote
	}
	return s.store.Insert(activity), nil
}

func (s *ActivityService) Update(ctx context.Context, id int, patch ActivityPatch) (models.Activity, error) {
	if err := s.delay.Delay(ctx, latencyWrite); err != nil {
		return models.Activity{}, err
	}
	existing, err := s.store.Get(id)
	if err != nil {
		return models.Activity{}, err
	}
	return s.store.Replace(id, patch.apply(existing))
}

func (s *ActivityService) Delete(ctx context.Context, id int) error {
	if err := s.delay.Delay(ctx, latencyDelete); err != nil {
		return err
	}
	return s.store.Remove(id)
}

// GetByContactID returns the activity timeline for one contact.
func (s *ActivityService) GetByContactID(ctx context.Context, contactID int) ([]models.Activity, error) {
	if err := s.delay.Delay(ctx, latencySearch); err != nil {
		return nil, err
	}
	var out []models.Activity
	for _, a := range s.store.All() {
		if a.ContactID == contactID {
			out = append(out, a)
		}
	}
	return out, nil
}
