// ABOUTME: Task mock data service
// ABOUTME: Async CRUD over the in-memory task store
package services

import (
	"context"
	"time"

	"github.com/harperreed/pipelinepro/models"
	"github.com/harperreed/pipelinepro/store"
)

type TaskService struct {
	store *store.Store[models.Task]
	delay Delayer
}

func NewTaskService(st *store.Store[models.Task], delay Delayer) *TaskService {
	return &TaskService{store: st, delay: delay}
}

// TaskPatch lists exactly the mutable task fields.
type TaskPatch struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Priority    *string
	ContactID   *int
	DealID      *int
}

func (p TaskPatch) apply(t models.Task) models.Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.DueDate != nil {
		d := *p.DueDate
		t.DueDate = &d
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.ContactID != nil {
		t.ContactID = *p.ContactID
	}
	if p.DealID != nil {
		t.DealID = *p.DealID
	}
	return t
}

func (s *TaskService) GetAll(ctx context.Context) ([]models.Task, error) {
	if err := s.delay.Delay(ctx, latencyList); err != nil {
		return nil, err
	}
	return s.store.All(), nil
}

func (s *TaskService) GetByID(ctx context.Context, id int) (models.Task, error) {
	if err := s.delay.Delay(ctx, latencyGet); err != nil {
		return models.Task{}, err
	}
	return s.store.Get(id)
}

func (s *TaskService) Create(ctx context.Context, task models.Task) (models.Task, error) {
	if err := s.delay.Delay(ctx, latencyWrite); err != nil {
		return models.Task{}, err
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	return s.store.Insert(task), nil
}

func (s *TaskService) Update(ctx context.Context, id int, patch TaskPatch) (models.Task, error) {
	if err := s.delay.Delay(ctx, latencyWrite); err != nil {
		return models.Task{}, err
	}
	existing, err := s.store.Get(id)
	if err != nil {
		return models.Task{}, err
	}
	return s.store.Replace(id, patch.apply(existing))
}

func (s *TaskService) Delete(ctx context.Context, id int) error {
	if err := s.delay.Delay(ctx, latencyDelete); err != nil {
		return err
	}
	return s.store.Remove(id)
}
