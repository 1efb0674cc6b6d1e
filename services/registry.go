// ABOUTME: Service registry bundling one service per entity type
// ABOUTME: Constructed once at startup from seeded stores and handed to TUI/CLI
package services

import (
	"github.com/harperreed/pipelinepro/models"
	"github.com/harperreed/pipelinepro/store"
)

// Registry bundles the per-entity services so the TUI and CLI take a
// single handle.
type Registry struct {
	Contacts   *ContactService
	Deals      *DealService
	Tasks      *TaskService
	Activities *ActivityService
}

// NewRegistry wires a service over each seeded store with a shared
// delayer.
func NewRegistry(
	contacts *store.Store[models.Contact],
	deals *store.Store[models.Deal],
	tasks *store.Store[models.Task],
	activities *store.Store[models.Activity],
	delay Delayer,
) *Registry {
	return &Registry{
		Contacts:   NewContactService(contacts, delay),
		Deals:      NewDealService(deals, delay),
		Tasks:      NewTaskService(tasks, delay),
		Activities: NewActivityService(activities, delay),
	}
}
