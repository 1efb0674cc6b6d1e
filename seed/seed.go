// ABOUTME: Bundled seed data for the in-memory stores
// ABOUTME: Embeds per-entity JSON snapshots with an optional on-disk override directory
package seed

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harperreed/pipelinepro/models"
	"github.com/harperreed/pipelinepro/store"
)

//go:embed contacts.json deals.json tasks.json activities.json
var snapshots embed.FS

// Stores bundles the freshly seeded entity stores.
type Stores struct {
	Contacts   *store.Store[models.Contact]
	Deals      *store.Store[models.Deal]
	Tasks      *store.Store[models.Task]
	Activities *store.Store[models.Activity]
}

// Load builds one store per entity type from the bundled snapshots.
// When overrideDir is non-empty, a file of the same name there
// replaces the embedded snapshot for that entity; missing files fall
// back to the bundled data.
func Load(overrideDir string) (*Stores, error) {
	contacts, err := loadFile[models.Contact](overrideDir, "contacts.json")
	if err != nil {
		return nil, err
	}
	deals, err := loadFile[models.Deal](overrideDir, "deals.json")
	if err != nil {
		return nil, err
	}
	tasks, err := loadFile[models.Task](overrideDir, "tasks.json")
	if err != nil {
		return nil, err
	}
	activities, err := loadFile[models.Activity](overrideDir, "activities.json")
	if err != nil {
		return nil, err
	}

	return &Stores{
		Contacts:   store.New("contact", contacts),
		Deals:      store.New("deal", deals),
		Tasks:      store.New("task", tasks),
		Activities: store.New("activity", activities),
	}, nil
}

// Empty builds unseeded stores. Used by tests that want a blank slate.
func Empty() *Stores {
	return &Stores{
		Contacts:   store.New[models.Contact]("contact", nil),
		Deals:      store.New[models.Deal]("deal", nil),
		Tasks:      store.New[models.Task]("task", nil),
		Activities: store.New[models.Activity]("activity", nil),
	}
}

func loadFile[T any](overrideDir, name string) ([]T, error) {
	data, err := readSnapshot(overrideDir, name)
	if err != nil {
		return nil, err
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", name, err)
	}
	return records, nil
}

func readSnapshot(overrideDir, name string) ([]byte, error) {
	if overrideDir != "" {
		path := filepath.Join(overrideDir, name)
		data, err := os.ReadFile(path)
		if err == nil {
			return data, nil
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read seed override %s: %w", path, err)
		}
	}

	data, err := snapshots.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read bundled seed %s: %w", name, err)
	}
	return data, nil
}
