// ABOUTME: Contact mock data service
// ABOUTME: Async CRUD and search over the in-memory contact store
package services

import (
	"context"
	"strings"
	"time"

	"github.com/harperreed/pipelinepro/models"
	"github.com/harperreed/pipelinepro/store"
)

// Per-operation latencies, mirroring what a small REST backend feels like.
const (
	latencyList   = 300 * time.Millisecond
	latencyGet    = 200 * time.Millisecond
	latencyWrite  = 400 * time.Millisecond
	latencyDelete = 300 * time.Millisecond
	latencySearch = 250 * time.Millisecond
)

// ContactService exposes async CRUD and query operations over a
// contact store, standing in for a real backend.
type ContactService struct {
	store *store.Store[models.Contact]
	delay Delayer
}

func NewContactService(st *store.Store[models.Contact], delay Delayer) *ContactService {
	return &ContactService{store: st, delay: delay}
}

// ContactPatch lists exactly the mutable contact fields. Nil fields
// are left untouched by Update.
type ContactPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Company   *string
	Position  *string
	Tags      *[]string
	Status    *string
}

func (p ContactPatch) apply(c models.Contact) models.Contact {
	if p.FirstName != nil {
		c.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		c.LastName = *p.LastName
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Company != nil {
		c.Company = *p.Company
	}
	if p.Position != nil {
		c.Position = *p.Position
	}
	if p.Tags != nil {
		c.Tags = *p.Tags
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	return c
}

// ContactFilters narrows Search results. Companies is a membership
// set; Tags matches contacts sharing at least one tag. Both are ANDed
// with each other and with the text query.
type ContactFilters struct {
	Companies []string
	Tags      []string
}

func (s *ContactService) GetAll(ctx context.Context) ([]models.Contact, error) {
	if err := s.delay.Delay(ctx, latencyList); err != nil {
		return nil, err
	}
	return s.store.All(), nil
}

func (s *ContactService) GetByID(ctx context.Context, id int) (models.Contact, error) {
	if err := s.delay.Delay(ctx, latencyGet); err != nil {
		return models.Contact{}, err
	}
	return s.store.Get(id)
}

func (s *ContactService) Create(ctx context.Context, contact models.Contact) (models.Contact, error) {
	if err := s.delay.Delay(ctx, latencyWrite); err != nil {
		return models.Contact{}, err
	}
	if contact.Status == "" {
		contact.Status = models.ContactStatusActive
	}
	return s.store.Insert(contact), nil
}

func (s *ContactService) Update(ctx context.Context, id int, patch ContactPatch) (models.Contact, error) {
	if err := s.delay.Delay(ctx, latencyWrite); err != nil {
		return models.Contact{}, err
	}
	existing, err := s.store.Get(id)
	if err != nil {
		return models.Contact{}, err
	}
	return s.store.Replace(id, patch.apply(existing))
}

func (s *ContactService) Delete(ctx context.Context, id int) error {
	if err := s.delay.Delay(ctx, latencyDelete); err != nil {
		return err
	}
	return s.store.Remove(id)
}

// Search performs a case-insensitive substring match of query across
// name, email, company, position, and tags, then applies filters.
func (s *ContactService) Search(ctx context.Context, query string, filters ContactFilters) ([]models.Contact, error) {
	if err := s.delay.Delay(ctx, latencySearch); err != nil {
		return nil, err
	}

	results := s.store.All()

	if query != "" {
		term := strings.ToLower(query)
		var matched []models.Contact
		for _, c := range results {
			if contactMatches(c, term) {
				matched = append(matched, c)
			}
		}
		results = matched
	}

	if len(filters.Companies) > 0 {
		var matched []models.Contact
		for _, c := range results {
			if containsString(filters.Companies, c.Company) {
				matched = append(matched, c)
			}
		}
		results = matched
	}

	if len(filters.Tags) > 0 {
		var matched []models.Contact
		for _, c := range results {
			if anyOverlap(filters.Tags, c.Tags) {
				matched = append(matched, c)
			}
		}
		results = matched
	}

	return results, nil
}

func contactMatches(c models.Contact, term string) bool {
	if strings.Contains(strings.ToLower(c.FirstName), term) ||
		strings.Contains(strings.ToLower(c.LastName), term) ||
		strings.Contains(strings.ToLower(c.Email), term) ||
		strings.Contains(strings.ToLower(c.Company), term) ||
		strings.Contains(strings.ToLower(c.Position), term) {
		return true
	}
	for _, tag := range c.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func anyOverlap(want, have []string) bool {
	for _, w := range want {
		if containsString(have, w) {
			return true
		}
	}
	return false
}
