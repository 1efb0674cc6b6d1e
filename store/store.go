// ABOUTME: Generic in-memory entity store
// ABOUTME: Ordered record collection with monotonic integer identities and timestamp stamping
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// NotFoundError is returned when an identity is absent from a store.
type NotFoundError struct {
	Kind string
	ID   int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Record is the contract an entity must satisfy to live in a Store.
// Implementations use value receivers so stored records are copied on
// the way in and out.
type Record[T any] interface {
	Identity() int
	CreatedTime() time.Time
	Stamped(id int, created, updated time.Time) T
	Clone() T
}

// Store holds an ordered collection of records in process memory.
// It is constructed once at startup and handed to whichever service
// needs it; tests build fresh instances for isolation.
type Store[T Record[T]] struct {
	mu    sync.Mutex
	kind  string
	recs  []T
	clock func() time.Time
}

// New builds a store seeded with the given records, kept in order.
// Seed records are stored as-is; their identities and timestamps are
// trusted.
func New[T Record[T]](kind string, seed []T) *Store[T] {
	s := &Store[T]{kind: kind, clock: time.Now}
	for _, r := range seed {
		s.recs = append(s.recs, r.Clone())
	}
	return s
}

// SetClock overrides the timestamp source. Intended for tests.
func (s *Store[T]) SetClock(clock func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock = clock
}

// All returns snapshot copies of every record, in store order.
func (s *Store[T]) All() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]T, 0, len(s.recs))
	for _, r := range s.recs {
		out = append(out, r.Clone())
	}
	return out
}

// Get returns a snapshot copy of the record with the given identity.
func (s *Store[T]) Get(id int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		var zero T
		return zero, &NotFoundError{Kind: s.kind, ID: id}
	}
	return s.recs[i].Clone(), nil
}

// Insert assigns a fresh identity (max existing + 1, or 1 when empty),
// stamps both timestamps, appends the record, and returns a copy of
// what was stored.
func (s *Store[T]) Insert(rec T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for _, r := range s.recs {
		if r.Identity() > maxID {
			maxID = r.Identity()
		}
	}

	now := s.clock()
	stored := rec.Clone().Stamped(maxID+1, now, now)
	s.recs = append(s.recs, stored)
	return stored.Clone()
}

// Replace swaps the record at the given identity for rec. The identity
// is forced back to id regardless of what rec carries, CreatedAt is
// preserved from the existing record, and UpdatedAt is refreshed.
func (s *Store[T]) Replace(id int, rec T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		var zero T
		return zero, &NotFoundError{Kind: s.kind, ID: id}
	}

	stored := rec.Clone().Stamped(id, s.recs[i].CreatedTime(), s.clock())
	s.recs[i] = stored
	return stored.Clone(), nil
}

// Remove deletes the record with the given identity. Hard removal, no
// tombstone.
func (s *Store[T]) Remove(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return &NotFoundError{Kind: s.kind, ID: id}
	}
	s.recs = append(s.recs[:i], s.recs[i+1:]...)
	return nil
}

// Len returns the number of records currently held.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.recs)
}

func (s *Store[T]) index(id int) int {
	for i, r := range s.recs {
		if r.Identity() == id {
			return i
		}
	}
	return -1
}
