package memory

import (
	"context"
	"sync"

	"eventdesk/internal/domain"
)

// EventRepo is an in-memory domain.EventRepository with copy-on-write
// snapshots. Every mutation copies the collection slice and swaps the
// reference under the writer lock, so a snapshot handed to a reader is
// never modified afterwards and concurrent mutations serialize. Records
// inside a snapshot are immutable; Update clones before applying changes.
type EventRepo struct {
	mu     sync.RWMutex
	events []*domain.EventRecord
}

// NewEventRepo returns a repo initialized with the given seed snapshot.
// The seed slice is copied; callers may reuse it.
func NewEventRepo(seed []*domain.EventRecord) *EventRepo {
	r := &EventRepo{}
	r.Reset(seed)
	return r
}

// Reset replaces the whole collection with the given seed. Intended for
// process start and test isolation.
func (r *EventRepo) Reset(seed []*domain.EventRecord) {
	events := make([]*domain.EventRecord, len(seed))
	copy(events, seed)
	r.mu.Lock()
	r.events = events
	r.mu.Unlock()
}

// Len reports the current collection size.
func (r *EventRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.events)
}

// List returns a defensive copy of the current snapshot. Callers mutating
// the returned slice cannot corrupt the store.
func (r *EventRepo) List(ctx context.Context) ([]*domain.EventRecord, error) {
	r.mu.RLock()
	snapshot := r.events
	r.mu.RUnlock()
	out := make([]*domain.EventRecord, len(snapshot))
	copy(out, snapshot)
	return out, nil
}

// GetByID returns the record with the given id, or domain.ErrNotFound.
func (r *EventRepo) GetByID(ctx context.Context, id string) (*domain.EventRecord, error) {
	r.mu.RLock()
	snapshot := r.events
	r.mu.RUnlock()
	for _, e := range snapshot {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create appends the record to a new snapshot.
func (r *EventRepo) Create(ctx context.Context, event *domain.EventRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := make([]*domain.EventRecord, len(r.events), len(r.events)+1)
	copy(next, r.events)
	r.events = append(next, event)
	return nil
}

// Update runs apply against a clone of the stored record and publishes a
// new snapshot with the clone in place. The read-modify-write happens
// entirely inside the writer lock, so two concurrent updates of the same
// record never lose a change. An error from apply leaves the collection
// untouched.
func (r *EventRepo) Update(ctx context.Context, id string, apply func(*domain.EventRecord) error) (*domain.EventRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.events {
		if e.ID != id {
			continue
		}
		updated := e.Clone()
		if err := apply(updated); err != nil {
			return nil, err
		}
		next := make([]*domain.EventRecord, len(r.events))
		copy(next, r.events)
		next[i] = updated
		r.events = next
		return updated, nil
	}
	return nil, domain.ErrNotFound
}

// Delete removes the record with the given id from a new snapshot.
func (r *EventRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.events {
		if e.ID == id {
			next := make([]*domain.EventRecord, 0, len(r.events)-1)
			next = append(next, r.events[:i]...)
			next = append(next, r.events[i+1:]...)
			r.events = next
			return nil
		}
	}
	return domain.ErrNotFound
}
