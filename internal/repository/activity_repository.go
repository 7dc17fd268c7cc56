// Package repository holds the in-memory activity store.
package repository

import (
	"sync"

	"github.com/mishasvintus/mergington_activities/internal/domain"
)

type activityEntry struct {
	mu       sync.Mutex
	activity domain.Activity
}

// ActivityRepository keeps activities in process memory.
// The set of activity names is fixed at construction; only rosters change.
type ActivityRepository struct {
	seed    map[string]domain.Activity
	entries map[string]*activityEntry
}

// NewActivityRepository creates a repository seeded with the given activities.
func NewActivityRepository(seed map[string]domain.Activity) *ActivityRepository {
	r := &ActivityRepository{
		seed:    make(map[string]domain.Activity, len(seed)),
		entries: make(map[string]*activityEntry, len(seed)),
	}
	for name, a := range seed {
		r.seed[name] = a.Clone()
		r.entries[name] = &activityEntry{activity: a.Clone()}
	}
	return r
}

// GetAll returns a snapshot of every activity keyed by name.
func (r *ActivityRepository) GetAll() map[string]domain.Activity {
	out := make(map[string]domain.Activity, len(r.entries))
	for name, e := range r.entries {
		e.mu.Lock()
		out[name] = e.activity.Clone()
		e.mu.Unlock()
	}
	return out
}

// Get returns a snapshot of a single activity.
func (r *ActivityRepository) Get(name string) (domain.Activity, error) {
	e, ok := r.entries[name]
	if !ok {
		return domain.Activity{}, ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.activity.Clone(), nil
}

// AddParticipant appends email to the activity roster.
// Duplicates and capacity are not checked.
func (r *ActivityRepository) AddParticipant(name, email string) error {
	e, ok := r.entries[name]
	if !ok {
		return ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.activity.Participants = append(e.activity.Participants, email)
	return nil
}

// RemoveParticipant removes the first occurrence of email from the activity roster.
func (r *ActivityRepository) RemoveParticipant(name, email string) error {
	e, ok := r.entries[name]
	if !ok {
		return ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	participants := e.activity.Participants
	for i, p := range participants {
		if p == email {
			e.activity.Participants = append(participants[:i:i], participants[i+1:]...)
			return nil
		}
	}
	return ErrNotEnrolled
}

// Reset restores every roster to the seed definition.
func (r *ActivityRepository) Reset() {
	for name, e := range r.entries {
		e.mu.Lock()
		e.activity = r.seed[name].Clone()
		e.mu.Unlock()
	}
}
