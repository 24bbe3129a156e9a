package massageRepo

import (
	"context"
	"fmt"
	"sync"

	"kympulse/database"
	"kympulse/models"

	"github.com/google/uuid"
)

type MemoryMassageRepo struct {
	mu     sync.RWMutex
	order  []string
	events map[string]models.ServiceEvent
	err    error
}

func NewMemoryMassageRepo() *MemoryMassageRepo {
	return &MemoryMassageRepo{events: make(map[string]models.ServiceEvent)}
}

func (r *MemoryMassageRepo) Create(_ context.Context, event models.ServiceEvent) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return "", r.err
	}
	event.ID = uuid.New().String()
	r.order = append(r.order, event.ID)
	r.events[event.ID] = event
	return event.ID, nil
}

func (r *MemoryMassageRepo) AttachSurvey(_ context.Context, id string, survey models.Survey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	event, ok := r.events[id]
	if !ok {
		return fmt.Errorf("service event %s: %w", id, database.ErrNotFound)
	}
	event.Survey = &survey
	r.events[id] = event
	return nil
}

// GetByID returns an event; memory only, for asserting on captured events.
func (r *MemoryMassageRepo) GetByID(_ context.Context, id string) (*models.ServiceEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	event, ok := r.events[id]
	if !ok {
		return nil, fmt.Errorf("service event %s: %w", id, database.ErrNotFound)
	}
	return &event, nil
}

// All returns the stored events in creation order.
func (r *MemoryMassageRepo) All() []models.ServiceEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.ServiceEvent, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.events[id])
	}
	return out
}

// FailWith makes every write return err, simulating an unreachable store.
func (r *MemoryMassageRepo) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}
