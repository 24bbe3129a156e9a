package serviceRepo

import (
	"context"
	"fmt"
	"sync"

	"kympulse/database"
	"kympulse/models"
)

// MemoryServiceRepo keeps services in process, in insertion order.
type MemoryServiceRepo struct {
	mu       sync.RWMutex
	order    []string
	services map[string][]string
	writes   int
}

func NewMemoryServiceRepo() *MemoryServiceRepo {
	return &MemoryServiceRepo{services: make(map[string][]string)}
}

func (r *MemoryServiceRepo) GetByID(_ context.Context, id string) (*models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids, ok := r.services[id]
	if !ok {
		return nil, fmt.Errorf("service %s: %w", id, database.ErrNotFound)
	}
	return &models.Service{ID: id, ProfessionalIDs: append([]string{}, ids...)}, nil
}

func (r *MemoryServiceRepo) ForEach(ctx context.Context, fn func(models.Service) error) error {
	r.mu.RLock()
	snapshot := make([]models.Service, 0, len(r.order))
	for _, id := range r.order {
		snapshot = append(snapshot, models.Service{ID: id, ProfessionalIDs: append([]string{}, r.services[id]...)})
	}
	r.mu.RUnlock()

	for _, s := range snapshot {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(s); err != nil {
			return err
		}
	}
	return nil
}

func (r *MemoryServiceRepo) AddProfessional(_ context.Context, serviceID, professionalID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids, ok := r.services[serviceID]
	if !ok {
		return fmt.Errorf("service %s: %w", serviceID, database.ErrNotFound)
	}
	for _, id := range ids {
		if id == professionalID {
			return nil
		}
	}
	r.writes++
	r.services[serviceID] = append(ids, professionalID)
	return nil
}

func (r *MemoryServiceRepo) ClearProfessionals(_ context.Context, serviceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.services[serviceID]; !ok {
		return fmt.Errorf("service %s: %w", serviceID, database.ErrNotFound)
	}
	r.writes++
	r.services[serviceID] = []string{}
	return nil
}

func (r *MemoryServiceRepo) Create(_ context.Context, service models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.services[service.ID]; exists {
		return fmt.Errorf("service %s already exists", service.ID)
	}
	r.order = append(r.order, service.ID)
	r.services[service.ID] = append([]string{}, professionalIDs(service)...)
	return nil
}

// Writes counts updates that changed a record.
func (r *MemoryServiceRepo) Writes() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.writes
}
