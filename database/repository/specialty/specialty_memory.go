package specialtyRepo

import (
	"context"
	"sync"

	"kympulse/models"
)

type MemorySpecialtyRepo struct {
	mu          sync.RWMutex
	specialties []models.Specialty
	err         error
}

func NewMemorySpecialtyRepo(specialties ...models.Specialty) *MemorySpecialtyRepo {
	return &MemorySpecialtyRepo{specialties: specialties}
}

func (r *MemorySpecialtyRepo) GetAll(_ context.Context) ([]models.Specialty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.err != nil {
		return nil, r.err
	}
	return append([]models.Specialty{}, r.specialties...), nil
}

func (r *MemorySpecialtyRepo) Create(_ context.Context, specialty models.Specialty) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.specialties = append(r.specialties, specialty)
	return nil
}

// FailWith makes GetAll return err, simulating an unreachable store.
func (r *MemorySpecialtyRepo) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}
