package professionalRepo

import (
	"context"
	"fmt"
	"sync"

	"kympulse/database"
	"kympulse/models"
)

// MemoryProfessionalRepo keeps professionals in process, in insertion order.
type MemoryProfessionalRepo struct {
	mu    sync.RWMutex
	order []string
	docs  map[string]map[string]interface{}
}

func NewMemoryProfessionalRepo() *MemoryProfessionalRepo {
	return &MemoryProfessionalRepo{docs: make(map[string]map[string]interface{})}
}

func (r *MemoryProfessionalRepo) ForEach(ctx context.Context, fn func(models.Professional) error) error {
	type entry struct {
		p   models.Professional
		err error
	}
	r.mu.RLock()
	snapshot := make([]entry, 0, len(r.order))
	for _, id := range r.order {
		p, err := professionalFromData(id, r.docs[id])
		snapshot = append(snapshot, entry{p, err})
	}
	r.mu.RUnlock()

	for _, e := range snapshot {
		if err := ctx.Err(); err != nil {
			return err
		}
		if e.err != nil {
			return e.err
		}
		if err := fn(e.p); err != nil {
			return err
		}
	}
	return nil
}

// GetByID returns a professional; memory only, for asserting on pass results.
func (r *MemoryProfessionalRepo) GetByID(_ context.Context, id string) (*models.Professional, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.docs[id]
	if !ok {
		return nil, fmt.Errorf("professional %s: %w", id, database.ErrNotFound)
	}
	p, err := professionalFromData(id, doc)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// PutRaw stores doc as-is, the way an old client may have written it.
func (r *MemoryProfessionalRepo) PutRaw(id string, doc map[string]interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.docs[id]; !exists {
		r.order = append(r.order, id)
	}
	r.docs[id] = doc
}

// Raw returns the stored fields of a professional.
func (r *MemoryProfessionalRepo) Raw(id string) map[string]interface{} {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]interface{}, len(r.docs[id]))
	for k, v := range r.docs[id] {
		out[k] = v
	}
	return out
}

// UpdateCatalogue stores the fields the way a document store returns them:
// lists of plain maps and strings.
func (r *MemoryProfessionalRepo) UpdateCatalogue(_ context.Context, id string, update models.CatalogueUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[id]
	if !ok {
		return fmt.Errorf("professional %s: %w", id, database.ErrNotFound)
	}
	services := make([]interface{}, 0, len(update.Services))
	for _, d := range update.ServiceDocuments() {
		services = append(services, d)
	}
	specialties := make([]interface{}, 0, len(update.Specialties))
	for _, s := range update.Specialties {
		specialties = append(specialties, s)
	}
	doc["servicios"] = services
	doc["especialidades"] = specialties
	return nil
}

func (r *MemoryProfessionalRepo) Create(_ context.Context, professional models.Professional) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.docs[professional.ID]; exists {
		return fmt.Errorf("professional %s already exists", professional.ID)
	}
	r.order = append(r.order, professional.ID)
	r.docs[professional.ID] = map[string]interface{}{
		"servicios":      rawList(professional.RawServices),
		"especialidades": rawList(professional.RawSpecialties),
	}
	return nil
}
