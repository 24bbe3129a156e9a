package professionalRepo

import (
	"context"
	"fmt"

	"kympulse/database"
	"kympulse/models"
)

// ProfessionalRepository defines methods for professional data access.
type ProfessionalRepository interface {
	// ForEach streams every professional to fn and stops at the first error.
	ForEach(ctx context.Context, fn func(models.Professional) error) error
	// UpdateCatalogue overwrites the services and specialties of a professional.
	UpdateCatalogue(ctx context.Context, id string, update models.CatalogueUpdate) error
	// Create inserts a professional with its raw fields.
	Create(ctx context.Context, professional models.Professional) error
}

// professionalFromData fails when servicios or especialidades hold a non-array
// value, so a pass never overwrites data it could not read.
func professionalFromData(id string, data map[string]interface{}) (models.Professional, error) {
	services, err := database.ListField(data, "servicios")
	if err != nil {
		return models.Professional{}, fmt.Errorf("professional %s: %w", id, err)
	}
	specialties, err := database.ListField(data, "especialidades")
	if err != nil {
		return models.Professional{}, fmt.Errorf("professional %s: %w", id, err)
	}
	return models.Professional{ID: id, RawServices: services, RawSpecialties: specialties}, nil
}

func rawList(list []interface{}) []interface{} {
	if list == nil {
		return []interface{}{}
	}
	return list
}
