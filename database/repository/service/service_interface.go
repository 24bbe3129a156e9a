package serviceRepo

import (
	"context"

	"kympulse/database"
	"kympulse/models"
)

// ServiceRepository defines methods for service data access.
type ServiceRepository interface {
	// GetByID retrieves a service; a missing one yields database.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Service, error)
	// ForEach streams every service to fn and stops at the first error.
	ForEach(ctx context.Context, fn func(models.Service) error) error
	// AddProfessional adds the professional to professionalIds as an atomic
	// set-union on the server, so concurrent writers never duplicate or lose IDs.
	AddProfessional(ctx context.Context, serviceID, professionalID string) error
	// ClearProfessionals overwrites professionalIds with an empty array.
	ClearProfessionals(ctx context.Context, serviceID string) error
	// Create inserts a service.
	Create(ctx context.Context, service models.Service) error
}

func serviceFromData(id string, data map[string]interface{}) models.Service {
	return models.Service{
		ID:              id,
		ProfessionalIDs: database.StringList(data["professionalIds"]),
	}
}

func professionalIDs(service models.Service) []string {
	if service.ProfessionalIDs == nil {
		return []string{}
	}
	return service.ProfessionalIDs
}
