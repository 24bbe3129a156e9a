package migration

import (
	"context"

	professionalRepo "kympulse/database/repository/professional"
	serviceRepo "kympulse/database/repository/service"
	specialtyRepo "kympulse/database/repository/specialty"
)

// MigrationService runs the one-shot bulk passes over the catalogue collections.
// Each pass is linear and non-transactional: records written before a failure
// stay written.
type MigrationService interface {
	// MigrateProfessionals normalizes "servicios" and maps "especialidades" to names.
	MigrateProfessionals(ctx context.Context) (int, error)
	// LinkServices adds every professional to the services it offers.
	LinkServices(ctx context.Context) (int, error)
	// ResetLinks empties every non-empty professionalIds array.
	ResetLinks(ctx context.Context) (int, error)
}

// DefaultMigrationService is the production implementation.
type DefaultMigrationService struct {
	Professionals professionalRepo.ProfessionalRepository
	Services      serviceRepo.ServiceRepository
	Specialties   specialtyRepo.SpecialtyRepository
}
