package repository

import (
	"context"
	"fmt"

	"kympulse/config"
	"kympulse/database"
	massageRepo "kympulse/database/repository/massage"
	professionalRepo "kympulse/database/repository/professional"
	serviceRepo "kympulse/database/repository/service"
	specialtyRepo "kympulse/database/repository/specialty"
)

// Re-export the repository interfaces.
type (
	ProfessionalRepository = professionalRepo.ProfessionalRepository
	ServiceRepository      = serviceRepo.ServiceRepository
	SpecialtyRepository    = specialtyRepo.SpecialtyRepository
	MassageRepository      = massageRepo.MassageRepository
)

// Repositories bundles one backend's repositories.
type Repositories struct {
	Professionals ProfessionalRepository
	Services      ServiceRepository
	Specialties   SpecialtyRepository
	Massages      MassageRepository

	// Ping checks that the backend answers.
	Ping func(ctx context.Context) error
}

// New opens the repositories of the given STORE_DRIVER, connecting the global
// client first.
func New(driver string) (*Repositories, error) {
	switch driver {
	case config.StoreFirestore:
		database.InitFirestore()
		return &Repositories{
			Professionals: professionalRepo.NewFirestoreProfessionalRepo(),
			Services:      serviceRepo.NewFirestoreServiceRepo(),
			Specialties:   specialtyRepo.NewFirestoreSpecialtyRepo(),
			Massages:      massageRepo.NewFirestoreMassageRepo(),
			Ping:          database.PingFirestore,
		}, nil
	case config.StoreMongo:
		database.InitDB()
		return &Repositories{
			Professionals: professionalRepo.NewMongoProfessionalRepo(),
			Services:      serviceRepo.NewMongoServiceRepo(),
			Specialties:   specialtyRepo.NewMongoSpecialtyRepo(),
			Massages:      massageRepo.NewMongoMassageRepo(),
			Ping:          database.PingMongo,
		}, nil
	case config.StoreMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", driver)
	}
}

// NewMemory returns empty in-process repositories.
func NewMemory() *Repositories {
	return &Repositories{
		Professionals: professionalRepo.NewMemoryProfessionalRepo(),
		Services:      serviceRepo.NewMemoryServiceRepo(),
		Specialties:   specialtyRepo.NewMemorySpecialtyRepo(),
		Massages:      massageRepo.NewMemoryMassageRepo(),
		Ping:          func(context.Context) error { return nil },
	}
}
