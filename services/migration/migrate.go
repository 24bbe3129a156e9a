package migration

import (
	"context"
	"fmt"

	"kympulse/models"

	"go.uber.org/zap"
)

// MigrateProfessionals loads the specialty lookup, then rewrites every professional.
func (s *DefaultMigrationService) MigrateProfessionals(ctx context.Context) (int, error) {
	names, err := s.specialtyNames(ctx)
	if err != nil {
		return 0, err
	}

	migrated := 0
	err = s.Professionals.ForEach(ctx, func(p models.Professional) error {
		update := models.CatalogueUpdate{
			Services:    NormalizeServices(p.RawServices),
			Specialties: MapSpecialties(p.RawSpecialties, names),
		}
		if err := s.Professionals.UpdateCatalogue(ctx, p.ID, update); err != nil {
			return err
		}
		migrated++
		zap.L().Debug("Professional migrated", zap.String("professionalId", p.ID), zap.Int("services", len(update.Services)))
		return nil
	})
	if err != nil {
		return migrated, fmt.Errorf("migration stopped after %d professionals: %w", migrated, err)
	}
	return migrated, nil
}

// specialtyNames maps specialty IDs to names; a specialty without a name maps to its ID.
func (s *DefaultMigrationService) specialtyNames(ctx context.Context) (map[string]string, error) {
	specialties, err := s.Specialties.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(specialties))
	for _, sp := range specialties {
		if sp.Name != "" {
			names[sp.ID] = sp.Name
		} else {
			names[sp.ID] = sp.ID
		}
	}
	return names, nil
}
