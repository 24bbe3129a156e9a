package migration

import (
	"context"
	"errors"
	"fmt"

	"kympulse/database"
	"kympulse/models"

	"go.uber.org/zap"
)

// LinkServices walks every professional's normalized services and adds the
// professional to each existing service that does not list it yet. One write
// per new link; services that do not exist are skipped.
func (s *DefaultMigrationService) LinkServices(ctx context.Context) (int, error) {
	total := 0
	err := s.Professionals.ForEach(ctx, func(p models.Professional) error {
		for _, entry := range NormalizeServices(p.RawServices) {
			if entry.ServiceID == "" {
				continue
			}
			linked, err := s.link(ctx, entry.ServiceID, p.ID)
			if err != nil {
				return err
			}
			if linked {
				total++
			}
		}
		return nil
	})
	if err != nil {
		return total, fmt.Errorf("linking stopped after %d links: %w", total, err)
	}
	return total, nil
}

func (s *DefaultMigrationService) link(ctx context.Context, serviceID, professionalID string) (bool, error) {
	service, err := s.Services.GetByID(ctx, serviceID)
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if service.HasProfessional(professionalID) {
		return false, nil
	}
	if err := s.Services.AddProfessional(ctx, serviceID, professionalID); err != nil {
		return false, err
	}
	zap.L().Info("Professional linked", zap.String("professionalId", professionalID), zap.String("serviceId", serviceID))
	return true, nil
}
