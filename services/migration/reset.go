package migration

import (
	"context"
	"fmt"

	"kympulse/models"

	"go.uber.org/zap"
)

// ResetLinks clears professionalIds on every service that has any.
func (s *DefaultMigrationService) ResetLinks(ctx context.Context) (int, error) {
	cleared := 0
	err := s.Services.ForEach(ctx, func(svc models.Service) error {
		if len(svc.ProfessionalIDs) == 0 {
			return nil
		}
		if err := s.Services.ClearProfessionals(ctx, svc.ID); err != nil {
			return err
		}
		cleared++
		zap.L().Info("Service links reset", zap.String("serviceId", svc.ID))
		return nil
	})
	if err != nil {
		return cleared, fmt.Errorf("reset stopped after %d services: %w", cleared, err)
	}
	return cleared, nil
}
