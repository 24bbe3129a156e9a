package massageRepo

import (
	"context"

	"kympulse/models"
)

// MassageRepository stores the service events captured by the pulse page.
type MassageRepository interface {
	// Create inserts a new event and returns its generated ID.
	Create(ctx context.Context, event models.ServiceEvent) (string, error)
	// AttachSurvey merges the survey into an existing event.
	AttachSurvey(ctx context.Context, id string, survey models.Survey) error
}
