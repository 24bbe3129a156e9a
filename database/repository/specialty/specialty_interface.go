package specialtyRepo

import (
	"context"

	"kympulse/database"
	"kympulse/models"
)

// SpecialtyRepository gives read access to the specialty lookup table.
type SpecialtyRepository interface {
	GetAll(ctx context.Context) ([]models.Specialty, error)
	Create(ctx context.Context, specialty models.Specialty) error
}

func specialtyFromData(id string, data map[string]interface{}) models.Specialty {
	return models.Specialty{ID: id, Name: database.StringValue(data["nombre"])}
}
