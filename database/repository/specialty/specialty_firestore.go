package specialtyRepo

import (
	"context"
	"fmt"

	"kympulse/config"
	"kympulse/database"
	"kympulse/models"

	"cloud.google.com/go/firestore"
)

type FirestoreSpecialtyRepo struct {
	coll *firestore.CollectionRef
}

func NewFirestoreSpecialtyRepo() SpecialtyRepository {
	return &FirestoreSpecialtyRepo{coll: database.FirestoreClient.Collection(config.CollectionSpecialties)}
}

func (r *FirestoreSpecialtyRepo) GetAll(ctx context.Context) ([]models.Specialty, error) {
	snaps, err := r.coll.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve specialties: %w", err)
	}
	specialties := make([]models.Specialty, 0, len(snaps))
	for _, snap := range snaps {
		specialties = append(specialties, specialtyFromData(snap.Ref.ID, snap.Data()))
	}
	return specialties, nil
}

func (r *FirestoreSpecialtyRepo) Create(ctx context.Context, specialty models.Specialty) error {
	if _, err := r.coll.Doc(specialty.ID).Set(ctx, map[string]interface{}{"nombre": specialty.Name}); err != nil {
		return fmt.Errorf("failed to create specialty: %w", err)
	}
	return nil
}
