package professionalRepo

import (
	"context"
	"fmt"

	"kympulse/config"
	"kympulse/database"
	"kympulse/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// FirestoreProfessionalRepo implements ProfessionalRepository on Firestore.
type FirestoreProfessionalRepo struct {
	coll *firestore.CollectionRef
}

// NewFirestoreProfessionalRepo uses the "profesionales" collection of the global client.
func NewFirestoreProfessionalRepo() ProfessionalRepository {
	return &FirestoreProfessionalRepo{coll: database.FirestoreClient.Collection(config.CollectionProfessionals)}
}

func (r *FirestoreProfessionalRepo) ForEach(ctx context.Context, fn func(models.Professional) error) error {
	iter := r.coll.Documents(ctx)
	defer iter.Stop()
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read professionals: %w", err)
		}
		p, err := professionalFromData(snap.Ref.ID, snap.Data())
		if err != nil {
			return err
		}
		if err := fn(p); err != nil {
			return err
		}
	}
}

func (r *FirestoreProfessionalRepo) UpdateCatalogue(ctx context.Context, id string, update models.CatalogueUpdate) error {
	_, err := r.coll.Doc(id).Update(ctx, []firestore.Update{
		{Path: "servicios", Value: update.ServiceDocuments()},
		{Path: "especialidades", Value: update.Specialties},
	})
	if err != nil {
		return fmt.Errorf("failed to update professional with id %s: %w", id, err)
	}
	return nil
}

func (r *FirestoreProfessionalRepo) Create(ctx context.Context, professional models.Professional) error {
	_, err := r.coll.Doc(professional.ID).Set(ctx, map[string]interface{}{
		"servicios":      rawList(professional.RawServices),
		"especialidades": rawList(professional.RawSpecialties),
	})
	if err != nil {
		return fmt.Errorf("failed to create professional: %w", err)
	}
	return nil
}
