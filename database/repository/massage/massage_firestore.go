package massageRepo

import (
	"context"
	"fmt"

	"kympulse/config"
	"kympulse/database"
	"kympulse/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type FirestoreMassageRepo struct {
	coll *firestore.CollectionRef
}

// NewFirestoreMassageRepo uses the "masajes" collection of the global client.
func NewFirestoreMassageRepo() MassageRepository {
	return &FirestoreMassageRepo{coll: database.FirestoreClient.Collection(config.CollectionMassages)}
}

// Create lets Firestore generate the document ID.
func (r *FirestoreMassageRepo) Create(ctx context.Context, event models.ServiceEvent) (string, error) {
	ref, _, err := r.coll.Add(ctx, event)
	if err != nil {
		return "", fmt.Errorf("failed to create service event: %w", err)
	}
	return ref.ID, nil
}

func (r *FirestoreMassageRepo) AttachSurvey(ctx context.Context, id string, survey models.Survey) error {
	if !database.ValidDocID(id) {
		return fmt.Errorf("service event %q: %w", id, database.ErrNotFound)
	}
	_, err := r.coll.Doc(id).Update(ctx, []firestore.Update{{Path: "encuesta", Value: survey}})
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("service event %s: %w", id, database.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to attach survey to %s: %w", id, err)
	}
	return nil
}
