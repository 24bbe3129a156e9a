package serviceRepo

import (
	"context"
	"fmt"

	"kympulse/config"
	"kympulse/database"
	"kympulse/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreServiceRepo implements ServiceRepository on Firestore.
type FirestoreServiceRepo struct {
	coll *firestore.CollectionRef
}

// NewFirestoreServiceRepo uses the "services" collection of the global client.
func NewFirestoreServiceRepo() ServiceRepository {
	return &FirestoreServiceRepo{coll: database.FirestoreClient.Collection(config.CollectionServices)}
}

func (r *FirestoreServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	if !database.ValidDocID(id) {
		return nil, fmt.Errorf("service %q: %w", id, database.ErrNotFound)
	}
	snap, err := r.coll.Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, fmt.Errorf("service %s: %w", id, database.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
	}
	s := serviceFromData(snap.Ref.ID, snap.Data())
	return &s, nil
}

func (r *FirestoreServiceRepo) ForEach(ctx context.Context, fn func(models.Service) error) error {
	iter := r.coll.Documents(ctx)
	defer iter.Stop()
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read services: %w", err)
		}
		if err := fn(serviceFromData(snap.Ref.ID, snap.Data())); err != nil {
			return err
		}
	}
}

func (r *FirestoreServiceRepo) AddProfessional(ctx context.Context, serviceID, professionalID string) error {
	_, err := r.coll.Doc(serviceID).Update(ctx, []firestore.Update{
		{Path: "professionalIds", Value: firestore.ArrayUnion(professionalID)},
	})
	if err != nil {
		return fmt.Errorf("failed to link professional %s to service %s: %w", professionalID, serviceID, err)
	}
	return nil
}

func (r *FirestoreServiceRepo) ClearProfessionals(ctx context.Context, serviceID string) error {
	_, err := r.coll.Doc(serviceID).Update(ctx, []firestore.Update{
		{Path: "professionalIds", Value: []string{}},
	})
	if err != nil {
		return fmt.Errorf("failed to reset service %s: %w", serviceID, err)
	}
	return nil
}

func (r *FirestoreServiceRepo) Create(ctx context.Context, service models.Service) error {
	_, err := r.coll.Doc(service.ID).Set(ctx, map[string]interface{}{
		"professionalIds": professionalIDs(service),
	})
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}
