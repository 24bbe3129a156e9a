package massageRepo

import (
	"context"
	"fmt"

	"kympulse/config"
	"kympulse/database"
	"kympulse/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoMassageRepo struct {
	coll *mongo.Collection
}

// NewMongoMassageRepo returns a new MassageRepository instance using MongoDB.
func NewMongoMassageRepo() MassageRepository {
	return &mongoMassageRepo{coll: database.MongoDatabase().Collection(config.CollectionMassages)}
}

// Create inserts a new service event and returns its ID.
func (r *mongoMassageRepo) Create(ctx context.Context, event models.ServiceEvent) (string, error) {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		return "", fmt.Errorf("failed to create service event: %w", err)
	}
	return event.ID, nil
}

func (r *mongoMassageRepo) AttachSurvey(ctx context.Context, id string, survey models.Survey) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"encuesta": survey}})
	if err != nil {
		return fmt.Errorf("failed to attach survey to %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("service event %s: %w", id, database.ErrNotFound)
	}
	return nil
}
