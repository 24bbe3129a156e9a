package specialtyRepo

import (
	"context"
	"fmt"

	"kympulse/config"
	"kympulse/database"
	"kympulse/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoSpecialtyRepo struct {
	coll *mongo.Collection
}

func NewMongoSpecialtyRepo() SpecialtyRepository {
	return &MongoSpecialtyRepo{coll: database.MongoDatabase().Collection(config.CollectionSpecialties)}
}

func (r *MongoSpecialtyRepo) GetAll(ctx context.Context) ([]models.Specialty, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve specialties: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode specialties: %w", err)
	}
	specialties := make([]models.Specialty, 0, len(docs))
	for _, doc := range docs {
		specialties = append(specialties, specialtyFromData(database.StringValue(doc["id"]), doc))
	}
	return specialties, nil
}

func (r *MongoSpecialtyRepo) Create(ctx context.Context, specialty models.Specialty) error {
	if _, err := r.coll.InsertOne(ctx, specialty); err != nil {
		return fmt.Errorf("failed to create specialty: %w", err)
	}
	return nil
}
