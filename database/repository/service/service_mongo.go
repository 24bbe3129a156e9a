package serviceRepo

import (
	"context"
	"errors"
	"fmt"

	"kympulse/config"
	"kympulse/database"
	"kympulse/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo creates a new instance of ServiceRepository using MongoDB.
func NewMongoServiceRepo() ServiceRepository {
	return &MongoServiceRepo{coll: database.MongoDatabase().Collection(config.CollectionServices)}
}

func (r *MongoServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	var doc bson.M
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("service %s: %w", id, database.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
	}
	s := serviceFromData(id, doc)
	return &s, nil
}

func (r *MongoServiceRepo) ForEach(ctx context.Context, fn func(models.Service) error) error {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return fmt.Errorf("failed to decode service: %w", err)
		}
		if err := fn(serviceFromData(database.StringValue(doc["id"]), doc)); err != nil {
			return err
		}
	}
	if err := cursor.Err(); err != nil {
		return fmt.Errorf("cursor error: %w", err)
	}
	return nil
}

func (r *MongoServiceRepo) AddProfessional(ctx context.Context, serviceID, professionalID string) error {
	// Wrap in $addToSet to ensure uniqueness
	update := bson.M{"$addToSet": bson.M{"professionalIds": professionalID}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": serviceID}, update)
	if err != nil {
		return fmt.Errorf("failed to link professional %s to service %s: %w", professionalID, serviceID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("service %s: %w", serviceID, database.ErrNotFound)
	}
	return nil
}

func (r *MongoServiceRepo) ClearProfessionals(ctx context.Context, serviceID string) error {
	update := bson.M{"$set": bson.M{"professionalIds": []string{}}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": serviceID}, update); err != nil {
		return fmt.Errorf("failed to reset service %s: %w", serviceID, err)
	}
	return nil
}

func (r *MongoServiceRepo) Create(ctx context.Context, service models.Service) error {
	_, err := r.coll.InsertOne(ctx, bson.M{
		"id":              service.ID,
		"professionalIds": professionalIDs(service),
	})
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}
