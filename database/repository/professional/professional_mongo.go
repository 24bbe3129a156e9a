package professionalRepo

import (
	"context"
	"fmt"

	"kympulse/config"
	"kympulse/database"
	"kympulse/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoProfessionalRepo implements ProfessionalRepository using MongoDB.
// Documents are keyed by their "id" field.
type MongoProfessionalRepo struct {
	coll *mongo.Collection
}

// NewMongoProfessionalRepo creates a new instance of ProfessionalRepository using MongoDB.
func NewMongoProfessionalRepo() ProfessionalRepository {
	return &MongoProfessionalRepo{coll: database.MongoDatabase().Collection(config.CollectionProfessionals)}
}

func (r *MongoProfessionalRepo) ForEach(ctx context.Context, fn func(models.Professional) error) error {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to retrieve professionals: %w", err)
	}
	defer cursor.Close(ctx)
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return fmt.Errorf("failed to decode professional: %w", err)
		}
		p, err := professionalFromData(database.StringValue(doc["id"]), doc)
		if err != nil {
			return err
		}
		if err := fn(p); err != nil {
			return err
		}
	}
	if err := cursor.Err(); err != nil {
		return fmt.Errorf("cursor error: %w", err)
	}
	return nil
}

func (r *MongoProfessionalRepo) UpdateCatalogue(ctx context.Context, id string, update models.CatalogueUpdate) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{
		"servicios":      update.ServiceDocuments(),
		"especialidades": update.Specialties,
	}})
	if err != nil {
		return fmt.Errorf("failed to update professional with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("professional %s: %w", id, database.ErrNotFound)
	}
	return nil
}

func (r *MongoProfessionalRepo) Create(ctx context.Context, professional models.Professional) error {
	_, err := r.coll.InsertOne(ctx, bson.M{
		"id":             professional.ID,
		"servicios":      rawList(professional.RawServices),
		"especialidades": rawList(professional.RawSpecialties),
	})
	if err != nil {
		return fmt.Errorf("failed to create professional: %w", err)
	}
	return nil
}
