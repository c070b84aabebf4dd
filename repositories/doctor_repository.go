// Package repositories wraps the hosted MongoDB collections behind small
// per-entity types. Each repository holds the database handle it was
// constructed with; there are no package-level clients.
package repositories

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"hospital-chatbot-backend/models"
)

type DoctorRepository struct {
	collection *mongo.Collection
}

func NewDoctorRepository(db *mongo.Database) *DoctorRepository {
	return &DoctorRepository{
		collection: db.Collection("doctors"),
	}
}

// FindBySpecialization matches case-insensitively on a substring of the
// specialization field.
func (r *DoctorRepository) FindBySpecialization(ctx context.Context, specialization string) ([]models.Doctor, error) {
	return r.find(ctx, bson.M{"specialization": substringPattern(specialization)})
}

// FindByName matches case-insensitively on a substring of the doctor's name.
func (r *DoctorRepository) FindByName(ctx context.Context, name string) ([]models.Doctor, error) {
	return r.find(ctx, bson.M{"name": substringPattern(name)})
}

func (r *DoctorRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doctor)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find doctor %s: %w", id.Hex(), err)
	}
	return &doctor, nil
}

func (r *DoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	return r.find(ctx, bson.M{})
}

func (r *DoctorRepository) find(ctx context.Context, filter bson.M) ([]models.Doctor, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query doctors: %w", err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("failed to decode doctors: %w", err)
	}
	return doctors, nil
}

func substringPattern(value string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"}
}
