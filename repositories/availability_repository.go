package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"hospital-chatbot-backend/models"
)

type AvailabilityRepository struct {
	collection *mongo.Collection
}

func NewAvailabilityRepository(db *mongo.Database) *AvailabilityRepository {
	return &AvailabilityRepository{
		collection: db.Collection("doctor_availability"),
	}
}

// FindByDoctorID returns all weekly slots on record for one doctor.
func (r *AvailabilityRepository) FindByDoctorID(ctx context.Context, doctorID primitive.ObjectID) ([]models.WeeklySlot, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"doctor_id": doctorID})
	if err != nil {
		return nil, fmt.Errorf("failed to query availability for doctor %s: %w", doctorID.Hex(), err)
	}
	defer cursor.Close(ctx)

	var slots []models.WeeklySlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode availability slots: %w", err)
	}
	return slots, nil
}
