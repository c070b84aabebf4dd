package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"hospital-chatbot-backend/models"
)

// TextGenerator is the LLM surface the handlers depend on.
type TextGenerator interface {
	GenerateResponse(ctx context.Context, prompt string) (string, error)
}

// DoctorFinder is the directory store surface.
type DoctorFinder interface {
	FindBySpecialization(ctx context.Context, specialization string) ([]models.Doctor, error)
	FindByName(ctx context.Context, name string) ([]models.Doctor, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Doctor, error)
	FindAll(ctx context.Context) ([]models.Doctor, error)
}

// AvailabilityFinder is the weekly-slot store surface.
type AvailabilityFinder interface {
	FindByDoctorID(ctx context.Context, doctorID primitive.ObjectID) ([]models.WeeklySlot, error)
}

// AppointmentInserter is the appointment store surface.
type AppointmentInserter interface {
	Insert(ctx context.Context, appointment *models.Appointment) error
}

// MessageRecorder is the durable chat transcript surface.
type MessageRecorder interface {
	Insert(ctx context.Context, message *models.Message) error
}
