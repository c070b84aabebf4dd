package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Doctor is a directory record. Fields are pass-through from the store;
// nothing in the resolver mutates them.
type Doctor struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Specialization string             `bson:"specialization" json:"specialization"`
	Experience     int                `bson:"experience" json:"experience"`
	Qualification  string             `bson:"qualification" json:"qualification"`
	Room           string             `bson:"room" json:"room"`
}

// WeeklySlot is a recurring availability window for one doctor.
// Days is either a single weekday token ("mon".."sun") or a range over the
// Mon-Sun cycle like "mon-wed"; the range may wrap ("sat-mon").
// StartTime/EndTime are stored as "HH:MM:SS" and never cross midnight.
type WeeklySlot struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DoctorID  primitive.ObjectID `bson:"doctor_id" json:"doctor_id"`
	Days      string             `bson:"days" json:"days"`
	StartTime string             `bson:"start_time" json:"start_time"`
	EndTime   string             `bson:"end_time" json:"end_time"`
}

// Appointment is a committed booking. Date is "YYYY/MM/DD", Time is "HH:MM",
// both in the clinic's fixed timezone.
type Appointment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DoctorID  primitive.ObjectID `bson:"doctor_id" json:"doctor_id"`
	PatientID string             `bson:"patient_id" json:"patient_id"`
	Date      string             `bson:"date" json:"date"`
	Time      string             `bson:"time" json:"time"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// BookingRequest is the direct REST booking payload.
type BookingRequest struct {
	DoctorID  string `json:"doctor_id" binding:"required"`
	PatientID string `json:"patient_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
}
