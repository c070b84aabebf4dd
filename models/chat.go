package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Intent string

const (
	IntentBookAppointment Intent = "book_appointment"
	IntentRecommendDoctor Intent = "recommend_doctor"
	IntentGetInfo         Intent = "get_info"
	IntentGeneralQuery    Intent = "general_query"
)

// ChatRequest is the body of POST /api/v1/chat. SessionID is optional; the
// controller assigns one when it is missing.
type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
	PatientID string `json:"patient_id,omitempty"`
}

type ChatResponse struct {
	Response string         `json:"response"`
	Intent   Intent         `json:"intent"`
	History  []HistoryEntry `json:"history,omitempty"`
}

// HistoryEntry is one turn of the in-memory session transcript.
type HistoryEntry struct {
	Role    string `json:"role"` // "user" or "bot"
	Message string `json:"message"`
}

// IntentResult is the structured guess produced by the LLM extractor.
// Any field may be an empty string meaning "not provided".
type IntentResult struct {
	Intent         string `json:"intent"`
	Specialization string `json:"specialization"`
	DoctorName     string `json:"doctor_name"`
	Date           string `json:"date"`
	Time           string `json:"time"`
}

// Message is the durable per-turn record persisted to the messages collection.
type Message struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID string             `bson:"session_id" json:"session_id"`
	Role      string             `bson:"role" json:"role"`
	Content   string             `bson:"content" json:"content"`
	Intent    Intent             `bson:"intent,omitempty" json:"intent,omitempty"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
